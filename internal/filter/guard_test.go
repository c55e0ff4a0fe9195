package filter

import "testing"

func TestCheck_PassesWhenIdentifiersSurvive(t *testing.T) {
	res := Result{
		Text: "@ kntqzsqt d7439b06 (empty)",
		Rendered: []string{
			"Working copy  (@) : kntqzsqt d7439b06 (empty) (no description set)",
		},
		Parsed: 2,
	}
	cr := Check("raw", res, 0.30)
	if cr.DegradedToRaw {
		t.Fatalf("unexpected degradation")
	}
	if cr.Text != res.Text {
		t.Fatalf("unexpected text: %q", cr.Text)
	}
}

func TestCheck_DegradesWhenIdentifierLost(t *testing.T) {
	raw := "@  mpqrykyp 2024-03-01 aef4df99\n"
	res := Result{
		Text:     "@ something else entirely",
		Rendered: []string{"@  mpqrykyp 2024-03-01 aef4df99"},
		Parsed:   1,
	}
	cr := Check(raw, res, 0.30)
	if !cr.DegradedToRaw {
		t.Fatalf("expected degradation to raw")
	}
	if cr.Text != raw {
		t.Fatalf("degraded text is not the raw output: %q", cr.Text)
	}
}

func TestCheck_HashCoveredByChangeID(t *testing.T) {
	res := Result{
		Text:     "@- orrkosyo master",
		Rendered: []string{"Parent commit (@-): orrkosyo 7fd1a60b master | Merge pull request #6"},
		Parsed:   1,
	}
	cr := Check("raw", res, 0.30)
	if cr.DegradedToRaw {
		t.Fatalf("hash should be covered by the surviving change id")
	}
}

func TestCheck_AcceptsPrefixAbbreviation(t *testing.T) {
	res := Result{
		Text:     "@ d3b77ad 3m ago squash",
		Rendered: []string{"@  d3b77addea49 user@host 3 minutes ago"},
		Parsed:   1,
	}
	cr := Check("raw", res, 0.30)
	if cr.DegradedToRaw {
		t.Fatalf("prefix abbreviation rejected")
	}
}

func TestCheck_DegradesOnParseFailureRate(t *testing.T) {
	res := Result{Text: "compact", Parsed: 1, Unparsed: 1}
	cr := Check("raw", res, 0.30)
	if !cr.DegradedToRaw {
		t.Fatalf("expected degradation above unparsed threshold")
	}
}

func TestCheck_BookmarkNameMustSurvive(t *testing.T) {
	res := Result{
		Text:     "orrkosyo 7fd1a60b",
		Rendered: []string{"main: orrkosyo 7fd1a60b Merge pull request #6"},
		Parsed:   1,
	}
	cr := Check("raw", res, 0.30)
	if !cr.DegradedToRaw {
		t.Fatalf("expected degradation when bookmark name is dropped")
	}
}
