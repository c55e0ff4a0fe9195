package filter

import (
	"strings"
	"testing"

	"github.com/flarebyte/hermes-epitome/internal/config"
)

const sampleOpLogRaw = `@  d3b77addea49 user@host 3 minutes ago, lasted 3 milliseconds
│  squash commits into f7fb5943a6b9460eb106dba2fac5cac1625c6f7a
│  args: jj squash
○  a9b2c3d4e5f6 user@host 2 hours ago, lasted 14 milliseconds
│  snapshot working copy
│  args: jj status
○  0f1e2d3c4b5a user@host 1 day ago, lasted 9 milliseconds
│  new empty commit
│  args: jj new
`

func TestFilterOpLog_CompactEntries(t *testing.T) {
	res := filterOpLog(sampleOpLogRaw, config.Default(), false)
	lines := strings.Split(res.Text, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 entries, got %d:\n%s", len(lines), res.Text)
	}
	if lines[0] != "@ d3b77ad 3m ago squash commits into f7fb5943a6b9460eb106dba2fac5cac1625c6f7a" {
		t.Fatalf("unexpected first entry: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "○ a9b2c3d 2h ago snapshot working copy") {
		t.Fatalf("unexpected second entry: %q", lines[1])
	}
	if strings.Contains(res.Text, "user@host") || strings.Contains(res.Text, "lasted") {
		t.Fatalf("noise survived:\n%s", res.Text)
	}
	if strings.Contains(res.Text, "args:") || strings.Contains(res.Text, "[jj") {
		t.Fatalf("args shown without verbose:\n%s", res.Text)
	}
}

func TestFilterOpLog_VerboseShowsArgs(t *testing.T) {
	res := filterOpLog(sampleOpLogRaw, config.Default(), true)
	if !strings.Contains(res.Text, "[jj squash]") {
		t.Fatalf("args missing in verbose output:\n%s", res.Text)
	}
}

func TestFilterOpLog_LimitMarker(t *testing.T) {
	cfg := config.Default()
	cfg.Limits.OpLogEntries = 2
	res := filterOpLog(sampleOpLogRaw, cfg, false)
	if !strings.HasSuffix(res.Text, "… 1 more") {
		t.Fatalf("missing truncation marker:\n%s", res.Text)
	}
}

func TestFilterOpLog_ShortIDIsPrefix(t *testing.T) {
	p := parseOpLog(sampleOpLogRaw, 7)
	for _, el := range p.entries {
		if el.echo != "" {
			continue
		}
		if !strings.HasPrefix(el.entry.FullOpID, el.entry.ShortOpID) {
			t.Fatalf("short id %q is not a prefix of %q", el.entry.ShortOpID, el.entry.FullOpID)
		}
	}
}

func TestFilterOpLog_BranchedGraphEntries(t *testing.T) {
	raw := `@  d3b77addea49 user@host 3 minutes ago, lasted 3 milliseconds
│  squash commits into f7fb5943a6b9460eb106dba2fac5cac1625c6f7a
│  args: jj squash
│ ○  9f8e7d6c5b4a user@host 5 minutes ago, lasted 2 milliseconds
│ │  concurrent snapshot
├─╯
○  a9b2c3d4e5f6 user@host 2 hours ago, lasted 14 milliseconds
│  snapshot working copy
`
	res := filterOpLog(raw, config.Default(), false)
	lines := strings.Split(res.Text, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 entries, got %d:\n%s", len(lines), res.Text)
	}
	if !strings.HasPrefix(lines[1], "○ 9f8e7d6 5m ago concurrent snapshot") {
		t.Fatalf("concurrent entry not parsed: %q", lines[1])
	}
	if strings.Contains(res.Text, "user@host") {
		t.Fatalf("host noise survived on side branch:\n%s", res.Text)
	}
	if res.Unparsed != 0 {
		t.Fatalf("branched graph counted unparsed lines: %d", res.Unparsed)
	}
}

func TestFilterOpLog_NoOperations(t *testing.T) {
	res := filterOpLog("", config.Default(), false)
	if res.Text != "No operations" {
		t.Fatalf("unexpected text: %q", res.Text)
	}
}
