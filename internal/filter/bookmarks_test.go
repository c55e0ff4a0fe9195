package filter

import (
	"strings"
	"testing"

	"github.com/flarebyte/hermes-epitome/internal/config"
)

const sampleBookmarksRaw = `main: orrkosyo 7fd1a60b Merge pull request #6
  @origin: orrkosyo 7fd1a60b Merge pull request #6
feature: vunwtpyq 8de217b3 refactor parser
`

func TestFilterBookmarks_TrackedAnnotation(t *testing.T) {
	res := filterBookmarks(sampleBookmarksRaw, config.Default(), false)
	lines := strings.Split(res.Text, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 bookmarks, got %d:\n%s", len(lines), res.Text)
	}
	if lines[0] != "main: orrkosyo 7fd1a60b (tracked @origin)" {
		t.Fatalf("unexpected first line: %q", lines[0])
	}
	if lines[1] != "feature: vunwtpyq 8de217b3" {
		t.Fatalf("unexpected second line: %q", lines[1])
	}
}

func TestFilterBookmarks_UnparsedEchoed(t *testing.T) {
	raw := "main: orrkosyo 7fd1a60b Merge\nsome banner without a colon delimiter\n"
	res := filterBookmarks(raw, config.Default(), false)
	if !strings.Contains(res.Text, "some banner without a colon delimiter") {
		t.Fatalf("unparsed line dropped:\n%s", res.Text)
	}
	if res.Unparsed != 1 {
		t.Fatalf("unexpected unparsed count: %d", res.Unparsed)
	}
}

func TestFilterBookmarks_Empty(t *testing.T) {
	res := filterBookmarks("", config.Default(), false)
	if res.Text != "No bookmarks" {
		t.Fatalf("unexpected text: %q", res.Text)
	}
}
