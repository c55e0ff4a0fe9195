package filter

import (
	"strings"
	"testing"

	"github.com/flarebyte/hermes-epitome/internal/config"
)

const cleanStatusRaw = `The working copy has no changes.
Working copy  (@) : kntqzsqt d7439b06 (empty) (no description set)
Parent commit (@-): orrkosyo 7fd1a60b master | Merge pull request #6
`

func TestFilterStatus_Clean(t *testing.T) {
	res := filterStatus(cleanStatusRaw, config.Default(), false)
	want := "@ kntqzsqt d7439b06 (empty)\n@- orrkosyo master"
	if res.Text != want {
		t.Fatalf("unexpected text:\n%s\nwant:\n%s", res.Text, want)
	}
	if res.Unparsed != 0 {
		t.Fatalf("unexpected unparsed count: %d", res.Unparsed)
	}
}

func TestFilterStatus_FileChanges(t *testing.T) {
	raw := `Working copy changes:
M src/main.go
A docs/notes.md
D old/legacy.go
Working copy  (@) : vunwtpyq 8de217b3 refactor parser
Parent commit (@-): orrkosyo 7fd1a60b master | Merge pull request #6
`
	res := filterStatus(raw, config.Default(), false)
	for _, want := range []string{"M src/main.go", "A docs/notes.md", "D old/legacy.go", "@ vunwtpyq 8de217b3"} {
		if !strings.Contains(res.Text, want) {
			t.Fatalf("missing %q in:\n%s", want, res.Text)
		}
	}
}

func TestFilterStatus_Conflicts(t *testing.T) {
	raw := `Working copy changes:
M src/main.rs
There are unresolved conflicts at these paths:
src/main.rs    2-sided conflict
Working copy  (@) : vunwtpyq 8de217b3 (conflict) merge feature
Parent commit (@-): orrkosyo 7fd1a60b master | Merge pull request #6
`
	res := filterStatus(raw, config.Default(), false)
	for _, want := range []string{"Conflicts: 1 files", "src/main.rs (2-sided)", "(conflict)"} {
		if !strings.Contains(res.Text, want) {
			t.Fatalf("missing %q in:\n%s", want, res.Text)
		}
	}
}

func TestFilterStatus_UnknownLinesEchoed(t *testing.T) {
	raw := `Working copy  (@) : kntqzsqt d7439b06 (empty) (no description set)
some entirely novel banner line
`
	res := filterStatus(raw, config.Default(), false)
	if !strings.Contains(res.Text, "some entirely novel banner line") {
		t.Fatalf("echoed line missing:\n%s", res.Text)
	}
	if res.Unparsed != 1 {
		t.Fatalf("unexpected unparsed count: %d", res.Unparsed)
	}
}

func TestFilterStatus_Empty(t *testing.T) {
	res := filterStatus("", config.Default(), false)
	if res.Text != "Clean working copy" {
		t.Fatalf("unexpected text: %q", res.Text)
	}
}

func TestParseStatusEntry_DescriptionWithoutPipe(t *testing.T) {
	e := parseStatusEntry("Working copy  (@) : vunwtpyq 8de217b3 refactor the parser")
	if e.ChangeID != "vunwtpyq" || e.CommitID != "8de217b3" {
		t.Fatalf("unexpected ids: %+v", e)
	}
	if len(e.Bookmarks) != 0 {
		t.Fatalf("description words parsed as bookmarks: %+v", e.Bookmarks)
	}
	if e.Description != "refactor the parser" {
		t.Fatalf("unexpected description: %q", e.Description)
	}
}

func TestParseStatusEntry_BookmarksBeforePipe(t *testing.T) {
	e := parseStatusEntry("Parent commit (@-): orrkosyo 7fd1a60b master main* | Merge pull request #6")
	if len(e.Bookmarks) != 2 || e.Bookmarks[0] != "master" || e.Bookmarks[1] != "main" {
		t.Fatalf("unexpected bookmarks: %+v", e.Bookmarks)
	}
	if e.Description != "Merge pull request #6" {
		t.Fatalf("unexpected description: %q", e.Description)
	}
}
