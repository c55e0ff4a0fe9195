package diagnose

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDetectRepos_NoRepo(t *testing.T) {
	gitRepo, gitHead, jjRepo, colocated := detectRepos(t.TempDir())
	if gitRepo || jjRepo || colocated || gitHead != "" {
		t.Fatalf("unexpected detection in empty dir: %v %q %v %v", gitRepo, gitHead, jjRepo, colocated)
	}
}

func TestFindUp(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, ".jj"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if got := findUp(nested, ".jj"); got != root {
		t.Fatalf("findUp = %q, want %q", got, root)
	}
	if got := findUp(t.TempDir(), ".jj"); got != "" {
		t.Fatalf("false positive: %q", got)
	}
}

func TestBuildReport_ConfigValidation(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "hermes.toml")
	if err := os.WriteFile(bad, []byte("x = 1\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	r := buildReport(bad)
	if r.ConfigOK {
		t.Fatalf("unsupported config reported ok: %+v", r)
	}
	if len(r.Errors) == 0 {
		t.Fatalf("expected a config error in the report")
	}
}
