package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	c := Default()
	if c.Limits.LogEntries != 5 || c.Limits.OpLogEntries != 5 {
		t.Fatalf("unexpected entry limits: %+v", c.Limits)
	}
	if c.Limits.HunkLines != 10 || c.Limits.DiffTotalLines != 100 {
		t.Fatalf("unexpected diff limits: %+v", c.Limits)
	}
	if c.Limits.MessageMax != 60 || c.Limits.OpIDChars != 7 {
		t.Fatalf("unexpected text limits: %+v", c.Limits)
	}
	if c.Limits.MaxUnparsed != 0.30 {
		t.Fatalf("unexpected unparsed threshold: %v", c.Limits.MaxUnparsed)
	}
}

func TestLoad_YAML(t *testing.T) {
	path := writeTemp(t, "hermes.yaml", `
configVersion: "1"
limits:
  logEntries: 12
  maxUnparsed: 0.5
postFilters:
  log: string.upper(text)
`)
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Limits.LogEntries != 12 {
		t.Fatalf("override lost: %+v", c.Limits)
	}
	if c.Limits.MaxUnparsed != 0.5 {
		t.Fatalf("override lost: %v", c.Limits.MaxUnparsed)
	}
	// Unset limits keep their defaults.
	if c.Limits.HunkLines != 10 {
		t.Fatalf("default lost: %+v", c.Limits)
	}
	if c.Post.Log != "string.upper(text)" {
		t.Fatalf("post filter lost: %q", c.Post.Log)
	}
}

func TestLoad_YAMLRejectsUnknownKeys(t *testing.T) {
	path := writeTemp(t, "hermes.yaml", "limits:\n  logEntrees: 3\n")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for unknown key")
	}
}

func TestLoad_YAMLEmptyFile(t *testing.T) {
	path := writeTemp(t, "hermes.yaml", "")
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Limits.LogEntries != 5 {
		t.Fatalf("defaults not applied: %+v", c.Limits)
	}
}

func TestLoad_CUE(t *testing.T) {
	path := writeTemp(t, "hermes.cue", `
configVersion: "1"
limits: {
	logEntries: 8
	maxUnparsed: 0.4
}
postFilters: {
	status: "text"
}
`)
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Limits.LogEntries != 8 || c.Limits.MaxUnparsed != 0.4 {
		t.Fatalf("overrides lost: %+v", c.Limits)
	}
	if c.Limits.OpIDChars != 7 {
		t.Fatalf("default lost: %+v", c.Limits)
	}
	if c.Post.Status != "text" {
		t.Fatalf("post filter lost: %q", c.Post.Status)
	}
}

func TestLoad_CUERejectsWrongType(t *testing.T) {
	path := writeTemp(t, "hermes.cue", `limits: { logEntries: "five" }`)
	_, err := Load(path)
	if err == nil {
		t.Fatalf("expected type error")
	}
	if !strings.Contains(err.Error(), "logEntries") {
		t.Fatalf("error does not name the field: %v", err)
	}
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	path := writeTemp(t, "hermes.toml", "x = 1\n")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected unsupported format error")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected read error")
	}
}
