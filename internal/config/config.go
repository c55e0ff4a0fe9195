package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Limits bounds how much of the upstream output survives compaction.
// Zero values are replaced by defaults at load time.
type Limits struct {
	LogEntries     int     `yaml:"logEntries"`
	OpLogEntries   int     `yaml:"opLogEntries"`
	HunkLines      int     `yaml:"hunkLines"`
	DiffTotalLines int     `yaml:"diffTotalLines"`
	MessageMax     int     `yaml:"messageMax"`
	OpIDChars      int     `yaml:"opIdChars"`
	MaxUnparsed    float64 `yaml:"maxUnparsed"`
}

// PostFilters holds optional inline Lua snippets applied to the compact text
// of each filter kind before the fidelity check.
type PostFilters struct {
	Status    string `yaml:"status"`
	Log       string `yaml:"log"`
	Diff      string `yaml:"diff"`
	Show      string `yaml:"show"`
	OpLog     string `yaml:"opLog"`
	Bookmarks string `yaml:"bookmarks"`
}

// Config is the immutable per-invocation configuration threaded to parsers
// and formatters. It is never mutated after Load.
type Config struct {
	ConfigVersion string      `yaml:"configVersion"`
	Limits        Limits      `yaml:"limits"`
	Post          PostFilters `yaml:"postFilters"`
}

// Default returns the documented default configuration.
func Default() Config {
	return Config{
		ConfigVersion: "1",
		Limits: Limits{
			LogEntries:     5,
			OpLogEntries:   5,
			HunkLines:      10,
			DiffTotalLines: 100,
			MessageMax:     60,
			OpIDChars:      7,
			MaxUnparsed:    0.30,
		},
	}
}

// Load reads a config file and merges it over the defaults. Supported
// formats: .cue and .yaml/.yml.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	switch filepath.Ext(path) {
	case ".cue":
		return parseCUE(data)
	case ".yaml", ".yml":
		return parseYAML(data)
	default:
		return Config{}, errors.New("unsupported config format: expected .cue or .yaml")
	}
}

// fillDefaults replaces unset numeric limits with their defaults.
func fillDefaults(c Config) Config {
	d := Default()
	if c.ConfigVersion == "" {
		c.ConfigVersion = d.ConfigVersion
	}
	if c.Limits.LogEntries <= 0 {
		c.Limits.LogEntries = d.Limits.LogEntries
	}
	if c.Limits.OpLogEntries <= 0 {
		c.Limits.OpLogEntries = d.Limits.OpLogEntries
	}
	if c.Limits.HunkLines <= 0 {
		c.Limits.HunkLines = d.Limits.HunkLines
	}
	if c.Limits.DiffTotalLines <= 0 {
		c.Limits.DiffTotalLines = d.Limits.DiffTotalLines
	}
	if c.Limits.MessageMax <= 0 {
		c.Limits.MessageMax = d.Limits.MessageMax
	}
	if c.Limits.OpIDChars <= 0 {
		c.Limits.OpIDChars = d.Limits.OpIDChars
	}
	if c.Limits.MaxUnparsed <= 0 {
		c.Limits.MaxUnparsed = d.Limits.MaxUnparsed
	}
	return c
}
