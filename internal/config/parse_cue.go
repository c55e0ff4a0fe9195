package config

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// parseCUE compiles a CUE document and extracts the optional fields over the
// defaults. Only scalar kinds we expect are decoded; anything else is a
// validation error rather than a silent skip.
func parseCUE(data []byte) (Config, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data)
	if err := v.Err(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %v", err)
	}

	c := Default()
	if err := decodeStringField(v, "configVersion", &c.ConfigVersion); err != nil {
		return Config{}, err
	}

	lv := v.LookupPath(cue.ParsePath("limits"))
	if lv.Exists() {
		ints := []struct {
			name string
			dst  *int
		}{
			{"logEntries", &c.Limits.LogEntries},
			{"opLogEntries", &c.Limits.OpLogEntries},
			{"hunkLines", &c.Limits.HunkLines},
			{"diffTotalLines", &c.Limits.DiffTotalLines},
			{"messageMax", &c.Limits.MessageMax},
			{"opIdChars", &c.Limits.OpIDChars},
		}
		for _, f := range ints {
			if err := decodeIntField(lv, f.name, f.dst); err != nil {
				return Config{}, err
			}
		}
		if err := decodeFloatField(lv, "maxUnparsed", &c.Limits.MaxUnparsed); err != nil {
			return Config{}, err
		}
	}

	pv := v.LookupPath(cue.ParsePath("postFilters"))
	if pv.Exists() {
		strs := []struct {
			name string
			dst  *string
		}{
			{"status", &c.Post.Status},
			{"log", &c.Post.Log},
			{"diff", &c.Post.Diff},
			{"show", &c.Post.Show},
			{"opLog", &c.Post.OpLog},
			{"bookmarks", &c.Post.Bookmarks},
		}
		for _, f := range strs {
			if err := decodeStringField(pv, f.name, f.dst); err != nil {
				return Config{}, err
			}
		}
	}
	return fillDefaults(c), nil
}

func decodeStringField(v cue.Value, name string, dst *string) error {
	f := v.LookupPath(cue.ParsePath(name))
	if !f.Exists() {
		return nil
	}
	if f.Kind() != cue.StringKind {
		return fmt.Errorf("invalid type for field: %s (expected string)", name)
	}
	if err := f.Decode(dst); err != nil {
		return fmt.Errorf("invalid value for %s: %v", name, err)
	}
	return nil
}

func decodeIntField(v cue.Value, name string, dst *int) error {
	f := v.LookupPath(cue.ParsePath(name))
	if !f.Exists() {
		return nil
	}
	if f.Kind() != cue.IntKind {
		return fmt.Errorf("invalid type for field: %s (expected int)", name)
	}
	if err := f.Decode(dst); err != nil {
		return fmt.Errorf("invalid value for %s: %v", name, err)
	}
	return nil
}

func decodeFloatField(v cue.Value, name string, dst *float64) error {
	f := v.LookupPath(cue.ParsePath(name))
	if !f.Exists() {
		return nil
	}
	if f.Kind() != cue.FloatKind && f.Kind() != cue.IntKind {
		return fmt.Errorf("invalid type for field: %s (expected number)", name)
	}
	if err := f.Decode(dst); err != nil {
		return fmt.Errorf("invalid value for %s: %v", name, err)
	}
	return nil
}
