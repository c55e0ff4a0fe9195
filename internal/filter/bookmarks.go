package filter

import (
	"strings"

	"github.com/flarebyte/hermes-epitome/internal/classify"
	"github.com/flarebyte/hermes-epitome/internal/config"
)

type bookmarkParse struct {
	entries  []BookmarkEntry
	rendered []string
	echoes   []string
	parsed   int
	unparsed int
}

func filterBookmarks(raw string, cfg config.Config, verbose bool) Result {
	p := parseBookmarks(raw)
	var out []string
	for _, b := range p.entries {
		line := b.Name + ": " + b.ChangeID
		if b.CommitID != "" {
			line += " " + b.CommitID
		}
		if b.TrackedRemote != "" {
			line += " (tracked @" + b.TrackedRemote + ")"
		}
		out = append(out, line)
	}
	out = append(out, p.echoes...)
	text := "No bookmarks"
	if len(out) > 0 {
		text = strings.Join(out, "\n")
	}
	return Result{Text: text, Rendered: p.rendered, Parsed: p.parsed, Unparsed: p.unparsed}
}

// parseBookmarks reads `jj bookmark list` output:
//
//	main: orrkosyo 7fd1a60b (empty) Merge pull request #6
//	  @origin: orrkosyo 7fd1a60b (empty) Merge pull request #6
//
// Indented @remote lines collapse into a tracked annotation on the local
// bookmark above them.
func parseBookmarks(raw string) bookmarkParse {
	var p bookmarkParse
	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		indented := strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t")
		name, rest, found := strings.Cut(trimmed, ":")
		if !found || strings.ContainsAny(name, " \t") {
			p.echoes = append(p.echoes, trimmed)
			p.unparsed++
			continue
		}
		if indented && strings.HasPrefix(name, "@") {
			// Remote tracking detail for the previous local bookmark.
			if n := len(p.entries); n > 0 && p.entries[n-1].TrackedRemote == "" {
				p.entries[n-1].TrackedRemote = strings.TrimPrefix(name, "@")
			}
			p.parsed++
			continue
		}
		fields := strings.Fields(rest)
		if len(fields) < 2 {
			p.echoes = append(p.echoes, trimmed)
			p.unparsed++
			continue
		}
		b := BookmarkEntry{Name: name, ChangeID: fields[0], CommitID: fields[1]}
		if strings.Contains(trimmed, "(tracked)") || strings.Contains(trimmed, "@origin") {
			b.TrackedRemote = "origin"
		}
		p.entries = append(p.entries, b)
		p.rendered = append(p.rendered, line)
		p.parsed++
	}
	return p
}

func init() { Register(classify.KindBookmarks, filterBookmarks) }
