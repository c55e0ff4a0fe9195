package filter

import (
	"fmt"
	"strings"

	"github.com/flarebyte/hermes-epitome/internal/classify"
	"github.com/flarebyte/hermes-epitome/internal/config"
)

// statusParse carries the parsed record plus the bookkeeping the guard needs.
type statusParse struct {
	rec      StatusRecord
	echoes   []string
	rendered []string
	parsed   int
	unparsed int
}

func filterStatus(raw string, cfg config.Config, verbose bool) Result {
	p := parseStatus(raw)
	text := formatStatus(p, cfg)
	return Result{Text: text, Rendered: p.rendered, Parsed: p.parsed, Unparsed: p.unparsed}
}

func parseStatus(raw string) statusParse {
	var p statusParse
	inConflicts := false
	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			continue
		case strings.HasPrefix(trimmed, "The working copy"),
			strings.HasPrefix(trimmed, "Working copy changes:"),
			strings.HasPrefix(trimmed, "Rebased"),
			strings.HasPrefix(trimmed, "Hint:"):
			p.parsed++
		case strings.Contains(trimmed, "unresolved conflicts at these paths"):
			inConflicts = true
			p.parsed++
		case isFileChangeLine(trimmed):
			p.rec.FileChanges = append(p.rec.FileChanges, FileChange{Op: trimmed[0], Path: strings.TrimSpace(trimmed[2:])})
			p.rec.HasChanges = true
			p.rendered = append(p.rendered, line)
			p.parsed++
		case strings.HasPrefix(trimmed, "Working copy") && strings.Contains(trimmed, ":"):
			p.rec.WorkingCopy = parseStatusEntry(trimmed)
			p.rendered = append(p.rendered, line)
			p.parsed++
		case strings.HasPrefix(trimmed, "Parent commit") && strings.Contains(trimmed, ":"):
			p.rec.Parents = append(p.rec.Parents, parseStatusEntry(trimmed))
			p.rendered = append(p.rendered, line)
			p.parsed++
		case inConflicts && strings.HasSuffix(trimmed, "-sided conflict"):
			p.rec.Conflicts = append(p.rec.Conflicts, parseConflictLine(trimmed))
			p.rendered = append(p.rendered, line)
			p.parsed++
		default:
			// Unknown shape: echo verbatim rather than dropping content.
			p.echoes = append(p.echoes, trimmed)
			p.unparsed++
		}
	}
	return p
}

func isFileChangeLine(trimmed string) bool {
	if len(trimmed) < 3 || trimmed[1] != ' ' {
		return false
	}
	switch trimmed[0] {
	case 'M', 'A', 'D', 'R', 'C':
		return true
	}
	return false
}

// parseStatusEntry parses a "Working copy  (@) : ..." or
// "Parent commit (@-): ..." line into a LogEntry. Bookmarks appear only
// between the commit hash and a " | " separator; without the separator
// everything after the hash is description or parenthetical markers.
// Input: "Working copy  (@) : kntqzsqt d7439b06 (empty) (no description set)"
func parseStatusEntry(trimmed string) LogEntry {
	var e LogEntry
	colon := strings.Index(trimmed, ": ")
	if colon < 0 {
		return e
	}
	after := trimmed[colon+2:]
	e.IsEmpty = strings.Contains(after, "(empty)")
	e.Conflicted = strings.Contains(after, "(conflict)")

	if pipe := strings.Index(after, " | "); pipe >= 0 {
		head := strings.Fields(after[:pipe])
		if len(head) >= 1 {
			e.ChangeID = head[0]
		}
		if len(head) >= 2 {
			e.CommitID = head[1]
		}
		for _, f := range head[min(len(head), 2):] {
			if !strings.HasPrefix(f, "(") {
				e.Bookmarks = append(e.Bookmarks, strings.TrimSuffix(f, "*"))
			}
		}
		e.Description = cleanDescription(after[pipe+3:])
		return e
	}

	fields := strings.Fields(after)
	if len(fields) >= 1 {
		e.ChangeID = fields[0]
	}
	if len(fields) >= 2 {
		e.CommitID = fields[1]
		rest := after[strings.Index(after, fields[1])+len(fields[1]):]
		e.Description = cleanDescription(rest)
	}
	return e
}

// cleanDescription strips the parenthetical markers jj appends around the
// description text.
func cleanDescription(s string) string {
	for _, marker := range []string{"(empty)", "(no description set)", "(conflict)"} {
		s = strings.ReplaceAll(s, marker, "")
	}
	return strings.TrimSpace(s)
}

// parseConflictLine parses "src/main.rs    2-sided conflict".
func parseConflictLine(trimmed string) Conflict {
	c := Conflict{Sides: 2}
	fields := strings.Fields(trimmed)
	if len(fields) >= 1 {
		c.Path = fields[0]
	}
	for _, f := range fields[1:] {
		if n, ok := leadingInt(strings.TrimSuffix(f, "-sided")); ok {
			c.Sides = n
		}
	}
	return c
}

func leadingInt(s string) (int, bool) {
	if !allDigits(s) {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n, true
}

func formatStatus(p statusParse, cfg config.Config) string {
	var out []string
	if wc := formatWorkingCopyLine(p.rec.WorkingCopy); wc != "" {
		out = append(out, wc)
	}
	for _, fc := range p.rec.FileChanges {
		out = append(out, fmt.Sprintf("%c %s", fc.Op, fc.Path))
	}
	if len(p.rec.Conflicts) > 0 {
		out = append(out, fmt.Sprintf("Conflicts: %d files", len(p.rec.Conflicts)))
		for _, c := range p.rec.Conflicts {
			out = append(out, fmt.Sprintf("%s (%d-sided)", c.Path, c.Sides))
		}
	}
	for _, par := range p.rec.Parents {
		if pl := formatParentLine(par); pl != "" {
			out = append(out, pl)
		}
	}
	out = append(out, p.echoes...)
	if len(out) == 0 {
		return "Clean working copy"
	}
	return strings.Join(out, "\n")
}

func formatWorkingCopyLine(e LogEntry) string {
	if e.ChangeID == "" {
		return ""
	}
	parts := []string{"@", e.ChangeID}
	if e.CommitID != "" {
		parts = append(parts, e.CommitID)
	}
	parts = append(parts, e.Bookmarks...)
	if e.IsEmpty {
		parts = append(parts, "(empty)")
	}
	if e.Conflicted {
		parts = append(parts, "(conflict)")
	}
	return strings.Join(parts, " ")
}

// formatParentLine prefers the bookmark over the commit hash: the change id
// stays resolvable for follow-up commands either way.
func formatParentLine(e LogEntry) string {
	if e.ChangeID == "" {
		return ""
	}
	parts := []string{"@-", e.ChangeID}
	if len(e.Bookmarks) > 0 {
		parts = append(parts, e.Bookmarks...)
	} else if e.CommitID != "" {
		parts = append(parts, e.CommitID)
	}
	if e.Conflicted {
		parts = append(parts, "(conflict)")
	}
	return strings.Join(parts, " ")
}

func init() { Register(classify.KindStatus, filterStatus) }
