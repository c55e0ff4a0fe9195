package filter

import (
	"fmt"
	"strings"

	"github.com/flarebyte/hermes-epitome/internal/classify"
	"github.com/flarebyte/hermes-epitome/internal/config"
)

// logEntryLines pairs a parsed entry with the raw lines that produced it.
type logEntryLines struct {
	entry LogEntry
	raw   []string
	// echo holds the verbatim line for entries that could not be parsed.
	echo string
}

type logParse struct {
	entries  []logEntryLines
	parsed   int
	unparsed int
}

func filterLog(raw string, cfg config.Config, verbose bool) Result {
	p := parseLog(raw)
	return formatLog(p, cfg.Limits.LogEntries, cfg.Limits.MessageMax, verbose)
}

func parseLog(raw string) logParse {
	var p logParse
	var cur *logEntryLines
	flush := func() {
		if cur != nil {
			p.entries = append(p.entries, *cur)
			cur = nil
		}
	}
	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimLeft(line, " ")
		// Side-branch entries sit behind graph columns ("│ ○  kkmpptxz …"),
		// so the glyph test runs on the stripped form.
		stripped, nested := stripGraphColumns(trimmed)
		if g := graphGlyph(stripped); g != "" && strings.Contains(stripped, " ") {
			if e, ok := parseLogLine(stripped, g); ok {
				flush()
				p.parsed++
				cur = &logEntryLines{entry: e, raw: []string{line}}
				continue
			}
			if !nested {
				flush()
				p.unparsed++
				p.entries = append(p.entries, logEntryLines{echo: line, raw: []string{line}})
				continue
			}
			// A nested glyph that does not parse as an entry falls through to
			// the continuation handling below.
		}
		if isGraphContinuation(line) {
			p.parsed++
			content := strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "│|~├╮╯─╭╰ "))
			if cur != nil {
				cur.raw = append(cur.raw, line)
				if content != "" && !strings.HasPrefix(content, "(empty)") && !strings.Contains(content, "no description") && cur.entry.Description == "" {
					cur.entry.Description = content
				}
			}
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		p.unparsed++
		flush()
		p.entries = append(p.entries, logEntryLines{echo: line, raw: []string{line}})
	}
	flush()
	return p
}

// parseLogLine splits one entry line into identifier, hash, bookmarks and
// markers, dropping author emails and absolute timestamps.
// Input: "@  mpqrykyp user@email.com 2023-02-12 15:00:22 master aef4df99"
func parseLogLine(trimmed, glyph string) (LogEntry, bool) {
	e := LogEntry{Glyph: glyph}
	rest := strings.TrimSpace(strings.TrimPrefix(trimmed, glyph))
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return e, false
	}
	e.ChangeID = fields[0]
	for _, f := range fields[1:] {
		switch {
		case looksLikeEmail(f), looksLikeDate(f), looksLikeTime(f):
			// Redacted: author identity and absolute timestamps carry no
			// follow-up value.
		case f == "(empty)":
			e.IsEmpty = true
		case f == "conflict":
			e.Conflicted = true
		case strings.Contains(f, "("):
			// Marker such as git_head(); not an identifier.
		case e.CommitID == "" && isHexID(f, 8):
			e.CommitID = f
		default:
			e.Bookmarks = append(e.Bookmarks, strings.TrimSuffix(f, "*"))
		}
	}
	if e.CommitID == "" && !isChangeID(e.ChangeID) {
		return e, false
	}
	return e, true
}

func formatLog(p logParse, limit, messageMax int, verbose bool) Result {
	var res Result
	var out []string
	shown := 0
	total := 0
	for _, el := range p.entries {
		if el.echo != "" {
			out = append(out, el.echo)
			res.Rendered = append(res.Rendered, el.raw...)
			continue
		}
		total++
		if shown >= limit {
			continue
		}
		shown++
		out = append(out, formatLogEntry(el.entry, messageMax, verbose))
		res.Rendered = append(res.Rendered, el.raw...)
	}
	if total > shown {
		out = append(out, fmt.Sprintf("… %d more", total-shown))
	}
	if len(out) == 0 {
		res.Text = "No commits"
	} else {
		res.Text = strings.Join(out, "\n")
	}
	res.Parsed = p.parsed
	res.Unparsed = p.unparsed
	return res
}

func formatLogEntry(e LogEntry, messageMax int, verbose bool) string {
	parts := []string{e.Glyph, e.ChangeID}
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
	if e.Description != "" {
		d := e.Description
		if !verbose {
			d = truncateMessage(d, messageMax)
		}
		parts = append(parts, d)
	}
	return strings.Join(parts, " ")
}

func init() { Register(classify.KindLog, filterLog) }
