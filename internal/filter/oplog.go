package filter

import (
	"fmt"
	"strings"

	"github.com/flarebyte/hermes-epitome/internal/classify"
	"github.com/flarebyte/hermes-epitome/internal/config"
)

type opEntryLines struct {
	entry OpLogEntry
	raw   []string
	echo  string
}

type opLogParse struct {
	entries  []opEntryLines
	parsed   int
	unparsed int
}

func filterOpLog(raw string, cfg config.Config, verbose bool) Result {
	p := parseOpLog(raw, cfg.Limits.OpIDChars)
	return formatOpLog(p, cfg.Limits.OpLogEntries, cfg.Limits.MessageMax, verbose)
}

// parseOpLog walks op-log entries:
//
//	@  d3b77addea49 user@host 3 minutes ago, lasted 3 milliseconds
//	│  squash commits into f7fb5943a6b9460eb106dba2fac5cac1625c6f7a
//	│  args: jj squash
func parseOpLog(raw string, opIDChars int) opLogParse {
	var p opLogParse
	var cur *opEntryLines
	flush := func() {
		if cur != nil {
			p.entries = append(p.entries, *cur)
			cur = nil
		}
	}
	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimLeft(line, " ")
		// Concurrent operations render behind graph columns ("│ ○  <op id>"),
		// so the glyph test runs on the stripped form.
		stripped, nested := stripGraphColumns(trimmed)
		if g := graphGlyph(stripped); g != "" {
			fields := strings.Fields(strings.TrimPrefix(stripped, g))
			if len(fields) > 0 && isHexID(fields[0], 8) {
				flush()
				p.parsed++
				full := fields[0]
				short := full
				if len(short) > opIDChars {
					short = short[:opIDChars]
				}
				cur = &opEntryLines{
					entry: OpLogEntry{
						Glyph:        g,
						ShortOpID:    short,
						FullOpID:     full,
						RelativeTime: shortenRelativeTime(stripped),
					},
					raw: []string{line},
				}
				continue
			}
			if !nested {
				flush()
				p.unparsed++
				p.entries = append(p.entries, opEntryLines{echo: line, raw: []string{line}})
				continue
			}
			// A nested glyph without an op id falls through to the
			// continuation handling below.
		}
		if isGraphContinuation(line) {
			p.parsed++
			content := strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "│|~├╮╯─╭╰ "))
			if cur == nil || content == "" {
				continue
			}
			cur.raw = append(cur.raw, line)
			if rest, ok := strings.CutPrefix(content, "args:"); ok {
				cur.entry.Args = strings.TrimSpace(rest)
			} else if cur.entry.Summary == "" {
				cur.entry.Summary = content
			}
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		p.unparsed++
		flush()
		p.entries = append(p.entries, opEntryLines{echo: line, raw: []string{line}})
	}
	flush()
	return p
}

func formatOpLog(p opLogParse, limit, messageMax int, verbose bool) Result {
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
		e := el.entry
		parts := []string{e.Glyph, e.ShortOpID, e.RelativeTime}
		if e.Summary != "" {
			parts = append(parts, truncateMessage(e.Summary, messageMax))
		}
		if verbose && e.Args != "" {
			parts = append(parts, "["+e.Args+"]")
		}
		out = append(out, strings.Join(parts, " "))
		res.Rendered = append(res.Rendered, el.raw...)
	}
	if total > shown {
		out = append(out, fmt.Sprintf("… %d more", total-shown))
	}
	if len(out) == 0 {
		res.Text = "No operations"
	} else {
		res.Text = strings.Join(out, "\n")
	}
	res.Parsed = p.parsed
	res.Unparsed = p.unparsed
	return res
}

func init() { Register(classify.KindOpLog, filterOpLog) }
