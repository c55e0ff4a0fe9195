package filter

import (
	"fmt"
	"strings"

	"github.com/flarebyte/hermes-epitome/internal/classify"
	"github.com/flarebyte/hermes-epitome/internal/config"
)

func filterDiff(raw string, cfg config.Config, verbose bool) Result {
	hunks, prelude, parsed, unparsed := parseDiff(raw)
	if len(hunks) == 0 && strings.TrimSpace(raw) == "" {
		return Result{Text: "(no changes)", Parsed: 1}
	}
	text := formatDiff(hunks, prelude, cfg.Limits.HunkLines, cfg.Limits.DiffTotalLines)
	// Rendered stays empty: hunk content is capped with explicit markers, so
	// the identifier check applies only to entry-based filters.
	return Result{Text: text, Parsed: parsed, Unparsed: unparsed}
}

// parseDiff splits git-format diff text into per-file hunks. Lines before the
// first "diff --git" header are returned as prelude and echoed verbatim.
func parseDiff(raw string) (hunks []DiffHunk, prelude []string, parsed, unparsed int) {
	var cur *DiffHunk
	inHunk := false
	flush := func() {
		if cur != nil {
			hunks = append(hunks, *cur)
			cur = nil
		}
	}
	for _, line := range strings.Split(raw, "\n") {
		switch {
		case line == "":
			// Hunk context lines carry a leading space; a truly empty line is
			// only the trailing newline artifact.
		case strings.HasPrefix(line, "diff --git "):
			flush()
			inHunk = false
			cur = &DiffHunk{Path: pathFromDiffHeader(line)}
			parsed++
		case cur == nil:
			if strings.TrimSpace(line) != "" {
				prelude = append(prelude, line)
				unparsed++
			}
		case strings.HasPrefix(line, "@@"):
			inHunk = true
			cur.Lines = append(cur.Lines, line)
			parsed++
		case inHunk:
			if strings.HasPrefix(line, "+") {
				cur.Added++
			} else if strings.HasPrefix(line, "-") {
				cur.Removed++
			}
			cur.Lines = append(cur.Lines, line)
			parsed++
		case strings.HasPrefix(line, "+++ b/"):
			cur.Path = strings.TrimPrefix(line, "+++ b/")
			parsed++
		case strings.HasPrefix(line, "Binary files"):
			cur.Lines = append(cur.Lines, line)
			parsed++
		default:
			// index/mode/rename headers add nothing the stat line does not.
			parsed++
		}
	}
	flush()
	return hunks, prelude, parsed, unparsed
}

// pathFromDiffHeader extracts the b-side path of "diff --git a/x b/y".
func pathFromDiffHeader(line string) string {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return ""
	}
	return strings.TrimPrefix(fields[3], "b/")
}

// formatDiff renders the stat summary, then hunk content under the per-file
// and total caps. Truncation is always marked, never silent.
func formatDiff(hunks []DiffHunk, prelude []string, hunkCap, totalCap int) string {
	var out []string
	out = append(out, prelude...)
	for _, h := range hunks {
		out = append(out, fmt.Sprintf("%s | +%d -%d", h.Path, h.Added, h.Removed))
	}
	out = append(out, "--- Changes ---")
	emitted := 0
	for i := range hunks {
		h := &hunks[i]
		if emitted >= totalCap {
			remaining := 0
			for _, rest := range hunks[i:] {
				remaining += len(rest.Lines)
			}
			out = append(out, fmt.Sprintf("… (%d more lines)", remaining))
			break
		}
		out = append(out, "--- "+h.Path)
		budget := hunkCap
		if emitted+budget > totalCap {
			budget = totalCap - emitted
		}
		n := len(h.Lines)
		if n > budget {
			h.Truncated = true
			n = budget
		}
		out = append(out, h.Lines[:n]...)
		emitted += n
		if h.Truncated {
			out = append(out, fmt.Sprintf("… (%d more lines)", len(h.Lines)-n))
		}
	}
	return strings.Join(out, "\n")
}

func init() { Register(classify.KindDiff, filterDiff) }
