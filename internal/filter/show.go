package filter

import (
	"strings"

	"github.com/flarebyte/hermes-epitome/internal/classify"
	"github.com/flarebyte/hermes-epitome/internal/config"
)

// showHeaderMax bounds the commit-info header kept before the compact diff.
const showHeaderMax = 5

func filterShow(raw string, cfg config.Config, verbose bool) Result {
	header, diffText := splitShow(raw)
	keep := header
	if len(keep) > showHeaderMax && !verbose {
		keep = keep[:showHeaderMax]
	}
	out := make([]string, 0, len(keep)+1)
	out = append(out, redactHeader(keep)...)

	parsed := len(keep)
	unparsed := 0
	rendered := append([]string(nil), keep...)
	if strings.TrimSpace(diffText) != "" {
		dres := filterDiff(diffText, cfg, verbose)
		out = append(out, dres.Text)
		parsed += dres.Parsed
		unparsed += dres.Unparsed
	}
	return Result{
		Text:     strings.Join(out, "\n"),
		Rendered: rendered,
		Parsed:   parsed,
		Unparsed: unparsed,
	}
}

// splitShow separates the commit-info header from the diff body.
func splitShow(raw string) (header []string, diffText string) {
	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "diff --git") || strings.HasPrefix(line, "--- ") || strings.HasPrefix(line, "+++ ") {
			return header, strings.Join(lines[i:], "\n")
		}
		if strings.TrimSpace(line) != "" {
			header = append(header, line)
		}
	}
	return header, ""
}

// redactHeader drops author emails and absolute timestamps from the kept
// header lines while preserving identifiers.
func redactHeader(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		fields := strings.Fields(line)
		kept := fields[:0]
		for _, f := range fields {
			tok := strings.Trim(f, "<>()")
			if looksLikeEmail(tok) || looksLikeDate(tok) || looksLikeTime(tok) {
				continue
			}
			kept = append(kept, f)
		}
		out = append(out, strings.Join(kept, " "))
	}
	return out
}

func init() { Register(classify.KindShow, filterShow) }
