// Package confirm renders one-line acknowledgements for mutating commands
// whose full output carries no follow-up value.
package confirm

import (
	"fmt"
	"strings"

	"github.com/flarebyte/hermes-epitome/internal/vcsexec"
)

// Render produces the success line for a mutating operation, pulling the one
// useful token (change id, count, bookmark) out of the captured output.
func Render(op string, out vcsexec.RawOutput) string {
	combined := out.Combined()
	switch {
	case op == "new" || op == "describe" || op == "desc" || op == "commit" || op == "edit":
		if id := extractChangeID(combined); id != "" {
			return "ok ✓ " + id
		}
	case op == "squash":
		return "ok ✓ squashed"
	case op == "absorb":
		if n := countPrefixedLines(combined, "  "); n > 0 {
			return fmt.Sprintf("ok ✓ absorbed %d changes", n)
		}
		return "ok ✓ absorbed"
	case op == "rebase":
		if n := extractRebasedCount(combined); n > 0 {
			return fmt.Sprintf("ok ✓ rebased %d commits", n)
		}
		return "ok ✓ rebased"
	case op == "split":
		if n := strings.Count(combined, "\n@"); n > 0 {
			return fmt.Sprintf("ok ✓ split into %d", n+1)
		}
		return "ok ✓ split"
	case op == "undo":
		return "ok ✓ undone"
	case op == "git push":
		if b := extractPushedBookmark(combined); b != "" {
			return "ok ✓ pushed " + b
		}
		return "ok ✓ pushed"
	case op == "git fetch":
		if n := countFetchedRefs(combined); n > 0 {
			return fmt.Sprintf("ok fetched (%d new)", n)
		}
		return "ok fetched"
	}
	return "ok ✓"
}

// Failure renders the marker that precedes the verbatim stderr of a failed
// mutating command.
func Failure(op string) string {
	return "FAILED: jj " + op
}

// extractChangeID finds the first eight-character lowercase change id in the
// output, skipping ordinary words by requiring the jj change-id alphabet.
func extractChangeID(s string) string {
	for _, f := range strings.Fields(s) {
		tok := strings.Trim(f, "():,")
		if len(tok) != 8 {
			continue
		}
		ok := true
		for _, r := range tok {
			if r < 'k' || r > 'z' {
				ok = false
				break
			}
		}
		if ok {
			return tok
		}
	}
	return ""
}

// extractRebasedCount reads "Rebased N commits" style summaries.
func extractRebasedCount(s string) int {
	for _, line := range strings.Split(s, "\n") {
		fields := strings.Fields(line)
		if len(fields) >= 2 && fields[0] == "Rebased" {
			var n int
			if _, err := fmt.Sscanf(fields[1], "%d", &n); err == nil {
				return n
			}
		}
	}
	return 0
}

// extractPushedBookmark reads "Move forward bookmark main from … to …" and
// "Add bookmark feature to …" push summaries.
func extractPushedBookmark(s string) string {
	for _, line := range strings.Split(s, "\n") {
		fields := strings.Fields(line)
		for i, f := range fields {
			if f == "bookmark" && i+1 < len(fields) {
				return fields[i+1]
			}
		}
	}
	return ""
}

// countFetchedRefs counts "bookmark: …" update lines in fetch output.
func countFetchedRefs(s string) int {
	n := 0
	for _, line := range strings.Split(s, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "bookmark ") || strings.Contains(trimmed, "[new]") {
			n++
		}
	}
	return n
}

func countPrefixedLines(s, prefix string) int {
	n := 0
	for _, line := range strings.Split(s, "\n") {
		if strings.HasPrefix(line, prefix) && strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}
