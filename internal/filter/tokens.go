package filter

import "strings"

// truncateMessage caps msg at max runes, appending a single-rune ellipsis
// when anything was cut.
func truncateMessage(msg string, max int) string {
	r := []rune(msg)
	if len(r) <= max {
		return msg
	}
	if max <= 1 {
		return "…"
	}
	return string(r[:max-1]) + "…"
}

var relTimeUnits = []struct {
	long  string
	short string
}{
	{"seconds ago", "s ago"},
	{"second ago", "s ago"},
	{"minutes ago", "m ago"},
	{"minute ago", "m ago"},
	{"hours ago", "h ago"},
	{"hour ago", "h ago"},
	{"days ago", "d ago"},
	{"day ago", "d ago"},
	{"weeks ago", "w ago"},
	{"week ago", "w ago"},
	{"months ago", "mo ago"},
	{"month ago", "mo ago"},
	{"years ago", "y ago"},
	{"year ago", "y ago"},
}

// shortenRelativeTime finds "N <unit> ago" in line and compresses it
// ("3 minutes ago, lasted 3 milliseconds" -> "3m ago").
func shortenRelativeTime(line string) string {
	for _, u := range relTimeUnits {
		pos := strings.Index(line, u.long)
		if pos < 0 {
			continue
		}
		words := strings.Fields(line[:pos])
		if len(words) == 0 {
			continue
		}
		num := words[len(words)-1]
		if !allDigits(num) {
			continue
		}
		return num + u.short
	}
	return "now"
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// isHexID reports a hex run of at least min chars containing at least one
// decimal digit. The digit requirement keeps ordinary words spelled with
// a-f letters ("decade", "efface") out of the identifier set.
func isHexID(s string, min int) bool {
	if len(s) < min || len(s) > 40 {
		return false
	}
	digit := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			digit = true
		case c >= 'a' && c <= 'f':
		default:
			return false
		}
	}
	return digit
}

// isChangeID reports a token drawn entirely from the jj change-id alphabet
// (the letters k through z) of at least 8 chars.
func isChangeID(s string) bool {
	if len(s) < 8 || len(s) > 32 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'k' || s[i] > 'z' {
			return false
		}
	}
	return true
}

func looksLikeEmail(s string) bool {
	at := strings.IndexByte(s, '@')
	return at > 0 && strings.IndexByte(s[at:], '.') > 0
}

// looksLikeDate matches YYYY-MM-DD.
func looksLikeDate(s string) bool {
	return len(s) == 10 && s[4] == '-' && s[7] == '-' &&
		allDigits(s[:4]) && allDigits(s[5:7]) && allDigits(s[8:])
}

// looksLikeTime matches HH:MM:SS with optional fractional part.
func looksLikeTime(s string) bool {
	if len(s) < 8 || s[2] != ':' || s[5] != ':' {
		return false
	}
	return allDigits(s[:2]) && allDigits(s[3:5]) && allDigits(s[6:8])
}

// graphGlyph returns the leading log-graph glyph of a trimmed line, or ""
// when the line does not start an entry.
func graphGlyph(trimmed string) string {
	for _, g := range []string{"@", "○", "◆", "●", "×", "*", "o"} {
		if strings.HasPrefix(trimmed, g) {
			rest := trimmed[len(g):]
			if rest == "" || rest[0] == ' ' {
				return g
			}
		}
	}
	return ""
}

// stripGraphColumns removes the leading graph columns in front of a nested
// entry ("│ ○  kkmpptxz" -> "○  kkmpptxz"). The entry glyphs themselves are
// not column runes, so a top-level entry line passes through unchanged.
func stripGraphColumns(trimmed string) (string, bool) {
	stripped := strings.TrimLeft(trimmed, "│|├╮╯─ ")
	return stripped, stripped != trimmed
}

// isGraphContinuation reports lines that continue the current entry
// (description rows prefixed by a pipe or indentation under the glyph).
func isGraphContinuation(line string) bool {
	t := strings.TrimLeft(line, " ")
	for _, p := range []string{"│", "|", "~", "├", "╮", "╯", "╭", "╰"} {
		if strings.HasPrefix(t, p) {
			return true
		}
	}
	return false
}
