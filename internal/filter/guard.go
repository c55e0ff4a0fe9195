package filter

import "strings"

// Check verifies that every identifier visible in the rendered source lines
// survived compaction, then applies the parse-failure threshold. A compact
// view that lost an identifier, or a parse that mostly failed, falls back to
// the raw output untouched.
func Check(raw string, res Result, maxUnparsed float64) CompactResult {
	total := res.Parsed + res.Unparsed
	if total > 0 && float64(res.Unparsed)/float64(total) > maxUnparsed {
		return CompactResult{Text: raw, DegradedToRaw: true}
	}
	for _, line := range res.Rendered {
		if !lineIdentifiersPresent(line, res.Text) {
			return CompactResult{Text: raw, DegradedToRaw: true}
		}
	}
	return CompactResult{Text: res.Text}
}

// lineIdentifiersPresent reports whether the identifiers of one source line
// all appear in the compact text. A commit hash counts as present when the
// change identifier from the same line survived, since that is the handle
// jj resolves.
func lineIdentifiersPresent(line, compact string) bool {
	ids := identifierTokens(line)
	if len(ids.hashes) == 0 && len(ids.changeIDs) == 0 && len(ids.names) == 0 {
		return true
	}
	changeIDOK := false
	for _, c := range ids.changeIDs {
		if tokenPresent(compact, c) {
			changeIDOK = true
		} else {
			return false
		}
	}
	for _, h := range ids.hashes {
		if !tokenPresent(compact, h) && !changeIDOK {
			return false
		}
	}
	for _, n := range ids.names {
		if !strings.Contains(compact, n) {
			return false
		}
	}
	return true
}

type lineIdentifiers struct {
	hashes    []string
	changeIDs []string
	names     []string
}

// identifierTokens scans one raw line for tokens a reader might need to feed
// back to jj: hex commit and operation ids, change ids, and the bookmark name
// of a "name: …" bookmark entry.
func identifierTokens(line string) lineIdentifiers {
	var ids lineIdentifiers
	trimmed := strings.TrimSpace(line)
	if name, rest, ok := strings.Cut(trimmed, ": "); ok && !strings.ContainsAny(name, " \t") && len(strings.Fields(rest)) > 0 {
		ids.names = append(ids.names, name)
		trimmed = rest
	}
	for _, f := range strings.Fields(trimmed) {
		tok := strings.Trim(f, "()<>,:*")
		switch {
		case looksLikeEmail(tok), looksLikeDate(tok), looksLikeTime(tok):
		case isHexID(tok, 6):
			ids.hashes = append(ids.hashes, tok)
		case isChangeID(tok):
			ids.changeIDs = append(ids.changeIDs, tok)
		}
	}
	return ids
}

// tokenPresent accepts an exact occurrence or an abbreviation: a compact
// token that is a prefix of the raw token (or the reverse) with at least six
// shared characters still resolves to the same object.
func tokenPresent(compact, token string) bool {
	if strings.Contains(compact, token) {
		return true
	}
	for _, f := range strings.Fields(compact) {
		w := strings.Trim(f, "()<>,:*…")
		if len(w) < 6 {
			continue
		}
		if strings.HasPrefix(token, w) || strings.HasPrefix(w, token) {
			return true
		}
	}
	return false
}
