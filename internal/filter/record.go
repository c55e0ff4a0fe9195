// Package filter turns raw jj output into compact, identifier-preserving
// text. One parser/formatter pair per supported read command, registered by
// kind; a fidelity guard verifies no identifier was lost before the compact
// form is released.
package filter

// LogEntry is one commit/change line of a log or status parent line. Order of
// entries always reflects the upstream emission order; nothing is re-sorted.
type LogEntry struct {
	Glyph       string
	ChangeID    string
	CommitID    string
	Bookmarks   []string
	Description string
	IsEmpty     bool
	Conflicted  bool
}

// FileChange is a single working-copy change.
type FileChange struct {
	Op   byte // M, A, D, R, C
	Path string
}

// Conflict is a conflicted path with its side count.
type Conflict struct {
	Path  string
	Sides int
}

// StatusRecord is the parsed form of `jj status`. A conflicted path may
// appear both in FileChanges (flagged) and Conflicts (detailed).
type StatusRecord struct {
	WorkingCopy LogEntry
	Parents     []LogEntry
	FileChanges []FileChange
	Conflicts   []Conflict
	HasChanges  bool
}

// DiffHunk is the per-file portion of a diff, line-capped.
type DiffHunk struct {
	Path      string
	Added     int
	Removed   int
	Lines     []string
	Truncated bool
}

// OpLogEntry is one operation-log entry. ShortOpID is always a prefix of
// FullOpID, never fabricated.
type OpLogEntry struct {
	Glyph        string
	ShortOpID    string
	FullOpID     string
	RelativeTime string
	Summary      string
	Args         string
}

// BookmarkEntry is one local bookmark with its tracked remote, if any.
type BookmarkEntry struct {
	Name          string
	ChangeID      string
	CommitID      string
	TrackedRemote string
}

// Result is what a filter function hands to the fidelity guard. Rendered
// holds the raw lines backing the rendered (non-truncated) portion of the
// output; the guard re-scans exactly those lines for identifiers.
type Result struct {
	Text     string
	Rendered []string
	Parsed   int
	Unparsed int
}

// CompactResult is the final outcome of a structured-filter invocation.
type CompactResult struct {
	Text          string
	DegradedToRaw bool
}
