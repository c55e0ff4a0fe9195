// Package classify maps a requested jj subcommand and its raw argument list
// to one of three execution routes: structured filter, confirmation-only, or
// raw passthrough. Classification is pure; nothing is executed here.
package classify

// Route is the terminal action chosen for an invocation.
type Route int

const (
	// RoutePassthrough runs the subcommand unmodified.
	RoutePassthrough Route = iota
	// RouteFilter captures output and applies a structured filter.
	RouteFilter
	// RouteConfirm captures output and renders a one-line acknowledgment.
	RouteConfirm
)

// Kind names a registered structured filter.
type Kind string

const (
	KindStatus    Kind = "status"
	KindLog       Kind = "log"
	KindDiff      Kind = "diff"
	KindShow      Kind = "show"
	KindOpLog     Kind = "op-log"
	KindBookmarks Kind = "bookmarks"
)

// Decision is the classifier outcome. Op labels the operation for
// confirmation rendering and failure markers (e.g. "rebase", "git push").
type Decision struct {
	Route Route
	Kind  Kind
	Op    string
}

// Flags that change the output shape unpredictably. Their presence forces
// passthrough regardless of subcommand category.
var shapeFlags = map[string]bool{
	"-T":            true,
	"--template":    true,
	"--color":       true,
	"--config-toml": true,
	"--config":      true,
	"--no-graph":    true,
}

// Flags that require a full-screen interactive UI.
var interactiveFlags = map[string]bool{
	"-i":            true,
	"--interactive": true,
	"--tool":        true,
}

// Subcommands that are interactive by nature.
var interactiveSubs = map[string]bool{
	"diffedit": true,
	"resolve":  true,
}

var confirmOps = map[string]string{
	"describe": "describe",
	"desc":     "describe",
	"new":      "new",
	"commit":   "commit",
	"squash":   "squash",
	"absorb":   "absorb",
	"rebase":   "rebase",
	"split":    "split",
	"edit":     "edit",
	"undo":     "undo",
}

var bookmarkMutations = map[string]bool{
	"create":  true,
	"set":     true,
	"delete":  true,
	"move":    true,
	"rename":  true,
	"track":   true,
	"untrack": true,
	"forget":  true,
}

// Decide classifies one invocation. args is the trailing argument list after
// the subcommand, forwarded to jj verbatim elsewhere.
func Decide(sub string, args []string) Decision {
	if interactiveSubs[sub] || hasAny(args, interactiveFlags) {
		return Decision{Route: RoutePassthrough}
	}
	if hasAny(args, shapeFlags) || hasShapeFlagPrefix(args) {
		return Decision{Route: RoutePassthrough}
	}

	switch sub {
	case "status", "st":
		return Decision{Route: RouteFilter, Kind: KindStatus, Op: "status"}
	case "log":
		return Decision{Route: RouteFilter, Kind: KindLog, Op: "log"}
	case "diff":
		return Decision{Route: RouteFilter, Kind: KindDiff, Op: "diff"}
	case "show":
		return Decision{Route: RouteFilter, Kind: KindShow, Op: "show"}
	case "op", "operation":
		if len(args) > 0 && args[0] == "log" {
			return Decision{Route: RouteFilter, Kind: KindOpLog, Op: "op log"}
		}
		return Decision{Route: RoutePassthrough}
	case "bookmark", "b":
		return decideBookmark(args)
	case "git":
		return decideGit(args)
	}

	if op, ok := confirmOps[sub]; ok {
		if needsEditor(sub, args) {
			return Decision{Route: RoutePassthrough}
		}
		return Decision{Route: RouteConfirm, Op: op}
	}
	// Unknown subcommands stay usable via passthrough.
	return Decision{Route: RoutePassthrough}
}

// needsEditor reports write operations that would open a terminal editor and
// so cannot run with captured stdio.
func needsEditor(sub string, args []string) bool {
	switch sub {
	case "describe", "desc", "commit":
		return !hasMessageFlag(args)
	case "split":
		return len(args) == 0
	}
	return false
}

func hasMessageFlag(args []string) bool {
	for _, a := range args {
		if a == "-m" || a == "--message" || a == "--stdin" || a == "--no-edit" {
			return true
		}
		if len(a) > 10 && a[:10] == "--message=" {
			return true
		}
	}
	return false
}

func decideBookmark(args []string) Decision {
	for _, a := range args {
		if bookmarkMutations[a] {
			return Decision{Route: RouteConfirm, Op: "bookmark " + a}
		}
		if a == "-d" || a == "--delete" {
			return Decision{Route: RouteConfirm, Op: "bookmark delete"}
		}
		if a == "list" || a == "l" {
			return Decision{Route: RouteFilter, Kind: KindBookmarks, Op: "bookmark list"}
		}
	}
	// Bare `jj bookmark` prints the list.
	if len(args) == 0 {
		return Decision{Route: RouteFilter, Kind: KindBookmarks, Op: "bookmark list"}
	}
	return Decision{Route: RoutePassthrough}
}

func decideGit(args []string) Decision {
	if len(args) == 0 {
		return Decision{Route: RoutePassthrough}
	}
	switch args[0] {
	case "push":
		return Decision{Route: RouteConfirm, Op: "git push"}
	case "fetch":
		return Decision{Route: RouteConfirm, Op: "git fetch"}
	}
	return Decision{Route: RoutePassthrough}
}

func hasAny(args []string, set map[string]bool) bool {
	for _, a := range args {
		if set[a] {
			return true
		}
	}
	return false
}

// hasShapeFlagPrefix catches the --flag=value spelling.
func hasShapeFlagPrefix(args []string) bool {
	for _, a := range args {
		for f := range shapeFlags {
			if len(a) > len(f) && a[:len(f)] == f && a[len(f)] == '=' {
				return true
			}
		}
	}
	return false
}
