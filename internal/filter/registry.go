package filter

import (
	"github.com/flarebyte/hermes-epitome/internal/classify"
	"github.com/flarebyte/hermes-epitome/internal/config"
)

// Func is a pure filter: raw text in, compact result out.
type Func func(raw string, cfg config.Config, verbose bool) Result

var registry = map[classify.Kind]Func{}

// Register adds a filter for a kind.
func Register(kind classify.Kind, f Func) {
	registry[kind] = f
}

// Lookup returns the filter for a kind, if registered.
func Lookup(kind classify.Kind) (Func, bool) {
	f, ok := registry[kind]
	return f, ok
}
