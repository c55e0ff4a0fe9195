// Package luahook runs user-supplied Lua snippets over compacted output.
// Scripts execute in a sandboxed interpreter with no IO or OS access; a
// script that errors, times out, or returns a non-string leaves the text
// unchanged.
package luahook

import (
	"context"
	"strings"
	"time"

	lua "github.com/yuin/gopher-lua"
)

const (
	hookTimeout     = 100 * time.Millisecond
	registrySize    = 256
	registryMaxSize = 1024
)

// Apply evaluates the inline script with the globals `text` (the compact
// output) and `kind` (the command family) and returns the string the script
// produces. Empty scripts and every failure mode return text unchanged.
func Apply(script, text, kind string) string {
	if strings.TrimSpace(script) == "" {
		return text
	}
	L := newSandboxState()
	defer L.Close()

	ctx, cancel := context.WithTimeout(context.Background(), hookTimeout)
	defer cancel()
	L.SetContext(ctx)

	L.SetGlobal("text", lua.LString(text))
	L.SetGlobal("kind", lua.LString(kind))

	fn, err := L.LoadString(wrapReturn(script))
	if err != nil {
		return text
	}
	L.Push(fn)
	if err := L.PCall(0, 1, nil); err != nil {
		return text
	}
	ret := L.Get(-1)
	L.Pop(1)
	if s, ok := ret.(lua.LString); ok {
		return string(s)
	}
	return text
}

func newSandboxState() *lua.LState {
	L := lua.NewState(lua.Options{
		SkipOpenLibs:     true,
		RegistrySize:     registrySize,
		RegistryMaxSize:  registryMaxSize,
		RegistryGrowStep: 0,
	})
	openLib := func(name string, f lua.LGFunction) {
		L.Push(L.NewFunction(f))
		L.Push(lua.LString(name))
		L.Call(1, 0)
	}
	openLib("base", lua.OpenBase)
	openLib("string", lua.OpenString)
	openLib("table", lua.OpenTable)
	openLib("math", lua.OpenMath)
	return L
}

// wrapReturn turns a bare expression into a chunk that yields its value.
func wrapReturn(script string) string {
	if containsReturn(script) {
		return script
	}
	return "return " + script
}

func containsReturn(script string) bool {
	for _, line := range strings.Split(script, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "return ") || trimmed == "return" {
			return true
		}
	}
	return false
}
