// Package engine routes a jj invocation through classification, capture,
// filtering and the fidelity check, and writes the compact result.
package engine

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/flarebyte/hermes-epitome/internal/classify"
	"github.com/flarebyte/hermes-epitome/internal/config"
	"github.com/flarebyte/hermes-epitome/internal/confirm"
	"github.com/flarebyte/hermes-epitome/internal/filter"
	"github.com/flarebyte/hermes-epitome/internal/luahook"
	"github.com/flarebyte/hermes-epitome/internal/vcsexec"
)

// Options carries the per-invocation knobs resolved by the command layer.
type Options struct {
	// Bin is the backend binary, "jj" unless overridden for tests.
	Bin string
	// Verbose disables message truncation and keeps full headers.
	Verbose bool
	// Limit overrides the configured entry cap when positive.
	Limit int
	Config config.Config
	Stdout io.Writer
	Stderr io.Writer
}

func (o *Options) fill() {
	if o.Bin == "" {
		o.Bin = "jj"
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
}

// Run executes one wrapped subcommand. The returned error is nil on success;
// a backend failure surfaces as *vcsexec.ExitError carrying the backend's
// exit code.
func Run(ctx context.Context, sub string, args []string, opts Options) error {
	opts.fill()
	d := classify.Decide(sub, args)
	argv := append([]string{sub}, args...)

	if d.Route == classify.RoutePassthrough {
		code, err := vcsexec.Passthrough(ctx, opts.Bin, argv)
		if err != nil {
			return err
		}
		if code != 0 {
			return &vcsexec.ExitError{Code: code}
		}
		return nil
	}

	out, err := vcsexec.Capture(ctx, opts.Bin, argv)
	if err != nil {
		return err
	}

	if d.Route == classify.RouteConfirm {
		if out.ExitCode != 0 {
			fmt.Fprintln(opts.Stderr, confirm.Failure(d.Op))
			fmt.Fprint(opts.Stderr, out.Stderr)
			return &vcsexec.ExitError{Code: out.ExitCode}
		}
		fmt.Fprintln(opts.Stdout, confirm.Render(d.Op, out))
		return nil
	}

	if out.ExitCode != 0 {
		fmt.Fprint(opts.Stderr, out.Stderr)
		return &vcsexec.ExitError{Code: out.ExitCode}
	}
	text, degraded := compact(d.Kind, out, opts)
	if degraded && opts.Verbose {
		fmt.Fprintln(opts.Stderr, "hermes: output left raw, compaction was not faithful")
	}
	// Degraded output is the raw capture byte for byte; only filtered text
	// needs its terminating newline added.
	fmt.Fprint(opts.Stdout, text)
	if !strings.HasSuffix(text, "\n") {
		fmt.Fprintln(opts.Stdout)
	}
	return nil
}

// compact applies the registered filter, the optional Lua hook, and the
// identifier check. Anything that cannot be compacted faithfully comes back
// as the raw capture with the degraded flag set.
func compact(kind classify.Kind, out vcsexec.RawOutput, opts Options) (string, bool) {
	f, ok := filter.Lookup(kind)
	if !ok {
		return out.Stdout, false
	}
	if out.Truncated {
		return out.Stdout, true
	}
	cfg := applyLimit(opts.Config, kind, opts.Limit)
	res := f(out.Stdout, cfg, opts.Verbose)
	if script := hookFor(cfg.Post, kind); script != "" {
		res.Text = luahook.Apply(script, res.Text, string(kind))
	}
	cr := filter.Check(out.Stdout, res, cfg.Limits.MaxUnparsed)
	return cr.Text, cr.DegradedToRaw
}

func applyLimit(cfg config.Config, kind classify.Kind, limit int) config.Config {
	if limit <= 0 {
		return cfg
	}
	switch kind {
	case classify.KindLog:
		cfg.Limits.LogEntries = limit
	case classify.KindOpLog:
		cfg.Limits.OpLogEntries = limit
	}
	return cfg
}

func hookFor(p config.PostFilters, kind classify.Kind) string {
	switch kind {
	case classify.KindStatus:
		return p.Status
	case classify.KindLog:
		return p.Log
	case classify.KindDiff:
		return p.Diff
	case classify.KindShow:
		return p.Show
	case classify.KindOpLog:
		return p.OpLog
	case classify.KindBookmarks:
		return p.Bookmarks
	}
	return ""
}
