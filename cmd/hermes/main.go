package main

import (
	"errors"
	"os"
	"strings"

	"github.com/flarebyte/hermes-epitome/cmd/hermes/root"
	"github.com/flarebyte/hermes-epitome/internal/vcsexec"
)

type exitCoder interface {
	ExitCode() int
}

func main() {
	if err := root.Execute(os.Args[1:]); err != nil {
		// A mirrored backend exit code carries no message of its own; the
		// backend's stderr has already been written verbatim.
		var ee *vcsexec.ExitError
		if errors.As(err, &ee) {
			os.Exit(ee.ExitCode())
		}
		// Print a short, single-line error to stderr on failures.
		// Do not print usage or stack traces.
		msg := strings.Join(strings.Fields(err.Error()), " ")
		if msg == "" {
			msg = "error"
		}
		_, _ = os.Stderr.WriteString(msg + "\n")
		code := 1
		if ec, ok := err.(exitCoder); ok {
			if c := ec.ExitCode(); c != 0 {
				code = c
			}
		}
		os.Exit(code)
	}
}
