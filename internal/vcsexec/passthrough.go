package vcsexec

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// Passthrough runs bin with args on the caller's stdio, untouched. It returns
// the subprocess exit code; no text is parsed or altered. Interactive
// subcommands and fidelity fallbacks both land here.
func Passthrough(ctx context.Context, bin string, args []string) (int, error) {
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		var ee *exec.Error
		if errors.As(err, &ee) {
			return 0, fmt.Errorf("%s not found on PATH", bin)
		}
		return 0, fmt.Errorf("failed to run %s: %v", bin, err)
	}
	return 0, nil
}
