package vcsexec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"syscall"
	"time"
)

// termGrace is how long a cancelled subprocess gets between SIGTERM and SIGKILL.
const termGrace = 2 * time.Second

// defaultCaptureMax caps captured bytes per stream. Compaction needs the whole
// output, so the cap is generous; overflow sets Truncated, which downstream
// treats as a fidelity failure.
const defaultCaptureMax = 8 << 20

// RawOutput is the captured result of one subprocess invocation.
type RawOutput struct {
	Stdout    string
	Stderr    string
	ExitCode  int
	Truncated bool
}

// Combined returns stdout followed by stderr. Token extraction for
// confirmations scans both streams because jj reports most outcomes on stderr.
func (r RawOutput) Combined() string {
	return r.Stdout + r.Stderr
}

type limitedBuffer struct {
	max       int
	buf       bytes.Buffer
	truncated bool
}

func (b *limitedBuffer) Write(p []byte) (int, error) {
	n := len(p)
	remain := b.max - b.buf.Len()
	if remain > 0 {
		if remain > len(p) {
			remain = len(p)
		}
		_, _ = b.buf.Write(p[:remain])
	}
	if len(p) > remain {
		b.truncated = true
	}
	return n, nil
}

func (b *limitedBuffer) String() string { return b.buf.String() }

// Capture runs bin with args in the current working directory, reading stdout
// and stderr to completion. A non-zero exit is reported through
// RawOutput.ExitCode, not through the error value; the error is reserved for
// spawn failures. Context cancellation terminates the subprocess (SIGTERM,
// then SIGKILL after a grace period) so it is never orphaned.
func Capture(ctx context.Context, bin string, args []string) (RawOutput, error) {
	cmd := exec.Command(bin, args...)
	outBuf := &limitedBuffer{max: defaultCaptureMax}
	errBuf := &limitedBuffer{max: defaultCaptureMax}
	cmd.Stdout = outBuf
	cmd.Stderr = errBuf

	if err := cmd.Start(); err != nil {
		var ee *exec.Error
		if errors.As(err, &ee) {
			return RawOutput{}, fmt.Errorf("%s not found on PATH", bin)
		}
		return RawOutput{}, fmt.Errorf("failed to start %s: %v", bin, err)
	}

	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()

	var runErr error
	select {
	case runErr = <-done:
	case <-ctx.Done():
		signalProcess(cmd, syscall.SIGTERM)
		grace := time.NewTimer(termGrace)
		select {
		case runErr = <-done:
			grace.Stop()
		case <-grace.C:
			signalProcess(cmd, syscall.SIGKILL)
			runErr = <-done
		}
	}

	res := RawOutput{
		Stdout:    outBuf.String(),
		Stderr:    errBuf.String(),
		Truncated: outBuf.truncated || errBuf.truncated,
	}
	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return res, fmt.Errorf("%s execution failed: %v", bin, runErr)
	}
	return res, nil
}

func signalProcess(cmd *exec.Cmd, sig syscall.Signal) {
	if cmd == nil || cmd.Process == nil {
		return
	}
	_ = cmd.Process.Signal(sig)
}
