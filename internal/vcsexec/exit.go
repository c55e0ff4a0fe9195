package vcsexec

import "fmt"

// ExitError mirrors a subprocess exit code up to main without wrapping it in
// prose. main honors the ExitCode method when choosing the process exit code.
type ExitError struct {
	Code int
}

func (e ExitError) Error() string { return fmt.Sprintf("exit status %d", e.Code) }

// ExitCode reports the code to mirror; zero or negative codes collapse to 1.
func (e ExitError) ExitCode() int {
	if e.Code <= 0 {
		return 1
	}
	return e.Code
}
