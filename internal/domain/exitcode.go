package domain

import (
	"errors"
	"fmt"
	"os/exec"
)

// Exit codes returned by the shellmate CLI.
// Warning paths report success; only the error helper and a propagated
// child failure report non-zero.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// ExitError carries a child process exit code to the CLI boundary
// without producing an additional error line. The child already wrote
// its own diagnostics; main only mirrors the status.
type ExitError struct {
	Code int
}

// NewExitError creates an ExitError for the given code.
func NewExitError(code int) *ExitError {
	return &ExitError{Code: code}
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// ExitCodeOf extracts the exit code from a command execution error.
// Returns ExitSuccess for nil and ExitFailure when the error carries
// no exit status (e.g. the program could not be started).
func ExitCodeOf(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		return exitErr.ExitCode()
	}
	return ExitFailure
}
