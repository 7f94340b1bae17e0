// Package dispatch runs the resolved ccline binary as a child process with
// full transparency: argv forwarded as-is, stdio connected straight through,
// and the child's exit code handed back to the caller.
package dispatch

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// abnormalExitCode is reported when the child terminates without a real
// exit status (killed by a signal rather than exiting).
const abnormalExitCode = 1

// SpawnError indicates the operating system could not start the child
// process at all, as opposed to the child running and exiting non-zero.
type SpawnError struct {
	Path string
	Err  error
}

// Error returns the user-facing message with the underlying OS error.
func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to start %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying OS error.
func (e *SpawnError) Unwrap() error {
	return e.Err
}

// Run executes path with the given arguments, wiring the child's standard
// streams directly to the launcher's own, and waits for it to finish.
//
// A child that runs and exits returns its exit code with a nil error, zero
// included. A child the OS refuses to start returns a *SpawnError. Abnormal
// termination with no exit status is normalized to a defined non-zero code
// rather than propagated as -1.
func Run(path string, args []string) (int, error) {
	cmd := exec.Command(path, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			return abnormalExitCode, nil
		}
		return code, nil
	}

	return 0, &SpawnError{Path: path, Err: err}
}
