// internal/hv/errors.go

package hv

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingInterpreter means no usable python interpreter is on PATH
	// (and HVCTL_PYTHON does not name one either).
	ErrMissingInterpreter = errors.New("python3 not found on PATH (set HVCTL_PYTHON to override)")

	// ErrBootstrapFailed wraps a non-zero exit of the environment bootstrap.
	ErrBootstrapFailed = errors.New("environment bootstrap failed")
)

// ExitError carries the exit status of an external process so that the
// orchestrator can mirror it verbatim. Stage identifies which external call
// failed (bootstrap vs task execution); no further diagnosis is attached.
type ExitError struct {
	Stage string
	Code  int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s failed (exit %d)", e.Stage, e.Code)
}

// ExitCode maps an error returned by the CLI to a process exit code.
// Child exit codes pass through unchanged; everything else is 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var xe *ExitError
	if errors.As(err, &xe) {
		return xe.Code
	}
	return 1
}
