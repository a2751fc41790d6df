// internal/hv/executor.go

package hv

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
)

// ExecOptions describes how an external process should be executed.
type ExecOptions struct {
	// Dir sets the working directory. Empty means current.
	Dir string
	// Env allows adding/overriding environment variables (KEY=VALUE form).
	Env []string
	// Stdout/Stderr override the forwarded streams. Nil means the process
	// inherits the orchestrator's own.
	Stdout io.Writer
	Stderr io.Writer
}

// Execute runs an external process, streaming stdio, and blocks until it
// exits. The stage string names the external call for error reporting.
//
// A non-zero exit becomes *ExitError with the child's code. When the
// context is cancelled (interrupt delivered to the orchestrator) the child
// receives SIGINT; termination by signal maps to the conventional 128+N
// exit code so it is never silently swallowed.
func Execute(ctx context.Context, stage string, argv []string, opts ExecOptions) error {
	if len(argv) == 0 {
		return fmt.Errorf("%s: empty command", stage)
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	if opts.Dir != "" {
		cmd.Dir = opts.Dir
	}
	if len(opts.Env) > 0 {
		cmd.Env = append(os.Environ(), opts.Env...)
	}
	cmd.Stdout = opts.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = opts.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}
	cmd.Stdin = os.Stdin
	cmd.Cancel = func() error {
		return cmd.Process.Signal(syscall.SIGINT)
	}
	cmd.WaitDelay = 5 * time.Second

	log.Debug().Str("stage", stage).Strs("argv", argv).Str("dir", cmd.Dir).Msg("exec")

	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
			code = 128 + int(ws.Signal())
		}
		log.Debug().Str("stage", stage).Int("code", code).Msg("child exited non-zero")
		return &ExitError{Stage: stage, Code: code}
	}
	return fmt.Errorf("%s: %w", stage, err)
}

// LookTool reports whether an external tool is reachable, either as a bare
// name on PATH or as a path to an executable file.
func LookTool(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
