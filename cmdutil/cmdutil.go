// Package cmdutil runs the wrapped tool with its stdout piped through a
// filter while stdin and stderr stay attached to difftw's own.
package cmdutil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"
)

// StreamFilter consumes the child's stdout until EOF.
type StreamFilter func(stdout io.Reader) error

// StartError reports that the child could not be launched.
type StartError struct {
	Name string
	Err  error
}

func (e *StartError) Error() string {
	return fmt.Sprintf("failed to start %s: %v", e.Name, e.Err)
}

func (e *StartError) Unwrap() error {
	return e.Err
}

// Options configures RunWithLineFilter. Zero values mean the process's own
// stdin and stderr and the inherited environment.
type Options struct {
	Dir    string
	Env    []string
	Stdin  io.Reader
	Stderr io.Writer
}

// RunWithLineFilter starts name with args, hands its stdout to filter and
// waits for it to exit. The returned code mirrors the child's exit status.
// A filter error kills the child without draining the rest of its output.
func RunWithLineFilter(ctx context.Context, name string, args []string, opts Options, filter StreamFilter) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = opts.Dir
	cmd.Env = opts.Env
	if cmd.Env == nil {
		cmd.Env = os.Environ()
	}
	cmd.Stdin = opts.Stdin
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	cmd.Stderr = opts.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return 0, &StartError{Name: name, Err: err}
	}

	if err := cmd.Start(); err != nil {
		return 0, &StartError{Name: name, Err: err}
	}

	if err := filter(stdout); err != nil {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
		return 0, err
	}

	err = cmd.Wait()
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return 0, fmt.Errorf("waiting for %s: %w", name, err)
	}

	return ExitCode(cmd.ProcessState), nil
}

// ExitCode returns the exit status recorded in state. A child killed by a
// signal maps to 128+signal, as shells report it. Unknown status is 0.
func ExitCode(state *os.ProcessState) int {
	if state == nil {
		return 0
	}
	if code := state.ExitCode(); code >= 0 {
		return code
	}
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	return 0
}
