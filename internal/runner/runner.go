// Package runner spawns the wrapped compiler and feeds its combined
// stdout/stderr stream to a consumer.
//
// The pipe's OS-level buffering is the only coordination between compiler
// and consumer: the compiler blocks when the consumer falls behind, the
// consumer blocks on read when the compiler is idle.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"
)

// ErrNotFound reports that the compiler binary could not be located.
var ErrNotFound = errors.New("program not found")

// Run spawns name with args, merging its stdout and stderr into a single
// pipe consumed by consume, and waits for both to finish.
//
// Returns:
//   - (code, nil): the compiler ran; code is its exit status, or 128+signal
//     when a signal killed it (the usual shell convention)
//   - (0, err): the compiler could not be started (err wraps ErrNotFound
//     when the binary is missing) or the consumer failed
func Run(ctx context.Context, name string, args []string, consume func(io.Reader) error) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	pr, pw := io.Pipe()
	cmd.Stdout = pw
	cmd.Stderr = pw
	cmd.Stdin = os.Stdin

	if err := cmd.Start(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return 0, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return 0, fmt.Errorf("starting %s: %w", name, err)
	}

	waitErr := make(chan error, 1)
	go func() {
		err := cmd.Wait()
		// Close the write end so the consumer sees end-of-stream once the
		// compiler has exited and the pipe drains.
		pw.Close()
		waitErr <- err
	}()

	consumeErr := consume(pr)
	pr.Close()
	err := <-waitErr

	if consumeErr != nil {
		return 0, consumeErr
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitCode(exitErr), nil
		}
		return 0, fmt.Errorf("waiting for %s: %w", name, err)
	}
	return 0, nil
}

// exitCode maps an ExitError to a caller-usable status. ExitCode reports -1
// for signal deaths, which would wrap to 255 at os.Exit; translate those to
// the shell convention of 128+signal instead.
func exitCode(exitErr *exec.ExitError) int {
	if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	if code := exitErr.ExitCode(); code >= 0 {
		return code
	}
	return 1
}
