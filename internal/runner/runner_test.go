//go:build unix

package runner_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/texsift/texsift-go/internal/runner"
)

func readAll(t *testing.T) (func(io.Reader) error, *[]byte) {
	t.Helper()
	var got []byte
	return func(r io.Reader) error {
		b, err := io.ReadAll(r)
		got = b
		return err
	}, &got
}

func TestRunRelaysOutputAndExitCode(t *testing.T) {
	consume, got := readAll(t)
	code, err := runner.Run(context.Background(), "sh",
		[]string{"-c", "echo out; echo err >&2; exit 3"}, consume)
	require.NoError(t, err)
	assert.Equal(t, 3, code)
	// stdout and stderr are merged into one stream.
	assert.Contains(t, string(*got), "out\n")
	assert.Contains(t, string(*got), "err\n")
}

func TestRunSuccessExitCodeZero(t *testing.T) {
	consume, _ := readAll(t)
	code, err := runner.Run(context.Background(), "true", nil, consume)
	require.NoError(t, err)
	assert.Equal(t, 0, code)
}

func TestRunSignalDeathMapsToConventionalCode(t *testing.T) {
	consume, _ := readAll(t)
	code, err := runner.Run(context.Background(), "sh",
		[]string{"-c", "kill -TERM $$"}, consume)
	require.NoError(t, err)
	// 128+SIGTERM, never the raw -1 an ExitError reports for signal deaths.
	assert.Equal(t, 143, code)
}

func TestRunMissingBinary(t *testing.T) {
	consume, _ := readAll(t)
	_, err := runner.Run(context.Background(),
		"texsift-no-such-compiler", nil, consume)
	require.Error(t, err)
	assert.ErrorIs(t, err, runner.ErrNotFound)
	assert.Contains(t, err.Error(), "texsift-no-such-compiler")
}

func TestRunConsumerErrorWins(t *testing.T) {
	wantErr := errors.New("engine blew up")
	consume := func(r io.Reader) error {
		_, _ = io.Copy(io.Discard, r)
		return wantErr
	}
	_, err := runner.Run(context.Background(), "true", nil, consume)
	assert.ErrorIs(t, err, wantErr)
}
