package logfind_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/texsift/texsift-go/internal/logfind"
)

func TestNewestPicksMostRecent(t *testing.T) {
	dir := t.TempDir()
	older := filepath.Join(dir, "old.log")
	newer := filepath.Join(dir, "new.log")
	require.NoError(t, os.WriteFile(older, []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(newer, []byte("b"), 0o644))

	base := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(older, base, base))
	require.NoError(t, os.Chtimes(newer, base.Add(time.Minute), base.Add(time.Minute)))

	got, err := logfind.Newest(dir)
	require.NoError(t, err)
	assert.Equal(t, newer, got)
}

func TestNewestIgnoresOtherExtensions(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "doc.aux"), []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "doc.log"), []byte("b"), 0o644))

	got, err := logfind.Newest(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "doc.log"), got)
}

func TestNewestEmptyDir(t *testing.T) {
	_, err := logfind.Newest(t.TempDir())
	assert.ErrorIs(t, err, logfind.ErrNoLogFiles)
}
