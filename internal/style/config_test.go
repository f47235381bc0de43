package style_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/texsift/texsift-go/internal/style"
)

func writeStyleFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "styles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadValid(t *testing.T) {
	path := writeStyleFile(t, `
version: 1
styles:
  error: [red, bold]
  warning: [yellow]
`)
	f, err := style.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, f.Version)
	assert.Len(t, f.Styles, 2)
}

func TestLoadUnsupportedVersion(t *testing.T) {
	path := writeStyleFile(t, "version: 2\nstyles: {}\n")
	_, err := style.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported style file version")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := style.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeStyleFile(t, "version: [not a number\n")
	_, err := style.Load(path)
	require.Error(t, err)
}

func TestPaletteUnknownClass(t *testing.T) {
	f := &style.File{
		Version: 1,
		Styles:  map[string][]string{"bogus": {"red"}},
	}
	_, err := f.Palette()
	require.Error(t, err)
	var cfgErr *style.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "bogus", cfgErr.ClassName)
}

func TestPaletteUnknownAttribute(t *testing.T) {
	f := &style.File{
		Version: 1,
		Styles:  map[string][]string{"error": {"sparkly"}},
	}
	_, err := f.Palette()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sparkly")
}

func TestPaletteOverride(t *testing.T) {
	old := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = old }()

	f := &style.File{
		Version: 1,
		Styles: map[string][]string{
			"error":   {"green", "underline"},
			"warning": {}, // empty list clears the class
		},
	}
	p, err := f.Palette()
	require.NoError(t, err)

	assert.Contains(t, p.Render(style.ClassError, "e"), "\x1b[32")
	assert.Equal(t, "w", p.Render(style.ClassWarning, "w"))
}

func TestLoadPalette(t *testing.T) {
	path := writeStyleFile(t, `
version: 1
styles:
  box: [cyan, reverse]
`)
	p, err := style.LoadPalette(path)
	require.NoError(t, err)
	assert.NotNil(t, p)
}
