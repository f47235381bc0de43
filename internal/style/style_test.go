package style_test

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/texsift/texsift-go/internal/style"
)

func TestRenderPlainWhenColorDisabled(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	p := style.Default()
	assert.Equal(t, "boom", p.Render(style.ClassError, "boom"))
}

func TestRenderEmitsANSISequences(t *testing.T) {
	old := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = old }()

	p := style.Default()
	got := p.Render(style.ClassError, "boom")
	assert.Contains(t, got, "\x1b[")
	assert.Contains(t, got, "boom")
	// The error style carries bold, and bold is unset attribute-by-attribute
	// ("\x1b[0;22m"), not with a bare "\x1b[0m" reset.
	assert.Contains(t, got, "\x1b[0;22m")
}

func TestRenderPassthroughUnstyled(t *testing.T) {
	old := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = old }()

	p := style.Default()
	assert.Equal(t, "plain", p.Render(style.ClassPassthrough, "plain"))
}

func TestSetOverridesAndClears(t *testing.T) {
	old := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = old }()

	p := style.Default()
	p.Set(style.ClassWarning, color.New(color.FgGreen))
	require.Contains(t, p.Render(style.ClassWarning, "w"), "\x1b[32m")

	p.Set(style.ClassWarning, nil)
	assert.Equal(t, "w", p.Render(style.ClassWarning, "w"))
}

func TestNilPaletteRendersPlain(t *testing.T) {
	var p *style.Palette
	assert.Equal(t, "x", p.Render(style.ClassError, "x"))
}
