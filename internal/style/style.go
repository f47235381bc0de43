// Package style renders filtered compiler output with terminal attributes.
//
// A Palette maps output classes (error, warning, box report, ...) to ANSI
// attributes. Rendering goes through github.com/fatih/color, which emits the
// standard escape sequences (ESC[30-37m foreground, ESC[40-47m background,
// ESC[1m bold, ESC[4m underline, ESC[7m reverse, ESC[0m reset) and honors
// the global color.NoColor switch.
package style

import "github.com/fatih/color"

// Class identifies a category of filtered output for styling purposes.
type Class int

const (
	// ClassPassthrough is unmatched log text echoed verbatim.
	ClassPassthrough Class = iota
	// ClassRule is the divider rule around a diagnostic.
	ClassRule
	// ClassHeader is the "file p.N" location line of a diagnostic.
	ClassHeader
	// ClassWarning is a LaTeX warning body.
	ClassWarning
	// ClassFontWarning is a LaTeX font warning body.
	ClassFontWarning
	// ClassError is a LaTeX error body, including its continuation lines.
	ClassError
	// ClassBox is an overfull/underfull box report.
	ClassBox
	// ClassSource is the offending source line captured after a box report.
	ClassSource
)

// classNames maps style file keys to classes. Keys are the vocabulary
// accepted in the "styles" section of a style file.
var classNames = map[string]Class{
	"passthrough":  ClassPassthrough,
	"rule":         ClassRule,
	"header":       ClassHeader,
	"warning":      ClassWarning,
	"font_warning": ClassFontWarning,
	"error":        ClassError,
	"box":          ClassBox,
	"source":       ClassSource,
}

// attrNames is the fixed attribute table accepted in style files.
var attrNames = map[string]color.Attribute{
	"black":      color.FgBlack,
	"red":        color.FgRed,
	"green":      color.FgGreen,
	"yellow":     color.FgYellow,
	"blue":       color.FgBlue,
	"magenta":    color.FgMagenta,
	"cyan":       color.FgCyan,
	"white":      color.FgWhite,
	"bg_black":   color.BgBlack,
	"bg_red":     color.BgRed,
	"bg_green":   color.BgGreen,
	"bg_yellow":  color.BgYellow,
	"bg_blue":    color.BgBlue,
	"bg_magenta": color.BgMagenta,
	"bg_cyan":    color.BgCyan,
	"bg_white":   color.BgWhite,
	"bold":       color.Bold,
	"underline":  color.Underline,
	"reverse":    color.ReverseVideo,
}

// Palette maps output classes to terminal attributes.
// A class with no entry renders as plain text.
type Palette struct {
	colors map[Class]*color.Color
}

// Default returns the built-in palette.
func Default() *Palette {
	return &Palette{colors: map[Class]*color.Color{
		ClassRule:        color.New(color.FgBlue),
		ClassHeader:      color.New(color.Bold),
		ClassWarning:     color.New(color.FgYellow),
		ClassFontWarning: color.New(color.FgMagenta),
		ClassError:       color.New(color.FgRed, color.Bold),
		ClassBox:         color.New(color.FgCyan),
		ClassSource:      color.New(color.Underline),
	}}
}

// Render returns s decorated with the attributes registered for c.
// Unknown classes and ClassPassthrough render unstyled.
func (p *Palette) Render(c Class, s string) string {
	if p == nil {
		return s
	}
	col, ok := p.colors[c]
	if !ok || col == nil {
		return s
	}
	return col.Sprint(s)
}

// Set replaces the attributes for a class. A nil color removes the entry.
func (p *Palette) Set(c Class, col *color.Color) {
	if p.colors == nil {
		p.colors = make(map[Class]*color.Color)
	}
	if col == nil {
		delete(p.colors, c)
		return
	}
	p.colors[c] = col
}
