package filter

// Pattern names, in registration order. Order is match precedence: the
// specific error form must come before the catch-all, and the file-open
// marker (which may swallow its own closing paren) before the lone close.
const (
	patPage         = "page"
	patFileNew      = "file_new"
	patFileClose    = "file_close"
	patLaTeXWarning = "latex_warning"
	patFontWarning  = "latex_font_warning"
	patLaTeXError   = "latex_error"
	patLaTeXError2  = "latex_error2"
	patFullBox      = "full_box"
	patChapter      = "chapter"
)

// Pattern fragments. Each is wrapped in its own named group and joined into
// one alternation by the registry; ^ anchors work because the engine feeds
// one physical line at a time.
const (
	// "[12]" or "[12 <some text>]" - a shipped-out page marker.
	fragPage = `\[(?P<page_num>\d+)[^\]]*\]`

	// "(./chapter1.tex" - a file-open marker, optionally self-closing as in
	// "(/usr/share/texmf/tex/latex/base/size10.clo)".
	fragFileNew = `\([^\s)]+\)?`

	// A lone ")" closing the innermost open file.
	fragFileClose = `\)`

	fragLaTeXWarning = `^LaTeX Warning: .*`
	fragFontWarning  = `^LaTeX Font Warning: .*`
	fragLaTeXError   = `^! LaTeX Error: .*`
	fragLaTeXError2  = `^! .*`

	// Box reports either name the source lines concerned or blame the
	// output routine ("while \output is active").
	fragFullBox = `^(?:Over|Under)full \\[hv]box .*?(?P<box_kind>lines \d+--\d+|active).*`

	// Chapter headings echoed by the document classes; pure noise.
	fragChapter = `^(?:Chapter|Appendix) \S+\.?$`
)

// registerDefaults installs the fixed pattern set on the engine's registry.
func (e *Engine) registerDefaults() error {
	for _, p := range []struct {
		name     string
		fragment string
		handler  HandlerFunc
	}{
		{patPage, fragPage, e.handlePage},
		{patFileNew, fragFileNew, e.handleFileNew},
		{patFileClose, fragFileClose, e.handleFileClose},
		{patLaTeXWarning, fragLaTeXWarning, e.handleWarning},
		{patFontWarning, fragFontWarning, e.handleFontWarning},
		{patLaTeXError, fragLaTeXError, e.handleError},
		{patLaTeXError2, fragLaTeXError2, e.handleError2},
		{patFullBox, fragFullBox, e.handleFullBox},
		{patChapter, fragChapter, e.handleChapter},
	} {
		if err := e.reg.Register(p.name, p.fragment, p.handler); err != nil {
			return err
		}
	}
	return nil
}
