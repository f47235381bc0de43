package filter

import (
	"strconv"
	"strings"

	"github.com/texsift/texsift-go/internal/style"
)

// fontContinuation prefixes every continuation line of a font warning.
const fontContinuation = "(Font)"

// lineMarker prefixes TeX's "l.<n> <source>" line that terminates an error
// report.
const lineMarker = "l."

// handlePage records a shipped-out page marker. The regex guarantees
// digits, but the handler still guards the conversion and reports rather
// than crashes.
func (e *Engine) handlePage(m *Match) bool {
	n, err := strconv.Atoi(m.Group("page_num"))
	if err != nil {
		e.log.Error("unparseable page number", "text", m.Text, "err", err)
		return true
	}
	e.page = n
	return true
}

// handleFileNew pushes a file-open marker. Tokens that name a real file are
// tracked silently; anything else is pushed as an unknown sentinel and the
// region is declined so the raw text stays visible (it is likely a LaTeX
// internal reference, not a file).
//
// A region carrying its own closing paren, as in "(size10.clo)", pops
// again immediately after the push.
func (e *Engine) handleFileNew(m *Match) bool {
	token := strings.TrimPrefix(m.Text, "(")
	selfClosing := strings.HasSuffix(token, ")")
	token = strings.TrimSuffix(token, ")")

	handled := true
	if e.fileExists(token) {
		e.stack.push(token, true)
	} else {
		e.stack.push(token, false)
		handled = false
	}
	if selfClosing {
		e.popFile()
	}
	return handled
}

// handleFileClose pops the innermost open file.
func (e *Engine) handleFileClose(m *Match) bool {
	e.popFile()
	return true
}

// popFile pops the file stack. An empty-stack pop is a recoverable
// anomaly: logged, state unchanged.
func (e *Engine) popFile() {
	if _, ok := e.stack.pop(); !ok {
		e.log.Warn("file close marker with empty include stack")
	}
}

// handleWarning reports a single-line LaTeX warning.
func (e *Engine) handleWarning(m *Match) bool {
	e.header()
	e.emitLine(style.ClassWarning, m.Text)
	e.footer()
	return true
}

// handleFontWarning reports a font warning, which may continue over any
// number of "(Font)"-prefixed lines. The first line failing that prefix
// test closes the context without being swallowed: it is re-scanned as
// independent input.
func (e *Engine) handleFontWarning(m *Match) bool {
	if m == nil {
		if strings.HasPrefix(e.line, fontContinuation) {
			e.emitLine(style.ClassFontWarning, e.line)
			e.consumed = true
			return true
		}
		e.footer()
		e.close()
		return true
	}
	e.header()
	e.emitLine(style.ClassFontWarning, m.Text)
	e.open = &openContext{name: patFontWarning}
	return true
}

// handleError reports a "! LaTeX Error:" diagnostic. Continuation lines are
// echoed into the report until TeX's "l.<n>" source line arrives; that line
// is folded into the report and closes it.
func (e *Engine) handleError(m *Match) bool {
	if m == nil {
		e.emitLine(style.ClassError, e.line)
		e.consumed = true
		if strings.HasPrefix(e.line, lineMarker) {
			e.footer()
			e.close()
		}
		return true
	}
	e.header()
	e.emitLine(style.ClassError, m.Text)
	e.open = &openContext{name: patLaTeXError}
	return true
}

// handleError2 reports any other fatal "! " error. Unlike handleError it
// closes only on the second "l."-prefixed line: generic error text can
// itself mention "l.<n>", so a single occurrence is not trusted as the
// terminator.
func (e *Engine) handleError2(m *Match) bool {
	if m == nil {
		e.emitLine(style.ClassError, e.line)
		e.consumed = true
		if strings.HasPrefix(e.line, lineMarker) {
			if !e.open.aux {
				e.open.aux = true
			} else {
				e.footer()
				e.close()
			}
		}
		return true
	}
	e.header()
	e.emitLine(style.ClassError, m.Text)
	e.open = &openContext{name: patLaTeXError2}
	return true
}

// handleFullBox reports an overfull/underfull box. When the report names
// source lines, the very next physical line is the offending content: it is
// captured with a one-line lookahead context and the report closes. Reports
// blaming the output routine ("active") close immediately.
func (e *Engine) handleFullBox(m *Match) bool {
	if m == nil {
		e.emitLine(style.ClassSource, e.line)
		e.footer()
		e.close()
		e.consumed = true
		return true
	}
	e.header()
	e.emitLine(style.ClassBox, m.Text)
	if strings.HasPrefix(m.Group("box_kind"), "lines") {
		e.open = &openContext{name: patFullBox}
	} else {
		e.footer()
	}
	return true
}

// handleChapter swallows chapter-heading noise.
func (e *Engine) handleChapter(m *Match) bool {
	return true
}

// close ends the open multi-line context.
func (e *Engine) close() {
	e.open = nil
}
