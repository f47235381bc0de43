// Package filter implements the log-parsing state machine at the heart of
// texsift: it classifies each line of a LaTeX compiler's output against a
// fixed ordered pattern set, tracks the nested file-inclusion stack and the
// current page, and re-emits a condensed, styled summary.
//
// The engine is single-threaded and owns all of its state; one engine
// serves one compiler invocation and is torn down when the input stream
// ends. Parse anomalies (empty-stack pops, unresolvable matches, bad page
// numbers, invalid UTF-8) are reported to a structured diagnostics logger
// and never abort the run.
package filter

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/texsift/texsift-go/internal/style"
)

// Line buffer sizes for compiler output. TeX wraps its log at 79 columns,
// but generated logs (and \message output) can be much longer. Lines beyond
// maxLineBytes are reported and skipped, like any other decode anomaly.
const (
	readBufSize  = 64 * 1024
	maxLineBytes = 1024 * 1024
)

// rule is the divider emitted above and below every diagnostic.
const rule = "------------------------------------------------------------"

// openContext is the single in-flight multi-line diagnostic, if any.
// aux carries handler-specific cross-line state (the generic error handler
// uses it to remember that one "l." line has already been seen).
type openContext struct {
	name string
	aux  bool
}

// Engine consumes a line stream and produces styled output chunks.
type Engine struct {
	reg    *Registry
	out    io.Writer
	styles *style.Palette
	log    *slog.Logger

	// fileExists is the filesystem check used by the file-open handler.
	// Replaceable so tests run against a fake tree.
	fileExists func(path string) bool

	stack fileStack
	page  int
	open  *openContext

	// line is the line currently being processed; handlers offered a nil
	// match inspect it directly.
	line string

	// consumed marks the current line as already folded into a diagnostic,
	// suppressing pattern matching and verbatim echo for its remainder.
	consumed bool

	// writeErr is the first output write failure. Filtering continues past
	// it so the producing compiler is never blocked on a stuck pipe.
	writeErr error
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the diagnostics logger for parse anomalies.
// If logger is nil, diagnostics are discarded (the default).
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.log = logger
		}
	}
}

// WithPalette sets the output palette. Default: style.Default().
func WithPalette(p *style.Palette) Option {
	return func(e *Engine) {
		if p != nil {
			e.styles = p
		}
	}
}

// WithFileExists replaces the filesystem existence check used to decide
// whether a file-open marker names a real file.
func WithFileExists(fn func(path string) bool) Option {
	return func(e *Engine) {
		if fn != nil {
			e.fileExists = fn
		}
	}
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// New creates an engine writing styled chunks to out.
func New(out io.Writer, opts ...Option) *Engine {
	e := &Engine{
		reg:    NewRegistry(),
		out:    out,
		styles: style.Default(),
		log:    discardLogger,
		fileExists: func(path string) bool {
			info, err := os.Stat(path)
			return err == nil && info.Mode().IsRegular()
		},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	// The fixed fragment set always compiles; a failure here is a
	// programming error.
	if err := e.registerDefaults(); err != nil {
		panic(fmt.Sprintf("filter: registering default patterns: %v", err))
	}
	return e
}

// Page returns the most recently observed page number.
func (e *Engine) Page() int { return e.page }

// Depth returns the current file-inclusion stack depth.
func (e *Engine) Depth() int { return e.stack.depth() }

// CurrentLocalFile returns the local file diagnostics are attributed to.
func (e *Engine) CurrentLocalFile() string { return e.stack.currentLocal() }

// Run consumes the stream line by line until end-of-stream. A diagnostic
// still open at that point is abandoned; that is acceptable degradation,
// not an error.
//
// Unexpected log content never aborts the run: a line exceeding
// maxLineBytes is reported to the diagnostics logger, drained, and skipped,
// and the stream continues. Run returns a failed read, or the first output
// write failure (the stream is still drained in that case so the compiler
// never blocks on the pipe).
func (e *Engine) Run(r io.Reader) error {
	br := bufio.NewReaderSize(r, readBufSize)
	buf := make([]byte, 0, readBufSize)
	draining := false
	for {
		chunk, isPrefix, err := br.ReadLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading compiler output: %w", err)
		}
		if draining {
			// Discarding the tail of an oversized line.
			if !isPrefix {
				draining = false
			}
			continue
		}
		buf = append(buf, chunk...)
		if len(buf) > maxLineBytes {
			e.log.Warn("skipping overlong line", "bytes", len(buf))
			buf = buf[:0]
			draining = isPrefix
			continue
		}
		if isPrefix {
			continue
		}
		e.ProcessLine(string(buf))
		buf = buf[:0]
	}
	if e.writeErr != nil {
		return fmt.Errorf("writing filtered output: %w", e.writeErr)
	}
	return nil
}

// ProcessLine feeds one physical line through the state machine.
func (e *Engine) ProcessLine(line string) {
	line = strings.TrimRight(line, "\r")
	if !utf8.ValidString(line) {
		e.log.Warn("skipping line with invalid byte sequence")
		return
	}

	e.line = line
	e.consumed = false

	// An open multi-line context gets first refusal on every line.
	if e.open != nil {
		if h := e.reg.Handler(e.open.name); h != nil {
			h(nil)
		} else {
			e.log.Error("open context without handler", "pattern", e.open.name)
			e.open = nil
		}
	}
	if e.consumed {
		return
	}

	pos := 0
	for _, m := range e.reg.FindAll(line) {
		e.emitUnmatched(line[pos:m.Start])
		pos = m.End
		if m.Name == "" {
			// A region matched but no named group fired; a parser
			// inconsistency, never fatal.
			e.log.Warn("match with no firing pattern group", "text", m.Text)
			continue
		}
		if handled := e.reg.Handler(m.Name)(m); !handled {
			e.emitPassthrough(m.Text)
		}
		if e.consumed {
			return
		}
	}
	e.emitUnmatched(line[pos:])
}

// emitUnmatched echoes a line segment that no pattern claimed. Segments
// inside a still-open context belong to that diagnostic and are dropped, as
// are pure-whitespace segments.
func (e *Engine) emitUnmatched(seg string) {
	if e.open != nil {
		return
	}
	seg = strings.TrimRight(seg, " \t")
	if strings.TrimSpace(seg) == "" {
		return
	}
	e.emitLine(style.ClassPassthrough, seg)
}

// emitPassthrough echoes a matched region whose handler declined it.
func (e *Engine) emitPassthrough(text string) {
	if e.open != nil {
		return
	}
	e.emitLine(style.ClassPassthrough, text)
}

func (e *Engine) emitLine(c style.Class, s string) {
	if _, err := io.WriteString(e.out, e.styles.Render(c, s)+"\n"); err != nil && e.writeErr == nil {
		e.writeErr = err
	}
}

// Err returns the first output write failure, if any. Useful for callers
// feeding the engine through ProcessLine instead of Run.
func (e *Engine) Err() error { return e.writeErr }

// header opens a diagnostic: divider, then the current local file and the
// page the diagnostic will appear on. TeX emits the page marker only when
// the page is shipped out, so the report concerns the page after the last
// one seen.
func (e *Engine) header() {
	e.emitLine(style.ClassRule, rule)
	loc := fmt.Sprintf("p.%d", e.page+1)
	if f := e.stack.currentLocal(); f != "" {
		loc = f + " " + loc
	}
	e.emitLine(style.ClassHeader, loc)
}

// footer closes a diagnostic with the matching divider.
func (e *Engine) footer() {
	e.emitLine(style.ClassRule, rule)
}
