// Package sink fans rendered output out to multiple destinations, flushing
// after every write so interactive output stays live while a persisted copy
// is kept.
package sink

import "io"

// Flusher is implemented by destinations that buffer, e.g. *bufio.Writer.
type Flusher interface {
	Flush() error
}

// Fanout writes every chunk to all destinations in order.
// It has no state beyond the destination list.
type Fanout struct {
	dsts []io.Writer
}

// New creates a fan-out writer over the given destinations.
// Nil destinations are skipped.
func New(dsts ...io.Writer) *Fanout {
	f := &Fanout{}
	for _, d := range dsts {
		if d != nil {
			f.dsts = append(f.dsts, d)
		}
	}
	return f
}

// Write writes p to every destination and flushes each one that buffers.
// The first error stops the fan-out.
func (f *Fanout) Write(p []byte) (int, error) {
	for _, d := range f.dsts {
		if _, err := d.Write(p); err != nil {
			return 0, err
		}
		if fl, ok := d.(Flusher); ok {
			if err := fl.Flush(); err != nil {
				return 0, err
			}
		}
	}
	return len(p), nil
}
