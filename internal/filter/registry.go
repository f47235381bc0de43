package filter

import (
	"fmt"
	"regexp"
	"strings"
)

// HandlerFunc processes a matched region of the current line.
//
// A nil match means the handler's multi-line context is open and the engine
// is offering it the next physical line; the handler reads the line through
// the engine and decides whether the context continues or closes.
//
// The return value reports whether the region was fully handled. False
// means the region should be re-emitted verbatim as pass-through text.
type HandlerFunc func(m *Match) bool

// Match is one non-overlapping match of the combined pattern on a line.
type Match struct {
	// Name is the registry entry that fired, resolved in registration
	// order. Empty if no named group fired (a parser inconsistency).
	Name string

	// Text is the full matched region.
	Text string

	// Start and End delimit the region within the current line.
	Start, End int

	groups map[string]string
}

// Group returns the text of a named capture group inside the region, or ""
// if the group did not participate in the match.
func (m *Match) Group(name string) string {
	return m.groups[name]
}

type entry struct {
	name     string
	fragment string
	handler  HandlerFunc
}

// Registry holds the ordered pattern set and the combined alternation regex.
//
// Registration order is significant: it is the precedence order both for
// the alternation (Go's regexp prefers earlier alternatives at the same
// position) and for resolving which named group fired on a match.
type Registry struct {
	entries  []entry
	combined *regexp.Regexp
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends a pattern and recompiles the combined regex.
//
// The fragment is wrapped in a named capture group (?P<name>...) unless it
// already carries one. Inner named groups are allowed but must be unique
// across the whole registry.
func (r *Registry) Register(name, fragment string, h HandlerFunc) error {
	if name == "" {
		return fmt.Errorf("pattern name must not be empty")
	}
	for _, e := range r.entries {
		if e.name == name {
			return fmt.Errorf("pattern %q already registered", name)
		}
	}
	if !strings.HasPrefix(fragment, "(?P<"+name+">") {
		fragment = "(?P<" + name + ">" + fragment + ")"
	}
	r.entries = append(r.entries, entry{name: name, fragment: fragment, handler: h})
	if err := r.compile(); err != nil {
		r.entries = r.entries[:len(r.entries)-1]
		return fmt.Errorf("pattern %q: %w", name, err)
	}
	return nil
}

// compile rebuilds the combined regex: every fragment joined as one
// alternation under a single outer named group.
func (r *Registry) compile() error {
	parts := make([]string, len(r.entries))
	for i, e := range r.entries {
		parts[i] = e.fragment
	}
	re, err := regexp.Compile("(?P<token>" + strings.Join(parts, "|") + ")")
	if err != nil {
		return err
	}
	r.combined = re
	return nil
}

// Handler returns the handler registered under name, or nil.
func (r *Registry) Handler(name string) HandlerFunc {
	for _, e := range r.entries {
		if e.name == name {
			return e.handler
		}
	}
	return nil
}

// Len returns the number of registered patterns.
func (r *Registry) Len() int { return len(r.entries) }

// FindAll runs the combined regex over a line and returns all
// non-overlapping matches left to right, each resolved to the registry
// entry whose named group fired.
func (r *Registry) FindAll(line string) []*Match {
	if r.combined == nil || len(r.entries) == 0 {
		return nil
	}
	idxs := r.combined.FindAllStringSubmatchIndex(line, -1)
	if idxs == nil {
		return nil
	}
	names := r.combined.SubexpNames()
	matches := make([]*Match, 0, len(idxs))
	for _, idx := range idxs {
		m := &Match{
			Text:   line[idx[0]:idx[1]],
			Start:  idx[0],
			End:    idx[1],
			groups: make(map[string]string),
		}
		for gi, gname := range names {
			if gname == "" || idx[2*gi] < 0 {
				continue
			}
			m.groups[gname] = line[idx[2*gi]:idx[2*gi+1]]
		}
		// First populated group in registration order wins.
		for _, e := range r.entries {
			if _, ok := m.groups[e.name]; ok {
				m.Name = e.name
				break
			}
		}
		matches = append(matches, m)
	}
	return matches
}
