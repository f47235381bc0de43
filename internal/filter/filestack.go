package filter

import "path/filepath"

// fileEntry is one open file marker on the inclusion stack.
// known is false for tokens that do not name a readable file on disk
// (usually LaTeX internal references that merely look like open markers).
type fileEntry struct {
	path  string
	known bool
}

// fileStack tracks the nested \input/\include markers currently open.
//
// It also derives the "current local file": the most recently pushed known
// file with a relative path. Diagnostic headers report this rather than the
// top of stack, since the top is frequently a package or font file deep in
// the TeX distribution.
type fileStack struct {
	entries []fileEntry
	local   string
}

// push records an open marker. A known relative path becomes the current
// local file.
func (s *fileStack) push(path string, known bool) {
	s.entries = append(s.entries, fileEntry{path: path, known: known})
	if known && isLocal(path) {
		s.local = path
	}
}

// pop removes the top marker and reports whether anything was popped.
// The current local file is recomputed from the remaining entries so that
// closing a locally included file reverts to its includer (or to empty at
// the document root).
func (s *fileStack) pop() (fileEntry, bool) {
	if len(s.entries) == 0 {
		return fileEntry{}, false
	}
	top := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	s.local = ""
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].known && isLocal(s.entries[i].path) {
			s.local = s.entries[i].path
			break
		}
	}
	return top, true
}

func (s *fileStack) depth() int { return len(s.entries) }

// currentLocal returns the current local file, or "" if none is open.
func (s *fileStack) currentLocal() string { return s.local }

// isLocal reports whether a path follows the local naming convention:
// anything relative to the working directory. Distribution files show up
// in the log with absolute paths and are never "local".
func isLocal(path string) bool {
	return path != "" && !filepath.IsAbs(path)
}
