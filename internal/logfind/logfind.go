// Package logfind locates LaTeX log files for follow mode.
package logfind

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// ErrNoLogFiles is returned when the directory contains no *.log files.
var ErrNoLogFiles = errors.New("no log files found")

// candidate holds a log file path and its cached modification time.
// Caching avoids races where files are deleted between stat and sort.
type candidate struct {
	path    string
	modTime int64
}

// Newest returns the most recently modified *.log file in dir.
//
// Returns ErrNoLogFiles if none exist.
func Newest(dir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.log"))
	if err != nil {
		return "", fmt.Errorf("globbing log files: %w", err)
	}
	if len(matches) == 0 {
		return "", ErrNoLogFiles
	}

	candidates := make([]candidate, 0, len(matches))
	for _, m := range matches {
		info, err := os.Lstat(m)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		candidates = append(candidates, candidate{path: m, modTime: info.ModTime().UnixNano()})
	}
	if len(candidates) == 0 {
		return "", ErrNoLogFiles
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].modTime > candidates[j].modTime
	})
	return candidates[0].path, nil
}
