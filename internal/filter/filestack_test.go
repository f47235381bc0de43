package filter

import "testing"

func TestFileStackLocalTracking(t *testing.T) {
	var s fileStack

	s.push("main.tex", true)
	if s.currentLocal() != "main.tex" {
		t.Errorf("local = %q, want main.tex", s.currentLocal())
	}

	// Distribution files never become the local file.
	s.push("/usr/share/texmf/article.cls", true)
	if s.currentLocal() != "main.tex" {
		t.Errorf("local = %q, want main.tex", s.currentLocal())
	}

	// Unknown sentinels don't either, even with a relative token.
	s.push("texsys.aux", false)
	if s.currentLocal() != "main.tex" {
		t.Errorf("local = %q, want main.tex", s.currentLocal())
	}

	s.push("chapter1.tex", true)
	if s.currentLocal() != "chapter1.tex" {
		t.Errorf("local = %q, want chapter1.tex", s.currentLocal())
	}

	// Popping the local file reverts to the most recent remaining one.
	s.pop()
	if s.currentLocal() != "main.tex" {
		t.Errorf("local after pop = %q, want main.tex", s.currentLocal())
	}

	s.pop()
	s.pop()
	s.pop()
	if s.currentLocal() != "" {
		t.Errorf("local on empty stack = %q, want empty", s.currentLocal())
	}
}

func TestFileStackEmptyPop(t *testing.T) {
	var s fileStack
	if _, ok := s.pop(); ok {
		t.Error("pop on empty stack reported success")
	}
	if s.depth() != 0 {
		t.Errorf("depth = %d, want 0", s.depth())
	}
}

func TestFileStackPopReturnsTop(t *testing.T) {
	var s fileStack
	s.push("a.tex", true)
	s.push("weird-token", false)

	top, ok := s.pop()
	if !ok || top.path != "weird-token" || top.known {
		t.Errorf("pop = %+v, %v", top, ok)
	}
}

func TestIsLocal(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"chapter1.tex", true},
		{"./chapter1.tex", true},
		{"sub/dir/file.tex", true},
		{"/usr/share/texmf/article.cls", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := isLocal(tt.path); got != tt.want {
			t.Errorf("isLocal(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
