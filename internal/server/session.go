package server

import (
	"sort"
	"sync"
)

// Session is the expanded-row state for the single active viewing
// session. It starts empty when the server starts, so a restart
// collapses every row, and only the named commands (toggle, expand
// all, collapse all) mutate it. One mutex is enough: the viewer serves
// one user acting one command at a time.
type Session struct {
	mu   sync.Mutex
	open map[int]bool
}

// NewSession creates an empty session with no rows expanded
func NewSession() *Session {
	return &Session{open: make(map[int]bool)}
}

// Toggle flips the expanded state of one row
func (s *Session) Toggle(row int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.open[row] {
		delete(s.open, row)
	} else {
		s.open[row] = true
	}
}

// ExpandAll marks rows 0..n-1 expanded, replacing the current set
func (s *Session) ExpandAll(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = make(map[int]bool, n)
	for i := 0; i < n; i++ {
		s.open[i] = true
	}
}

// CollapseAll clears the expanded set
func (s *Session) CollapseAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = make(map[int]bool)
}

// IsOpen reports whether a row is currently expanded
func (s *Session) IsOpen(row int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open[row]
}

// OpenRows returns the expanded row indices in ascending order, which
// is the order detail panels render in
func (s *Session) OpenRows() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := make([]int, 0, len(s.open))
	for i := range s.open {
		rows = append(rows, i)
	}
	sort.Ints(rows)
	return rows
}

// Count returns how many rows are expanded
func (s *Session) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.open)
}
