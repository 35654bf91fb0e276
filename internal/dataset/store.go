package dataset

import (
	"sync"

	"bess-board/internal/model"
)

// Store memoizes canonical tables by source path so refreshes within a
// session never re-read or re-normalize the workbook. The cache lives
// for the process lifetime; restart to pick up file edits.
type Store struct {
	mu     sync.Mutex
	fields []string
	tables map[string]*model.Table
}

// NewStore creates a Store that normalizes every loaded workbook to
// the given field set
func NewStore(fields []string) *Store {
	return &Store{
		fields: fields,
		tables: make(map[string]*model.Table),
	}
}

// Get returns the canonical table for path, loading and normalizing on
// first use. Failed loads are not cached, so a path that comes into
// existence later still works.
func (s *Store) Get(path string) (*model.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.tables[path]; ok {
		return t, nil
	}

	raw, err := Load(path)
	if err != nil {
		return nil, err
	}
	t := Normalize(raw, s.fields)
	s.tables[path] = t
	return t, nil
}
