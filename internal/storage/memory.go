package storage

import (
	"context"
	"io"
	"path"
	"strings"
	"sync"
)

// MemStore is an in-memory MediaStore used by tests to assert that media
// writes and directory cleanup happen exactly when they should.
type MemStore struct {
	mu      sync.Mutex
	files   map[string][]byte
	removed []string
	// FailPut and FailRemove, when set, are returned by the respective calls.
	FailPut    error
	FailRemove error
}

// NewMemStore returns an empty in-memory media store.
func NewMemStore() *MemStore {
	return &MemStore{files: make(map[string][]byte)}
}

func (s *MemStore) Put(ctx context.Context, dir, filename string, r io.Reader) (string, error) {
	if s.FailPut != nil {
		return "", s.FailPut
	}
	content, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	rel := path.Join(dir, path.Base(filename))
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[rel] = content
	return rel, nil
}

func (s *MemStore) RemoveDir(ctx context.Context, dir string) error {
	if s.FailRemove != nil {
		return s.FailRemove
	}
	prefix := strings.TrimSuffix(dir, "/") + "/"
	s.mu.Lock()
	defer s.mu.Unlock()
	for p := range s.files {
		if strings.HasPrefix(p, prefix) {
			delete(s.files, p)
		}
	}
	s.removed = append(s.removed, dir)
	return nil
}

// Files returns a copy of the stored file paths.
func (s *MemStore) Files() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	paths := make([]string, 0, len(s.files))
	for p := range s.files {
		paths = append(paths, p)
	}
	return paths
}

// Removed returns the directories RemoveDir was called with, in order.
func (s *MemStore) Removed() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.removed...)
}

// Has reports whether a file exists at the given relative path.
func (s *MemStore) Has(rel string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.files[rel]
	return ok
}
