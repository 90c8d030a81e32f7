package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DiskStore stores media files on the local filesystem under a root directory.
type DiskStore struct {
	root string
}

// NewDiskStore returns a MediaStore rooted at the given directory.
func NewDiskStore(root string) *DiskStore {
	return &DiskStore{root: root}
}

// Root returns the media root directory.
func (s *DiskStore) Root() string {
	return s.root
}

func (s *DiskStore) Put(ctx context.Context, dir, filename string, r io.Reader) (string, error) {
	rel, err := s.safeJoin(dir, filename)
	if err != nil {
		return "", err
	}

	abs := filepath.Join(s.root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return "", fmt.Errorf("create media directory: %w", err)
	}

	f, err := os.Create(abs)
	if err != nil {
		return "", fmt.Errorf("create media file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if _, err := io.Copy(f, r); err != nil {
		_ = os.Remove(abs)
		return "", fmt.Errorf("write media file: %w", err)
	}
	return rel, nil
}

func (s *DiskStore) RemoveDir(ctx context.Context, dir string) error {
	rel, err := s.safeJoin(dir, "")
	if err != nil {
		return err
	}
	if err := os.RemoveAll(filepath.Join(s.root, filepath.FromSlash(rel))); err != nil {
		return fmt.Errorf("remove media directory: %w", err)
	}
	return nil
}

// safeJoin normalizes dir/filename and rejects paths escaping the media root.
func (s *DiskStore) safeJoin(dir, filename string) (string, error) {
	joined := dir
	if filename != "" {
		joined = dir + "/" + filepath.Base(filename)
	}
	clean := filepath.ToSlash(filepath.Clean("/" + joined))
	clean = strings.TrimPrefix(clean, "/")
	if clean == "" || clean == "." || strings.HasPrefix(clean, "..") {
		return "", fmt.Errorf("invalid media path %q", joined)
	}
	return clean, nil
}
