// Package media stores uploaded files on local disk under a single upload
// directory. Writes are not atomic and are not coordinated with database
// commits; a blog row can reference an image whose write failed half-way.
package media

import (
	"io"
	"os"
	"path/filepath"
)

type Store struct {
	root string
}

// NewStore creates the upload directory if needed.
func NewStore(root string) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &Store{root: root}, nil
}

// Save writes the file under its original name and returns the stored path
// as persisted in blog rows. An existing file with the same name is
// silently overwritten.
func (s *Store) Save(filename string, r io.Reader) (string, error) {
	path := filepath.Join(s.root, filepath.Base(filename))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", err
	}
	return path, nil
}

// Path resolves a filename to its location under the upload root.
func (s *Store) Path(filename string) string {
	return filepath.Join(s.root, filepath.Base(filename))
}

// Exists reports whether a stored file is present on disk.
func (s *Store) Exists(filename string) bool {
	info, err := os.Stat(s.Path(filename))
	return err == nil && !info.IsDir()
}

// Root returns the upload directory, used for the static mount.
func (s *Store) Root() string { return s.root }
