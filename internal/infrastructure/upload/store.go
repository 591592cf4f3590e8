package upload

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"loomledger-backend/pkg/id"
)

// Store keeps uploaded documents on local disk under a single directory.
// Stored names are prefixed with a random id so two uploads with the same
// original filename never collide.
type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

// Save writes the stream to disk and returns the stored filename. Only the
// base of the original name is kept; path components from the client are
// discarded.
func (s *Store) Save(originalName string, r io.Reader) (string, error) {
	base := filepath.Base(strings.TrimSpace(originalName))
	if base == "" || base == "." || base == string(filepath.Separator) {
		base = "upload"
	}
	stored := id.NewID32()[:8] + "_" + base

	f, err := os.Create(filepath.Join(s.dir, stored))
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return stored, nil
}

// Remove deletes a stored file. Removing a name that is already gone is
// not an error.
func (s *Store) Remove(name string) error {
	base := filepath.Base(name)
	err := os.Remove(filepath.Join(s.dir, base))
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}

// Path returns the on-disk location of a stored filename.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, filepath.Base(name))
}
