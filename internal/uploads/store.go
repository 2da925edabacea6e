// Package uploads is the blob store backing transparency documents. Files
// live in a single flat directory and are referenced from database rows by
// their generated relative path.
package uploads

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"
)

type Store struct {
	dir string
}

// NewStore ensures the backing directory exists before any request touches it.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		dir = "uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// servePrefix is the URL prefix the stored paths are reachable under. The
// backing directory never appears in a stored path, so a deployment can move
// UPLOADS_DIR without exposing the filesystem layout on the wire.
const servePrefix = "uploads"

// Save writes src under a collision-resistant generated name, keeping the
// original extension, and returns the serving path stored in the database.
func (s *Store) Save(filename string, src io.Reader) (string, error) {
	name := uuid.New().String() + filepath.Ext(filepath.Base(filename))

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}
	return path.Join(servePrefix, name), nil
}

// Remove deletes a stored file by the path previously returned from Save.
// Only the base name is honored so a stored path can never escape the
// uploads directory.
func (s *Store) Remove(storedPath string) error {
	name := filepath.Base(storedPath)
	if name == "." || name == string(filepath.Separator) {
		return fmt.Errorf("invalid stored path %q", storedPath)
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil {
		return fmt.Errorf("remove upload file: %w", err)
	}
	return nil
}

// Handler serves the stored files read-only.
func (s *Store) Handler() http.Handler {
	return http.FileServer(http.Dir(s.dir))
}
