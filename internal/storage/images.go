// Package storage saves uploaded product images on local disk and resolves
// them back for serving.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// URLPrefix is the public path under which stored images are served.
const URLPrefix = "/api/products/images/"

var ErrImageNotFound = errors.New("image not found")

// ImageStore writes uploads into a single content directory. Filenames get
// a random prefix so two uploads with the same original name never collide.
type ImageStore struct {
	dir string
}

func NewImageStore(dir string) (*ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload dir: %w", err)
	}
	return &ImageStore{dir: dir}, nil
}

// Save stores the upload under a generated unique filename and returns the
// reference URL the retrieval endpoint resolves later.
func (s *ImageStore) Save(originalName string, r io.Reader) (string, error) {
	name := uuid.NewString() + "_" + sanitize(originalName)

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("creating image file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("writing image file: %w", err)
	}

	return URLPrefix + name, nil
}

// Resolve maps a requested filename to its path on disk. It rejects names
// that try to escape the content directory and reports ErrImageNotFound
// when the file is absent or unreadable.
func (s *ImageStore) Resolve(filename string) (string, error) {
	if filename == "" || filename != filepath.Base(filename) {
		return "", ErrImageNotFound
	}

	path := filepath.Join(s.dir, filename)
	f, err := os.Open(path)
	if err != nil {
		return "", ErrImageNotFound
	}
	f.Close()
	return path, nil
}

// sanitize strips any path components from a client-supplied filename.
func sanitize(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == string(filepath.Separator) {
		return "upload"
	}
	return name
}
