package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestStore(t *testing.T) *ImageStore {
	t.Helper()
	store, err := NewImageStore(t.TempDir())
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}
	return store
}

func TestSaveAndResolve(t *testing.T) {
	store := newTestStore(t)

	url, err := store.Save("photo.png", strings.NewReader("image-bytes"))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if !strings.HasPrefix(url, URLPrefix) {
		t.Fatalf("expected url under %q, got %q", URLPrefix, url)
	}
	if !strings.HasSuffix(url, "_photo.png") {
		t.Errorf("expected the original filename to be kept, got %q", url)
	}

	filename := strings.TrimPrefix(url, URLPrefix)
	path, err := store.Resolve(filename)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading stored file: %v", err)
	}
	if string(content) != "image-bytes" {
		t.Errorf("stored content mismatch: %q", content)
	}
}

func TestSaveUniqueNames(t *testing.T) {
	store := newTestStore(t)

	first, err := store.Save("photo.png", strings.NewReader("one"))
	if err != nil {
		t.Fatalf("first save failed: %v", err)
	}
	second, err := store.Save("photo.png", strings.NewReader("two"))
	if err != nil {
		t.Fatalf("second save failed: %v", err)
	}
	if first == second {
		t.Errorf("two uploads with the same name must not collide: %q", first)
	}
}

func TestSaveSanitizesFilename(t *testing.T) {
	store := newTestStore(t)

	url, err := store.Save("../../etc/passwd", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	filename := strings.TrimPrefix(url, URLPrefix)
	if strings.Contains(filename, "/") || strings.Contains(filename, "..") {
		t.Errorf("stored name must not contain path components: %q", filename)
	}
}

func TestResolveRejectsTraversal(t *testing.T) {
	store := newTestStore(t)

	for _, name := range []string{"", "../secret", "a/b.png", filepath.Join("..", "x")} {
		if _, err := store.Resolve(name); err != ErrImageNotFound {
			t.Errorf("Resolve(%q): expected ErrImageNotFound, got %v", name, err)
		}
	}
}

func TestResolveMissingFile(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Resolve("nope.png"); err != ErrImageNotFound {
		t.Errorf("expected ErrImageNotFound, got %v", err)
	}
}
