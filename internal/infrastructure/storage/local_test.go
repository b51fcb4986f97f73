package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jobhive/backend/internal/core/domain"
)

func TestLocalStore_SaveAndResolve(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStore failed: %v", err)
	}

	stored, err := store.Save("cv.pdf", strings.NewReader("resume bytes"))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if !strings.HasSuffix(stored, "_cv.pdf") {
		t.Fatalf("expected uuid-prefixed name, got %q", stored)
	}

	path, err := store.Resolve(stored)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(data) != "resume bytes" {
		t.Fatalf("unexpected file content: %q", data)
	}
}

func TestLocalStore_SameNameNoCollision(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStore failed: %v", err)
	}

	first, err := store.Save("cv.pdf", strings.NewReader("first"))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	second, err := store.Save("cv.pdf", strings.NewReader("second"))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if first == second {
		t.Fatalf("two uploads of the same filename must not collide")
	}
}

func TestLocalStore_SaveStripsDirectories(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	if err != nil {
		t.Fatalf("NewLocalStore failed: %v", err)
	}

	stored, err := store.Save("../../etc/passwd", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if strings.ContainsAny(stored, `/\`) {
		t.Fatalf("stored name must not contain separators: %q", stored)
	}
	if _, err := os.Stat(filepath.Join(dir, stored)); err != nil {
		t.Fatalf("file must land inside the store dir: %v", err)
	}
}

func TestLocalStore_ResolveRejectsTraversal(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStore failed: %v", err)
	}

	for _, name := range []string{"", "../secret", "a/b", `a\b`, "..", "missing-file"} {
		if _, err := store.Resolve(name); !errors.Is(err, domain.ErrResumeNotFound) {
			t.Fatalf("name %q: expected ErrResumeNotFound, got %v", name, err)
		}
	}
}
