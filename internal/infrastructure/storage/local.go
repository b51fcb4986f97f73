// Package storage implements file persistence for uploaded resumes on
// the local filesystem.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/jobhive/backend/internal/core/domain"
)

// LocalStore writes uploads under a single directory. Stored names are
// prefixed with a UUID so concurrent uploads of files with the same name
// never collide, and Resolve refuses any name that could escape the
// directory.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

func (s *LocalStore) Save(filename string, content io.Reader) (string, error) {
	stored := uuid.NewString() + "_" + sanitize(filename)

	f, err := os.Create(filepath.Join(s.dir, stored))
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("write file: %w", err)
	}
	return stored, nil
}

// Resolve maps a stored name back to an absolute path. Names containing
// path separators or traversal sequences are rejected outright.
func (s *LocalStore) Resolve(storedName string) (string, error) {
	if storedName == "" ||
		strings.ContainsAny(storedName, `/\`) ||
		strings.Contains(storedName, "..") {
		return "", domain.ErrResumeNotFound
	}

	path := filepath.Join(s.dir, storedName)
	if _, err := os.Stat(path); err != nil {
		return "", domain.ErrResumeNotFound
	}
	return path, nil
}

// sanitize strips directory components and whitespace from an uploaded
// filename, leaving only a safe base name.
func sanitize(filename string) string {
	base := filepath.Base(strings.ReplaceAll(filename, `\`, "/"))
	base = strings.TrimSpace(base)
	if base == "" || base == "." || base == ".." {
		return "upload"
	}
	return base
}
