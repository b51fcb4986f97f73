package ports

import "io"

// FileStore persists uploaded files under opaque stored names.
type FileStore interface {
	// Save writes content under a unique stored name derived from filename
	// and returns that name.
	Save(filename string, content io.Reader) (string, error)
	// Resolve maps a stored name back to a servable local path. Names that
	// escape the store or do not exist fail with domain.ErrResumeNotFound.
	Resolve(storedName string) (string, error)
}
