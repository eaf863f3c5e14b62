package tui

import (
	"context"

	"github.com/custodia-labs/doc-doctor/internal/docfile"
)

// DocumentStore loads and saves the text of one document.
type DocumentStore interface {
	// Path names the document for display.
	Path() string

	// Load returns the current text.
	Load(ctx context.Context) (string, error)

	// Save replaces the text.
	Save(ctx context.Context, text string) error
}

// Ensure FileStore implements the interface.
var _ DocumentStore = (*FileStore)(nil)

// FileStore is a DocumentStore backed by a file on disk.
// Saves go through a temporary file and a rename, keeping the file mode.
type FileStore struct {
	path string
}

// NewFileStore creates a store for path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the file.
func (s *FileStore) Load(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return docfile.Read(s.path)
}

// Save writes text atomically.
func (s *FileStore) Save(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return docfile.Write(s.path, text)
}
