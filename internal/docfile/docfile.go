// Package docfile reads and replaces document files on disk.
// Every front-end that edits a document in place writes through Write,
// so a failed write never leaves a half-written document behind.
package docfile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DefaultMode is the permission of a document that did not exist before.
const DefaultMode os.FileMode = 0o644

// Read returns the text of the file at path.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// Write replaces the file at path with text. The text goes to a temporary
// file in the same directory which is then renamed over path. An existing
// file keeps its permission bits.
func Write(path, text string) error {
	mode := DefaultMode
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.WriteString(tmp, text); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
