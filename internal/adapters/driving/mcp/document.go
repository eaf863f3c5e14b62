package mcp

import "github.com/custodia-labs/doc-doctor/internal/docfile"

// load returns content, or the text of the file at path when content is empty.
func load(path, content string) (string, error) {
	if content != "" {
		return content, nil
	}
	if path == "" {
		return "", ErrNoDocument
	}
	return docfile.Read(path)
}

// store writes edited text back to path when write is set.
// It reports whether the file was written.
func store(path string, write bool, original, text string) (bool, error) {
	if !write || path == "" || text == original {
		return false, nil
	}
	if err := docfile.Write(path, text); err != nil {
		return false, err
	}
	return true, nil
}
