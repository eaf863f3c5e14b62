// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

// DocumentLoaded carries the text read from the document store.
type DocumentLoaded struct {
	Path string
	Text string
	Err  error
}

// DocumentSaved signals the edited text was written back.
type DocumentSaved struct {
	Path string
	Text string
	Err  error
}

// StubEdited carries the rewritten text after an edit on one stub.
// Index is the stub to keep selected, or -1 when it no longer exists.
type StubEdited struct {
	Text    string
	Index   int
	Summary string
	Err     error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
