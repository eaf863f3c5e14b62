// Package mcp provides an MCP (Model Context Protocol) server adapter for doc-doctor.
// It lets AI assistants parse, score and edit Markdown document headers through
// the same switchboard the command line uses.
package mcp

import (
	"errors"
	"fmt"
	"strings"

	"github.com/custodia-labs/doc-doctor/internal/core/domain"
)

var (
	// ErrMissingSwitchboard is returned when the switchboard is not provided.
	ErrMissingSwitchboard = errors.New("mcp: switchboard is required")

	// ErrNoDocument is returned when a tool call names neither a path nor content.
	ErrNoDocument = errors.New("mcp: either path or content is required")
)

// toolError renders a switchboard error with its code, position and
// suggestion so the assistant can act on it.
func toolError(op string, err error) error {
	derr, ok := domain.AsError(err)
	if !ok {
		return fmt.Errorf("%s: %w", op, err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: [%s] %s", op, derr.Code(), derr.Error())
	if derr.Field != "" {
		fmt.Fprintf(&b, " (field %s)", derr.Field)
	}
	if derr.Snippet != "" {
		fmt.Fprintf(&b, "\nnear: %s", derr.Snippet)
	}
	if derr.Suggestion != "" {
		fmt.Fprintf(&b, "\nsuggestion: %s", derr.Suggestion)
	}
	return &wrappedError{msg: b.String(), err: err}
}

type wrappedError struct {
	msg string
	err error
}

func (e *wrappedError) Error() string { return e.msg }
func (e *wrappedError) Unwrap() error { return e.err }
