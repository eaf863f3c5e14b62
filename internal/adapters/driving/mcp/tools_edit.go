package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/doc-doctor/internal/core/domain"
)

// AddStubInput is the input schema for the add_stub tool.
type AddStubInput struct {
	Path    string          `json:"path,omitempty" jsonschema:"path of a Markdown file to read"`
	Content string          `json:"content,omitempty" jsonschema:"document text; takes precedence over path"`
	Write   bool            `json:"write,omitempty" jsonschema:"write the edited document back to path"`
	Stub    domain.StubSpec `json:"stub" jsonschema:"the stub to append"`
}

// StubIndexInput is the input schema for the resolve_stub tool.
type StubIndexInput struct {
	Path    string `json:"path,omitempty" jsonschema:"path of a Markdown file to read"`
	Content string `json:"content,omitempty" jsonschema:"document text; takes precedence over path"`
	Write   bool   `json:"write,omitempty" jsonschema:"write the edited document back to path"`
	Index   int    `json:"index" jsonschema:"zero-based stub index"`
}

// UpdateStubInput is the input schema for the update_stub tool.
type UpdateStubInput struct {
	Path        string  `json:"path,omitempty" jsonschema:"path of a Markdown file to read"`
	Content     string  `json:"content,omitempty" jsonschema:"document text; takes precedence over path"`
	Write       bool    `json:"write,omitempty" jsonschema:"write the edited document back to path"`
	Index       int     `json:"index" jsonschema:"zero-based stub index"`
	Description *string `json:"description,omitempty" jsonschema:"new description"`
	Priority    *string `json:"priority,omitempty" jsonschema:"new priority: low, medium, high or critical"`
	StubForm    *string `json:"stub_form,omitempty" jsonschema:"new form: transient, persistent, blocking or structural"`
}

// AnchorInput is the input schema for the link_stub_anchor and unlink_stub_anchor tools.
type AnchorInput struct {
	Path     string `json:"path,omitempty" jsonschema:"path of a Markdown file to read"`
	Content  string `json:"content,omitempty" jsonschema:"document text; takes precedence over path"`
	Write    bool   `json:"write,omitempty" jsonschema:"write the edited document back to path"`
	Index    int    `json:"index" jsonschema:"zero-based stub index"`
	AnchorID string `json:"anchor_id" jsonschema:"anchor id, with or without the leading ^"`
}

// InitInput is the input schema for the init_document tool.
type InitInput struct {
	Path    string `json:"path,omitempty" jsonschema:"path of a Markdown file to read"`
	Content string `json:"content,omitempty" jsonschema:"document text; takes precedence over path"`
	Write   bool   `json:"write,omitempty" jsonschema:"write the edited document back to path"`
	UID     string `json:"uid" jsonschema:"uid to set when the document has none"`
	Title   string `json:"title,omitempty" jsonschema:"title to set when the document has none"`
}

// EditOutput is the output schema of the editing tools.
type EditOutput struct {
	Content string       `json:"content"`
	Index   int          `json:"index"`
	Stub    *domain.Stub `json:"stub,omitempty"`
	Written bool         `json:"written"`
}

// InitOutput is the output schema for the init_document tool.
type InitOutput struct {
	Content       string `json:"content"`
	UID           string `json:"uid"`
	CreatedHeader bool   `json:"created_header"`
	Written       bool   `json:"written"`
}

func (s *Server) registerEditTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add_stub",
		Description: "Append a stub to the document header and return the new document",
	}, s.handleAddStub)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "resolve_stub",
		Description: "Remove a resolved stub; later stubs shift down by one",
	}, s.handleResolveStub)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "update_stub",
		Description: "Change the description, priority or form of a stub",
	}, s.handleUpdateStub)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "link_stub_anchor",
		Description: "Link an inline ^anchor to a stub; linking twice changes nothing",
	}, s.handleLinkStubAnchor)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "unlink_stub_anchor",
		Description: "Unlink an inline ^anchor from a stub; absent anchors are ignored",
	}, s.handleUnlinkStubAnchor)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "init_document",
		Description: "Stamp uid, title, created and modified, adding a header when missing",
	}, s.handleInitDocument)
}

// handleAddStub handles the add_stub tool invocation.
func (s *Server) handleAddStub(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input AddStubInput,
) (*mcp.CallToolResult, EditOutput, error) {
	text, err := load(input.Path, input.Content)
	if err != nil {
		return nil, EditOutput{}, err
	}
	result, err := s.ports.Switchboard.AddStub(text, input.Stub)
	if err != nil {
		return nil, EditOutput{}, toolError("add_stub", err)
	}
	written, err := store(input.Path, input.Write, text, result.Text)
	if err != nil {
		return nil, EditOutput{}, err
	}
	return nil, EditOutput{Content: result.Text, Index: result.Index, Written: written}, nil
}

// handleResolveStub handles the resolve_stub tool invocation.
func (s *Server) handleResolveStub(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input StubIndexInput,
) (*mcp.CallToolResult, EditOutput, error) {
	text, err := load(input.Path, input.Content)
	if err != nil {
		return nil, EditOutput{}, err
	}
	result, err := s.ports.Switchboard.ResolveStub(text, input.Index)
	if err != nil {
		return nil, EditOutput{}, toolError("resolve_stub", err)
	}
	written, err := store(input.Path, input.Write, text, result.Text)
	if err != nil {
		return nil, EditOutput{}, err
	}
	removed := result.Removed
	return nil, EditOutput{Content: result.Text, Index: input.Index, Stub: &removed, Written: written}, nil
}

// handleUpdateStub handles the update_stub tool invocation.
func (s *Server) handleUpdateStub(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input UpdateStubInput,
) (*mcp.CallToolResult, EditOutput, error) {
	text, err := load(input.Path, input.Content)
	if err != nil {
		return nil, EditOutput{}, err
	}

	update := domain.StubUpdate{Description: input.Description}
	if input.Priority != nil {
		p := domain.Priority(*input.Priority)
		update.Priority = &p
	}
	if input.StubForm != nil {
		f := domain.StubForm(*input.StubForm)
		update.Form = &f
	}

	result, err := s.ports.Switchboard.UpdateStub(text, input.Index, update)
	if err != nil {
		return nil, EditOutput{}, toolError("update_stub", err)
	}
	return s.finishEdit(input.Path, input.Write, text, result)
}

// handleLinkStubAnchor handles the link_stub_anchor tool invocation.
func (s *Server) handleLinkStubAnchor(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input AnchorInput,
) (*mcp.CallToolResult, EditOutput, error) {
	text, err := load(input.Path, input.Content)
	if err != nil {
		return nil, EditOutput{}, err
	}
	result, err := s.ports.Switchboard.LinkStubAnchor(text, input.Index, input.AnchorID)
	if err != nil {
		return nil, EditOutput{}, toolError("link_stub_anchor", err)
	}
	return s.finishEdit(input.Path, input.Write, text, result)
}

// handleUnlinkStubAnchor handles the unlink_stub_anchor tool invocation.
func (s *Server) handleUnlinkStubAnchor(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input AnchorInput,
) (*mcp.CallToolResult, EditOutput, error) {
	text, err := load(input.Path, input.Content)
	if err != nil {
		return nil, EditOutput{}, err
	}
	result, err := s.ports.Switchboard.UnlinkStubAnchor(text, input.Index, input.AnchorID)
	if err != nil {
		return nil, EditOutput{}, toolError("unlink_stub_anchor", err)
	}
	return s.finishEdit(input.Path, input.Write, text, result)
}

func (s *Server) finishEdit(
	path string,
	write bool,
	original string,
	result *domain.StubEditResult,
) (*mcp.CallToolResult, EditOutput, error) {
	written, err := store(path, write, original, result.Text)
	if err != nil {
		return nil, EditOutput{}, err
	}
	stub := result.Stub
	return nil, EditOutput{Content: result.Text, Index: result.Index, Stub: &stub, Written: written}, nil
}

// handleInitDocument handles the init_document tool invocation.
func (s *Server) handleInitDocument(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input InitInput,
) (*mcp.CallToolResult, InitOutput, error) {
	text, err := load(input.Path, input.Content)
	if err != nil && !errors.Is(err, ErrNoDocument) {
		return nil, InitOutput{}, err
	}

	result, err := s.ports.Switchboard.InitDocument(text, domain.InitOptions{
		UID:   input.UID,
		Title: input.Title,
	})
	if err != nil {
		return nil, InitOutput{}, toolError("init_document", err)
	}
	written, err := store(input.Path, input.Write, text, result.Text)
	if err != nil {
		return nil, InitOutput{}, err
	}
	return nil, InitOutput{
		Content:       result.Text,
		UID:           result.Properties.UID,
		CreatedHeader: result.Created,
		Written:       written,
	}, nil
}
