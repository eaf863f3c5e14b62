package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/doc-doctor/internal/core/domain"
)

// DocumentInput names a document by path or passes it inline.
type DocumentInput struct {
	Path    string `json:"path,omitempty" jsonschema:"path of a Markdown file to read"`
	Content string `json:"content,omitempty" jsonschema:"document text; takes precedence over path"`
}

// ValidateInput is the input schema for the validate_document tool.
type ValidateInput struct {
	Path    string `json:"path,omitempty" jsonschema:"path of a Markdown file to read"`
	Content string `json:"content,omitempty" jsonschema:"document text; takes precedence over path"`
	Strict  bool   `json:"strict,omitempty" jsonschema:"treat unknown header keys as errors"`
}

// ValidateOutput is the output schema for the validate_document tool.
type ValidateOutput struct {
	IsValid  bool                `json:"is_valid"`
	Errors   []domain.Diagnostic `json:"errors"`
	Warnings []domain.Diagnostic `json:"warnings"`
}

// ListStubsInput is the input schema for the list_stubs tool.
type ListStubsInput struct {
	Path         string `json:"path,omitempty" jsonschema:"path of a Markdown file to read"`
	Content      string `json:"content,omitempty" jsonschema:"document text; takes precedence over path"`
	Type         string `json:"type,omitempty" jsonschema:"only stubs of this type"`
	BlockingOnly bool   `json:"blocking_only,omitempty" jsonschema:"only blocking stubs"`
	Priority     string `json:"priority,omitempty" jsonschema:"only stubs of this priority: low, medium, high or critical"`
}

// ListStubsOutput is the output schema for the list_stubs tool.
type ListStubsOutput struct {
	Stubs []domain.IndexedStub `json:"stubs"`
	Count int                  `json:"count"`
}

// AnchorsOutput is the output schema for the find_stub_anchors tool.
type AnchorsOutput struct {
	Anchors []domain.AnchorOccurrence `json:"anchors"`
	Stubs   []domain.StubAnchorMatch  `json:"stubs"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "parse_document",
		Description: "Decode the YAML header of a Markdown document into structured properties",
	}, s.handleParseDocument)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyze_document",
		Description: "Score a document: health, usefulness, trust, freshness and stubs ranked by vector magnitude",
	}, s.handleAnalyzeDocument)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "validate_document",
		Description: "Report every problem in a document header with JSON-pointer paths",
	}, s.handleValidateDocument)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_stubs",
		Description: "List the stubs (editorial gaps) of a document, optionally filtered",
	}, s.handleListStubs)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "find_stub_anchors",
		Description: "Find ^anchor markers in the body and match them to stubs",
	}, s.handleFindStubAnchors)

	s.registerEditTools()
	s.registerCalcTools()
}

// handleParseDocument handles the parse_document tool invocation.
func (s *Server) handleParseDocument(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input DocumentInput,
) (*mcp.CallToolResult, any, error) {
	text, err := load(input.Path, input.Content)
	if err != nil {
		return nil, nil, err
	}
	doc, err := s.ports.Switchboard.ParseDocument(text)
	if err != nil {
		return nil, nil, toolError("parse_document", err)
	}
	return nil, doc, nil
}

// handleAnalyzeDocument handles the analyze_document tool invocation.
func (s *Server) handleAnalyzeDocument(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input DocumentInput,
) (*mcp.CallToolResult, any, error) {
	text, err := load(input.Path, input.Content)
	if err != nil {
		return nil, nil, err
	}
	analysis, err := s.ports.Switchboard.AnalyzeDocument(text)
	if err != nil {
		return nil, nil, toolError("analyze_document", err)
	}
	return nil, analysis, nil
}

// handleValidateDocument handles the validate_document tool invocation.
func (s *Server) handleValidateDocument(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ValidateInput,
) (*mcp.CallToolResult, ValidateOutput, error) {
	text, err := load(input.Path, input.Content)
	if err != nil {
		return nil, ValidateOutput{}, err
	}
	result := s.ports.Switchboard.ValidateDocument(text, input.Strict)

	output := ValidateOutput{
		IsValid:  result.IsValid,
		Errors:   result.Errors,
		Warnings: result.Warnings,
	}
	if output.Errors == nil {
		output.Errors = []domain.Diagnostic{}
	}
	if output.Warnings == nil {
		output.Warnings = []domain.Diagnostic{}
	}
	return nil, output, nil
}

// handleListStubs handles the list_stubs tool invocation.
func (s *Server) handleListStubs(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ListStubsInput,
) (*mcp.CallToolResult, ListStubsOutput, error) {
	text, err := load(input.Path, input.Content)
	if err != nil {
		return nil, ListStubsOutput{}, err
	}

	filter := domain.StubFilter{Type: input.Type, BlockingOnly: input.BlockingOnly}
	if input.Priority != "" {
		p, err := domain.ParsePriority(input.Priority)
		if err != nil {
			return nil, ListStubsOutput{}, toolError("list_stubs", err)
		}
		filter.Priority = p
	}

	stubs, err := s.ports.Switchboard.ListStubs(text, filter)
	if err != nil {
		return nil, ListStubsOutput{}, toolError("list_stubs", err)
	}
	if stubs == nil {
		stubs = []domain.IndexedStub{}
	}
	return nil, ListStubsOutput{Stubs: stubs, Count: len(stubs)}, nil
}

// handleFindStubAnchors handles the find_stub_anchors tool invocation.
func (s *Server) handleFindStubAnchors(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input DocumentInput,
) (*mcp.CallToolResult, AnchorsOutput, error) {
	text, err := load(input.Path, input.Content)
	if err != nil {
		return nil, AnchorsOutput{}, err
	}
	report, err := s.ports.Switchboard.FindStubAnchors(text)
	if err != nil {
		return nil, AnchorsOutput{}, toolError("find_stub_anchors", err)
	}

	output := AnchorsOutput{Anchors: report.Anchors, Stubs: report.Stubs}
	if output.Anchors == nil {
		output.Anchors = []domain.AnchorOccurrence{}
	}
	if output.Stubs == nil {
		output.Stubs = []domain.StubAnchorMatch{}
	}
	return nil, output, nil
}
