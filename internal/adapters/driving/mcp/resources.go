package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for doc-doctor resources.
	uriScheme = "doc-doctor://"

	frontmatterSchemaURI = uriScheme + "schema/frontmatter"
	stubsSchemaURI       = uriScheme + "schema/stubs"
	configURI            = uriScheme + "config"

	schemaMIMEType = "application/schema+json"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         frontmatterSchemaURI,
		Name:        "frontmatter-schema",
		Description: "JSON schema of the document header",
		MIMEType:    schemaMIMEType,
	}, s.handleSchemaResource)

	s.server.AddResource(&mcp.Resource{
		URI:         stubsSchemaURI,
		Name:        "stubs-schema",
		Description: "JSON schema of a stub",
		MIMEType:    schemaMIMEType,
	}, s.handleSchemaResource)

	s.server.AddResource(&mcp.Resource{
		URI:         configURI,
		Name:        "config",
		Description: "Scoring configuration in effect",
		MIMEType:    "application/json",
	}, s.handleConfigResource)
}

// handleSchemaResource returns one of the embedded schemas.
func (s *Server) handleSchemaResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	var text string
	switch req.Params.URI {
	case frontmatterSchemaURI:
		text = s.ports.Switchboard.FrontmatterSchema()
	case stubsSchemaURI:
		text = s.ports.Switchboard.StubsSchema()
	default:
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: schemaMIMEType,
			Text:     text,
		}},
	}, nil
}

// handleConfigResource returns the configuration in effect.
func (s *Server) handleConfigResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(configOutput{
		UsingDefaults: s.ports.Switchboard.UsingDefaults(),
		Config:        s.ports.Switchboard.Config(),
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling config: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
