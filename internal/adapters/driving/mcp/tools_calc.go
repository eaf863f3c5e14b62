package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/doc-doctor/internal/core/domain"
)

// CalcHealthInput is the input schema for the calc_health tool.
type CalcHealthInput struct {
	Refinement float64           `json:"refinement" jsonschema:"refinement in [0, 1]"`
	Stubs      []domain.StubSpec `json:"stubs,omitempty" jsonschema:"the document's stubs; only stub_form matters"`
}

// CalcUsefulnessInput is the input schema for the calc_usefulness tool.
type CalcUsefulnessInput struct {
	Refinement float64 `json:"refinement" jsonschema:"refinement in [0, 1]"`
	Audience   string  `json:"audience" jsonschema:"personal, internal, trusted or public"`
}

// CalcDimensionsInput is the input schema for the calc_dimensions tool.
type CalcDimensionsInput struct {
	Path    string `json:"path,omitempty" jsonschema:"path of a Markdown file to read"`
	Content string `json:"content,omitempty" jsonschema:"document text; takes precedence over path"`
	At      string `json:"at,omitempty" jsonschema:"evaluate as of this RFC 3339 time (default now)"`
}

// CalcVectorInput is the input schema for the calc_vector_physics tool.
type CalcVectorInput struct {
	Stub                    domain.StubSpec `json:"stub" jsonschema:"the stub to evaluate"`
	HasControversy          bool            `json:"has_controversy,omitempty" jsonschema:"the topic is disputed"`
	HasExternalDependencies bool            `json:"has_external_dependencies,omitempty" jsonschema:"the stub waits on outside parties"`
	EditorialVelocity       *float64        `json:"editorial_velocity,omitempty" jsonschema:"work completed per day; enables the forecast"`
	AgeDays                 *float64        `json:"age_days,omitempty" jsonschema:"days since the stub was raised"`
}

// EmptyInput is the input schema of tools without arguments.
type EmptyInput struct{}

// SchemaOutput is the output schema of the schema tools.
type SchemaOutput struct {
	Schema string `json:"schema"`
}

func (s *Server) registerCalcTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "calc_health",
		Description: "Health of a document from its refinement and stub forms",
	}, s.handleCalcHealth)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "calc_usefulness",
		Description: "Compare a refinement against the gate of an audience",
	}, s.handleCalcUsefulness)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "calc_dimensions",
		Description: "Every per-document score: health, usefulness, trust and freshness",
	}, s.handleCalcDimensions)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "calc_vector_physics",
		Description: "Urgency, impact, friction, magnitude and completion forecast of one stub",
	}, s.handleCalcVectorPhysics)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_frontmatter_schema",
		Description: "JSON schema of the document header",
	}, s.handleFrontmatterSchema)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_stubs_schema",
		Description: "JSON schema of a stub",
	}, s.handleStubsSchema)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_config",
		Description: "Scoring configuration in effect and whether it fell back to defaults",
	}, s.handleGetConfig)
}

// handleCalcHealth handles the calc_health tool invocation.
func (s *Server) handleCalcHealth(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input CalcHealthInput,
) (*mcp.CallToolResult, domain.HealthScore, error) {
	stubs := make([]domain.Stub, len(input.Stubs))
	for i, spec := range input.Stubs {
		stubs[i] = spec.Canonicalize()
	}
	return nil, s.ports.Switchboard.CalcHealth(input.Refinement, stubs), nil
}

// handleCalcUsefulness handles the calc_usefulness tool invocation.
func (s *Server) handleCalcUsefulness(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input CalcUsefulnessInput,
) (*mcp.CallToolResult, domain.Usefulness, error) {
	audience, err := domain.ParseAudience(input.Audience)
	if err != nil {
		return nil, domain.Usefulness{}, toolError("calc_usefulness", err)
	}
	return nil, s.ports.Switchboard.CalcUsefulness(input.Refinement, audience), nil
}

// handleCalcDimensions handles the calc_dimensions tool invocation.
func (s *Server) handleCalcDimensions(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input CalcDimensionsInput,
) (*mcp.CallToolResult, domain.StateDimensions, error) {
	var at time.Time
	if input.At != "" {
		t, err := time.Parse(time.RFC3339, input.At)
		if err != nil {
			return nil, domain.StateDimensions{}, fmt.Errorf("calc_dimensions: invalid time %q: %w", input.At, err)
		}
		at = t
	}

	text, err := load(input.Path, input.Content)
	if err != nil {
		return nil, domain.StateDimensions{}, err
	}
	doc, err := s.ports.Switchboard.ParseDocument(text)
	if err != nil {
		return nil, domain.StateDimensions{}, toolError("calc_dimensions", err)
	}
	return nil, s.ports.Switchboard.CalcDimensions(doc.Properties, at), nil
}

// handleCalcVectorPhysics handles the calc_vector_physics tool invocation.
func (s *Server) handleCalcVectorPhysics(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input CalcVectorInput,
) (*mcp.CallToolResult, domain.VectorPhysics, error) {
	ctx := domain.StubContext{
		HasControversy:          input.HasControversy,
		HasExternalDependencies: input.HasExternalDependencies,
		EditorialVelocity:       input.EditorialVelocity,
		AgeDays:                 input.AgeDays,
	}
	return nil, s.ports.Switchboard.CalcVectorPhysics(input.Stub.Canonicalize(), ctx), nil
}

// handleFrontmatterSchema handles the get_frontmatter_schema tool invocation.
func (s *Server) handleFrontmatterSchema(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ EmptyInput,
) (*mcp.CallToolResult, SchemaOutput, error) {
	return nil, SchemaOutput{Schema: s.ports.Switchboard.FrontmatterSchema()}, nil
}

// handleStubsSchema handles the get_stubs_schema tool invocation.
func (s *Server) handleStubsSchema(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ EmptyInput,
) (*mcp.CallToolResult, SchemaOutput, error) {
	return nil, SchemaOutput{Schema: s.ports.Switchboard.StubsSchema()}, nil
}

// configOutput is returned untyped; half-lives encode as a number or "never".
type configOutput struct {
	UsingDefaults bool           `json:"using_defaults"`
	Config        *domain.Config `json:"config"`
}

// handleGetConfig handles the get_config tool invocation.
func (s *Server) handleGetConfig(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ EmptyInput,
) (*mcp.CallToolResult, any, error) {
	return nil, configOutput{
		UsingDefaults: s.ports.Switchboard.UsingDefaults(),
		Config:        s.ports.Switchboard.Config(),
	}, nil
}
