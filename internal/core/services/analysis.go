package services

import (
	"time"

	"github.com/custodia-labs/doc-doctor/internal/core/domain"
	"github.com/custodia-labs/doc-doctor/internal/core/scoring"
)

// ParseDocument decodes the header of text leniently.
func (s *Switchboard) ParseDocument(text string) (*domain.ParsedDocument, error) {
	doc, err := s.parser.Parse(text, domain.ParseOptions{})
	if err != nil {
		return nil, toDomainError(err)
	}
	return doc, nil
}

// AnalyzeDocument parses text and computes every score as of now.
func (s *Switchboard) AnalyzeDocument(text string) (*domain.Analysis, error) {
	doc, err := s.ParseDocument(text)
	if err != nil {
		return nil, err
	}

	cfg := s.Config()
	now := s.now()
	p := doc.Properties

	warnings := doc.Warnings()
	for i := range warnings {
		warnings[i].Field = domain.PointerPath(warnings[i].Field)
	}

	return &domain.Analysis{
		Properties:    p,
		Span:          doc.Span,
		Dimensions:    scoring.Dimensions(p, now, cfg),
		Health:        scoring.Health(p.Refinement, p.Stubs, cfg),
		Stubs:         scoring.Summarize(p.Stubs),
		Ranked:        scoring.RankStubs(p.Stubs, domain.StubContext{}, cfg),
		Warnings:      warnings,
		AnalyzedAt:    now,
		UsingDefaults: s.UsingDefaults(),
	}, nil
}

// CalcHealth computes health. Refinement is clamped to [0, 1].
func (s *Switchboard) CalcHealth(refinement float64, stubs []domain.Stub) domain.HealthScore {
	return scoring.Health(domain.ClampUnit(refinement), stubs, s.Config())
}

// CalcUsefulness compares refinement, clamped to [0, 1], against the audience gate.
func (s *Switchboard) CalcUsefulness(refinement float64, audience domain.Audience) domain.Usefulness {
	return scoring.Usefulness(domain.ClampUnit(refinement), audience, s.Config())
}

// CalcDimensions computes every per-document score.
// A zero now means the current time.
func (s *Switchboard) CalcDimensions(props domain.Properties, now time.Time) domain.StateDimensions {
	if now.IsZero() {
		now = s.now()
	}
	return scoring.Dimensions(props, now, s.Config())
}

// CalcVectorPhysics computes the ranking quantities of one stub.
func (s *Switchboard) CalcVectorPhysics(stub domain.Stub, ctx domain.StubContext) domain.VectorPhysics {
	return scoring.VectorPhysics(stub, ctx, s.Config())
}
