package scoring

import (
	"math"

	"github.com/custodia-labs/doc-doctor/internal/core/domain"
)

// StubPenalty returns the summed form penalties of stubs, capped at 1.0.
func StubPenalty(stubs []domain.Stub, cfg *domain.Config) float64 {
	total := 0.0
	for i := range stubs {
		total += cfg.StubPenalties.For(stubs[i].Form)
	}
	return math.Min(1, total)
}

// Health combines refinement with the stub burden.
func Health(refinement domain.Unit, stubs []domain.Stub, cfg *domain.Config) domain.HealthScore {
	penalty := StubPenalty(stubs, cfg)
	r := cfg.Health.Refinement * refinement.Float64()
	s := cfg.Health.Stubs * (1 - penalty)
	return domain.HealthScore{
		Score:               clamp01(r + s),
		StubPenalty:         penalty,
		RefinementComponent: r,
		StubComponent:       s,
	}
}

// Usefulness compares refinement against the audience gate.
func Usefulness(refinement domain.Unit, audience domain.Audience, cfg *domain.Config) domain.Usefulness {
	gate := cfg.Gates.For(audience)
	margin := refinement.Float64() - gate
	return domain.Usefulness{
		Refinement: refinement.Float64(),
		Gate:       gate,
		Margin:     margin,
		IsUseful:   refinement.Float64() >= gate,
		Audience:   audience,
	}
}

// Trust looks up the trust factor of an origin.
func Trust(origin domain.Origin, cfg *domain.Config) float64 {
	return cfg.Trust.For(origin)
}

func clamp01(v float64) float64 {
	return domain.ClampUnit(v).Float64()
}
