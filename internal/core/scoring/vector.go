package scoring

import (
	"math"
	"sort"

	"github.com/custodia-labs/doc-doctor/internal/core/domain"
)

// Friction contributions.
const (
	controversyFriction = 0.3
	dependencyFriction  = 0.1
	dependencyCap       = 0.5
	blockerFriction     = 0.2
	externalFriction    = 0.2
)

// Urgency is the stub's own value, else the configured default,
// else the value implied by its priority.
func Urgency(s domain.Stub, cfg *domain.Config) float64 {
	switch {
	case s.Urgency != nil:
		return s.Urgency.Float64()
	case cfg.Vector.DefaultUrgency != nil:
		return *cfg.Vector.DefaultUrgency
	default:
		return s.Priority.Urgency()
	}
}

// Impact is the stub's own value or the configured default.
func Impact(s domain.Stub, cfg *domain.Config) float64 {
	if s.Impact != nil {
		return s.Impact.Float64()
	}
	return cfg.Vector.DefaultImpact
}

// Complexity is the stub's own value or the configured default.
func Complexity(s domain.Stub, cfg *domain.Config) float64 {
	if s.Complexity != nil {
		return s.Complexity.Float64()
	}
	return cfg.Vector.DefaultComplexity
}

// Friction sums controversy, dependency, blocker and external resistance, capped at 1.0.
func Friction(s domain.Stub, ctx domain.StubContext) float64 {
	f := 0.0
	if len(s.Participants) >= 2 || ctx.HasControversy {
		f += controversyFriction
	}
	f += math.Min(dependencyCap, dependencyFriction*float64(len(s.Dependencies)))
	if s.IsBlocking() {
		f += blockerFriction
	}
	if ctx.HasExternalDependencies {
		f += externalFriction
	}
	return math.Min(1, f)
}

// ForecastCompletion estimates time to completion.
// It reports false when velocity is not positive or friction is total.
func ForecastCompletion(potentialEnergy, velocity, friction float64) (float64, bool) {
	if velocity <= 0 || friction >= 1 {
		return 0, false
	}
	return potentialEnergy / (velocity * (1 - friction)), true
}

// VectorPhysics computes the ranking quantities of one stub.
func VectorPhysics(s domain.Stub, ctx domain.StubContext, cfg *domain.Config) domain.VectorPhysics {
	u, i, c := Urgency(s, cfg), Impact(s, cfg), Complexity(s, cfg)
	pe := u * i * c
	f := Friction(s, ctx)

	v := domain.VectorPhysics{
		Family:          s.Family(),
		Urgency:         u,
		Impact:          i,
		Complexity:      c,
		PotentialEnergy: pe,
		Friction:        f,
		Magnitude:       math.Hypot(pe, f),
	}
	if ctx.EditorialVelocity != nil {
		if fc, ok := ForecastCompletion(pe, *ctx.EditorialVelocity, f); ok {
			v.Forecast = &fc
		}
	}
	return v
}

// RankStubs returns the stubs ordered by descending magnitude.
// Ties keep document order.
func RankStubs(stubs []domain.Stub, ctx domain.StubContext, cfg *domain.Config) []domain.RankedStub {
	ranked := make([]domain.RankedStub, len(stubs))
	for i := range stubs {
		ranked[i] = domain.RankedStub{
			Index:   i,
			Stub:    stubs[i],
			Physics: VectorPhysics(stubs[i], ctx, cfg),
		}
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].Physics.Magnitude > ranked[b].Physics.Magnitude
	})
	return ranked
}

// Summarize counts stubs by form and vector family.
func Summarize(stubs []domain.Stub) domain.StubSummary {
	sum := domain.StubSummary{
		Total:    len(stubs),
		ByForm:   make(map[domain.StubForm]int),
		ByFamily: make(map[domain.VectorFamily]int),
	}
	for i := range stubs {
		sum.ByForm[stubs[i].Form]++
		sum.ByFamily[stubs[i].Family()]++
		if stubs[i].IsBlocking() {
			sum.Blocking++
		}
	}
	return sum
}
