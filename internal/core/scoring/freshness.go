package scoring

import (
	"math"
	"time"

	"github.com/custodia-labs/doc-doctor/internal/core/domain"
)

// decayConstant approximates ln 2.
const decayConstant = 0.693

// Freshness decays from 1.0 with the half-life of form.
// A nil timestamp, a never-stale form, a non-positive half-life, or a
// timestamp at or after now all yield 1.0.
func Freshness(modified *time.Time, form domain.Form, now time.Time, cfg *domain.Config) float64 {
	hl := cfg.HalfLives.For(form)
	if modified == nil || hl.Never || hl.Days <= 0 || !now.After(*modified) {
		return 1.0
	}
	days := math.Floor(now.Sub(*modified).Hours() / 24)
	return math.Exp(-decayConstant * days / float64(hl.Days))
}

// Dimensions bundles every per-document score.
func Dimensions(p domain.Properties, now time.Time, cfg *domain.Config) domain.StateDimensions {
	return domain.StateDimensions{
		Health:        Health(p.Refinement, p.Stubs, cfg).Score,
		Usefulness:    Usefulness(p.Refinement, p.Audience, cfg),
		Trust:         Trust(p.Origin, cfg),
		Freshness:     Freshness(p.LastTouched(), p.Form, now, cfg),
		ComplianceFit: 1.0,
		CoverageFit:   1.0,
	}
}
