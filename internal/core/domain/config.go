package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// WeightSumTolerance is how far the health weights may drift from 1.0.
const WeightSumTolerance = 1e-3

// HealthWeights combine refinement and stub burden into health.
type HealthWeights struct {
	Refinement float64 `json:"refinement_weight"`
	Stubs      float64 `json:"stub_weight"`
}

// Gates hold the minimum refinement at which a document is useful, per audience.
type Gates struct {
	Personal float64 `json:"personal"`
	Internal float64 `json:"internal"`
	Trusted  float64 `json:"trusted"`
	Public   float64 `json:"public"`
}

// For returns the gate of audience a. Unknown audiences get the public gate.
func (g Gates) For(a Audience) float64 {
	switch a {
	case AudiencePersonal:
		return g.Personal
	case AudienceInternal:
		return g.Internal
	case AudienceTrusted:
		return g.Trusted
	default:
		return g.Public
	}
}

// StubPenalties hold the health penalty of each stub form.
type StubPenalties struct {
	Transient  float64 `json:"transient"`
	Persistent float64 `json:"persistent"`
	Blocking   float64 `json:"blocking"`
	Structural float64 `json:"structural"`
}

// For returns the penalty of form f. Unknown forms get the transient penalty.
func (p StubPenalties) For(f StubForm) float64 {
	switch f {
	case StubFormPersistent:
		return p.Persistent
	case StubFormBlocking:
		return p.Blocking
	case StubFormStructural:
		return p.Structural
	default:
		return p.Transient
	}
}

// TrustFactors hold the trust score of each origin.
type TrustFactors struct {
	Human         float64 `json:"human"`
	Collaborative float64 `json:"collaborative"`
	AIAssisted    float64 `json:"ai_assisted"`
	Imported      float64 `json:"imported"`
	Derived       float64 `json:"derived"`
	AI            float64 `json:"ai"`
}

// For returns the trust factor of origin o. Unknown origins get the ai factor.
func (t TrustFactors) For(o Origin) float64 {
	switch o {
	case OriginHuman:
		return t.Human
	case OriginCollaborative:
		return t.Collaborative
	case OriginAIAssisted:
		return t.AIAssisted
	case OriginImported:
		return t.Imported
	case OriginDerived:
		return t.Derived
	default:
		return t.AI
	}
}

// HalfLife is a staleness half-life in days, or never stale.
type HalfLife struct {
	Days  int
	Never bool
}

// HalfLifeDays returns a finite half-life.
func HalfLifeDays(days int) HalfLife {
	return HalfLife{Days: days}
}

// NeverStale returns the unbounded half-life.
func NeverStale() HalfLife {
	return HalfLife{Never: true}
}

// ParseHalfLife reads "never" (or "infinite", "∞") or a positive day count.
func ParseHalfLife(s string) (HalfLife, error) {
	switch normaliseEnum(s) {
	case "never", "infinite", "infinity", "unbounded", "∞":
		return NeverStale(), nil
	}
	days, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return HalfLife{}, fmt.Errorf("half-life %q is neither a day count nor \"never\"", s)
	}
	return HalfLifeDays(days), nil
}

// String returns the day count or "never".
func (h HalfLife) String() string {
	if h.Never {
		return "never"
	}
	return strconv.Itoa(h.Days)
}

// MarshalJSON encodes a day count as a number and never-stale as "never".
func (h HalfLife) MarshalJSON() ([]byte, error) {
	if h.Never {
		return json.Marshal("never")
	}
	return json.Marshal(h.Days)
}

// UnmarshalJSON accepts a number or a string.
func (h *HalfLife) UnmarshalJSON(data []byte) error {
	var days int
	if err := json.Unmarshal(data, &days); err == nil {
		*h = HalfLifeDays(days)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseHalfLife(s)
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// HalfLives hold the staleness half-life of each form.
type HalfLives struct {
	Transient  HalfLife `json:"transient"`
	Developing HalfLife `json:"developing"`
	Stable     HalfLife `json:"stable"`
	Evergreen  HalfLife `json:"evergreen"`
	Canonical  HalfLife `json:"canonical"`
}

// For returns the half-life of form f. Unknown forms get the developing half-life.
func (h HalfLives) For(f Form) HalfLife {
	switch f {
	case FormTransient:
		return h.Transient
	case FormStable:
		return h.Stable
	case FormEvergreen:
		return h.Evergreen
	case FormCanonical:
		return h.Canonical
	default:
		return h.Developing
	}
}

// VectorDefaults fill stub quantities the stub does not set.
type VectorDefaults struct {
	// DefaultUrgency, when set, takes precedence over priority-derived urgency.
	DefaultUrgency    *float64 `json:"default_urgency,omitempty"`
	DefaultImpact     float64  `json:"default_impact"`
	DefaultComplexity float64  `json:"default_complexity"`
}

// Config parameterises every scoring function.
// It is loaded once per process and treated as immutable thereafter.
type Config struct {
	Health        HealthWeights  `json:"health"`
	Gates         Gates          `json:"gates"`
	StubPenalties StubPenalties  `json:"stub_penalties"`
	Trust         TrustFactors   `json:"trust"`
	HalfLives     HalfLives      `json:"half_lives"`
	Vector        VectorDefaults `json:"vector"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Health: HealthWeights{Refinement: 0.7, Stubs: 0.3},
		Gates: Gates{
			Personal: 0.50,
			Internal: 0.70,
			Trusted:  0.80,
			Public:   0.90,
		},
		StubPenalties: StubPenalties{
			Transient:  0.02,
			Persistent: 0.05,
			Blocking:   0.10,
			Structural: 0.15,
		},
		Trust: TrustFactors{
			Human:         0.90,
			Collaborative: 0.85,
			AIAssisted:    0.70,
			Imported:      0.60,
			Derived:       0.60,
			AI:            0.50,
		},
		HalfLives: HalfLives{
			Transient:  HalfLifeDays(7),
			Developing: HalfLifeDays(30),
			Stable:     HalfLifeDays(90),
			Evergreen:  HalfLifeDays(365),
			Canonical:  NeverStale(),
		},
		Vector: VectorDefaults{
			DefaultImpact:     0.5,
			DefaultComplexity: 0.5,
		},
	}
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	out := *c
	if c.Vector.DefaultUrgency != nil {
		u := *c.Vector.DefaultUrgency
		out.Vector.DefaultUrgency = &u
	}
	return &out
}

// Validate checks ranges, gate order, weight sum and half-lives.
// All violations are returned joined.
func (c *Config) Validate() error {
	var errs []error
	check := func(field string, v float64) {
		if !InUnitRange(v) {
			errs = append(errs, configError(field, "%s = %v out of range [0, 1]", field, v))
		}
	}

	check("health.refinement_weight", c.Health.Refinement)
	check("health.stub_weight", c.Health.Stubs)
	if sum := c.Health.Refinement + c.Health.Stubs; math.Abs(sum-1) >= WeightSumTolerance {
		errs = append(errs, configError("health",
			"health weights sum to %v, want 1.0", sum))
	}

	check("gates.personal", c.Gates.Personal)
	check("gates.internal", c.Gates.Internal)
	check("gates.trusted", c.Gates.Trusted)
	check("gates.public", c.Gates.Public)
	if !(c.Gates.Personal <= c.Gates.Internal &&
		c.Gates.Internal <= c.Gates.Trusted &&
		c.Gates.Trusted <= c.Gates.Public) {
		errs = append(errs, configError("gates",
			"gates must satisfy personal <= internal <= trusted <= public (got %v, %v, %v, %v)",
			c.Gates.Personal, c.Gates.Internal, c.Gates.Trusted, c.Gates.Public))
	}

	check("stub_penalties.transient", c.StubPenalties.Transient)
	check("stub_penalties.persistent", c.StubPenalties.Persistent)
	check("stub_penalties.blocking", c.StubPenalties.Blocking)
	check("stub_penalties.structural", c.StubPenalties.Structural)

	check("trust.human", c.Trust.Human)
	check("trust.collaborative", c.Trust.Collaborative)
	check("trust.ai_assisted", c.Trust.AIAssisted)
	check("trust.imported", c.Trust.Imported)
	check("trust.derived", c.Trust.Derived)
	check("trust.ai", c.Trust.AI)

	for _, hl := range []struct {
		field string
		value HalfLife
	}{
		{"half_lives.transient", c.HalfLives.Transient},
		{"half_lives.developing", c.HalfLives.Developing},
		{"half_lives.stable", c.HalfLives.Stable},
		{"half_lives.evergreen", c.HalfLives.Evergreen},
		{"half_lives.canonical", c.HalfLives.Canonical},
	} {
		if !hl.value.Never && hl.value.Days <= 0 {
			errs = append(errs, configError(hl.field,
				"%s = %d must be a positive day count or \"never\"", hl.field, hl.value.Days))
		}
	}

	if c.Vector.DefaultUrgency != nil {
		check("vector.default_urgency", *c.Vector.DefaultUrgency)
	}
	check("vector.default_impact", c.Vector.DefaultImpact)
	check("vector.default_complexity", c.Vector.DefaultComplexity)

	return errors.Join(errs...)
}

func configError(field, format string, args ...any) *Error {
	e := NewError(KindValidation, ErrInvalidConfig, format, args...)
	e.Field = field
	return e
}
