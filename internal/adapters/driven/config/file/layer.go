package file

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/custodia-labs/doc-doctor/internal/core/domain"
)

// fileConfig is one configuration layer. Nil fields are absent from the
// file and keep the value of the layer below.
type fileConfig struct {
	Health        *healthSection   `mapstructure:"health"`
	Gates         *gatesSection    `mapstructure:"gates"`
	StubPenalties *penaltySection  `mapstructure:"stub_penalties"`
	Trust         *trustSection    `mapstructure:"trust"`
	HalfLives     *halfLifeSection `mapstructure:"half_lives"`
	Vector        *vectorSection   `mapstructure:"vector"`
}

type healthSection struct {
	RefinementWeight *float64 `mapstructure:"refinement_weight"`
	StubWeight       *float64 `mapstructure:"stub_weight"`
}

type gatesSection struct {
	Personal *float64 `mapstructure:"personal"`
	Internal *float64 `mapstructure:"internal"`
	Trusted  *float64 `mapstructure:"trusted"`
	Public   *float64 `mapstructure:"public"`
}

type penaltySection struct {
	Transient  *float64 `mapstructure:"transient"`
	Persistent *float64 `mapstructure:"persistent"`
	Blocking   *float64 `mapstructure:"blocking"`
	Structural *float64 `mapstructure:"structural"`
}

type trustSection struct {
	Human         *float64 `mapstructure:"human"`
	Collaborative *float64 `mapstructure:"collaborative"`
	AIAssisted    *float64 `mapstructure:"ai_assisted"`
	Imported      *float64 `mapstructure:"imported"`
	Derived       *float64 `mapstructure:"derived"`
	AI            *float64 `mapstructure:"ai"`
}

// halfLifeSection holds day counts or "never"; numbers decode as text.
type halfLifeSection struct {
	Transient  *string `mapstructure:"transient"`
	Developing *string `mapstructure:"developing"`
	Stable     *string `mapstructure:"stable"`
	Evergreen  *string `mapstructure:"evergreen"`
	Canonical  *string `mapstructure:"canonical"`
}

type vectorSection struct {
	DefaultUrgency    *float64 `mapstructure:"default_urgency"`
	DefaultImpact     *float64 `mapstructure:"default_impact"`
	DefaultComplexity *float64 `mapstructure:"default_complexity"`
}

// readLayer decodes the configuration file v has located.
func readLayer(v *viper.Viper) (*fileConfig, error) {
	var fc fileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", v.ConfigFileUsed(), err)
	}
	return &fc, nil
}

// apply returns a copy of base with the layer's fields written over it.
func (fc *fileConfig) apply(base *domain.Config) (*domain.Config, error) {
	c := base.Clone()

	if h := fc.Health; h != nil {
		set(&c.Health.Refinement, h.RefinementWeight)
		set(&c.Health.Stubs, h.StubWeight)
	}
	if g := fc.Gates; g != nil {
		set(&c.Gates.Personal, g.Personal)
		set(&c.Gates.Internal, g.Internal)
		set(&c.Gates.Trusted, g.Trusted)
		set(&c.Gates.Public, g.Public)
	}
	if p := fc.StubPenalties; p != nil {
		set(&c.StubPenalties.Transient, p.Transient)
		set(&c.StubPenalties.Persistent, p.Persistent)
		set(&c.StubPenalties.Blocking, p.Blocking)
		set(&c.StubPenalties.Structural, p.Structural)
	}
	if t := fc.Trust; t != nil {
		set(&c.Trust.Human, t.Human)
		set(&c.Trust.Collaborative, t.Collaborative)
		set(&c.Trust.AIAssisted, t.AIAssisted)
		set(&c.Trust.Imported, t.Imported)
		set(&c.Trust.Derived, t.Derived)
		set(&c.Trust.AI, t.AI)
	}
	if hl := fc.HalfLives; hl != nil {
		for _, f := range []struct {
			name string
			src  *string
			dst  *domain.HalfLife
		}{
			{"transient", hl.Transient, &c.HalfLives.Transient},
			{"developing", hl.Developing, &c.HalfLives.Developing},
			{"stable", hl.Stable, &c.HalfLives.Stable},
			{"evergreen", hl.Evergreen, &c.HalfLives.Evergreen},
			{"canonical", hl.Canonical, &c.HalfLives.Canonical},
		} {
			if f.src == nil {
				continue
			}
			parsed, err := domain.ParseHalfLife(*f.src)
			if err != nil {
				e := domain.NewError(domain.KindValidation, domain.ErrInvalidConfig,
					"half_lives.%s: %v", f.name, err)
				e.Field = "half_lives." + f.name
				return nil, e
			}
			*f.dst = parsed
		}
	}
	if v := fc.Vector; v != nil {
		if v.DefaultUrgency != nil {
			u := *v.DefaultUrgency
			c.Vector.DefaultUrgency = &u
		}
		set(&c.Vector.DefaultImpact, v.DefaultImpact)
		set(&c.Vector.DefaultComplexity, v.DefaultComplexity)
	}
	return c, nil
}

func set(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
