package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/doc-doctor/internal/core/domain"
)

// Format is a starter file format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ErrExists is returned when a starter file would overwrite a file.
var ErrExists = errors.New("configuration file already exists")

// ParseFormat reads "yaml", "yml" or "toml".
func ParseFormat(s string) (Format, error) {
	switch s {
	case "", "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported config format %q (use yaml or toml)", s)
	}
}

// StarterPath returns where `config init` writes: the project file in dir,
// or the user file.
func StarterPath(project bool, dir string, format Format) (string, error) {
	name := UserFileName + "." + string(format)
	if project {
		return filepath.Join(dir, ProjectFileName+"."+string(format)), nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config directory: %w", err)
	}
	return filepath.Join(base, AppDir, name), nil
}

// WriteStarter writes cfg to path in the given format. It never overwrites.
func WriteStarter(path string, format Format, cfg *domain.Config) error {
	if cfg == nil {
		cfg = domain.DefaultConfig()
	}
	data, err := marshalStarter(format, cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%s: %w", path, ErrExists)
		}
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// starterFile mirrors the file layout; half-lives hold a day count or "never".
type starterFile struct {
	Health struct {
		RefinementWeight float64 `yaml:"refinement_weight" toml:"refinement_weight"`
		StubWeight       float64 `yaml:"stub_weight" toml:"stub_weight"`
	} `yaml:"health" toml:"health"`
	Gates struct {
		Personal float64 `yaml:"personal" toml:"personal"`
		Internal float64 `yaml:"internal" toml:"internal"`
		Trusted  float64 `yaml:"trusted" toml:"trusted"`
		Public   float64 `yaml:"public" toml:"public"`
	} `yaml:"gates" toml:"gates"`
	StubPenalties struct {
		Transient  float64 `yaml:"transient" toml:"transient"`
		Persistent float64 `yaml:"persistent" toml:"persistent"`
		Blocking   float64 `yaml:"blocking" toml:"blocking"`
		Structural float64 `yaml:"structural" toml:"structural"`
	} `yaml:"stub_penalties" toml:"stub_penalties"`
	Trust struct {
		Human         float64 `yaml:"human" toml:"human"`
		Collaborative float64 `yaml:"collaborative" toml:"collaborative"`
		AIAssisted    float64 `yaml:"ai_assisted" toml:"ai_assisted"`
		Imported      float64 `yaml:"imported" toml:"imported"`
		Derived       float64 `yaml:"derived" toml:"derived"`
		AI            float64 `yaml:"ai" toml:"ai"`
	} `yaml:"trust" toml:"trust"`
	HalfLives struct {
		Transient  any `yaml:"transient" toml:"transient"`
		Developing any `yaml:"developing" toml:"developing"`
		Stable     any `yaml:"stable" toml:"stable"`
		Evergreen  any `yaml:"evergreen" toml:"evergreen"`
		Canonical  any `yaml:"canonical" toml:"canonical"`
	} `yaml:"half_lives" toml:"half_lives"`
	Vector struct {
		DefaultUrgency    *float64 `yaml:"default_urgency,omitempty" toml:"default_urgency,omitempty"`
		DefaultImpact     float64  `yaml:"default_impact" toml:"default_impact"`
		DefaultComplexity float64  `yaml:"default_complexity" toml:"default_complexity"`
	} `yaml:"vector" toml:"vector"`
}

func marshalStarter(format Format, cfg *domain.Config) ([]byte, error) {
	var sf starterFile
	sf.Health.RefinementWeight = cfg.Health.Refinement
	sf.Health.StubWeight = cfg.Health.Stubs
	sf.Gates.Personal = cfg.Gates.Personal
	sf.Gates.Internal = cfg.Gates.Internal
	sf.Gates.Trusted = cfg.Gates.Trusted
	sf.Gates.Public = cfg.Gates.Public
	sf.StubPenalties.Transient = cfg.StubPenalties.Transient
	sf.StubPenalties.Persistent = cfg.StubPenalties.Persistent
	sf.StubPenalties.Blocking = cfg.StubPenalties.Blocking
	sf.StubPenalties.Structural = cfg.StubPenalties.Structural
	sf.Trust.Human = cfg.Trust.Human
	sf.Trust.Collaborative = cfg.Trust.Collaborative
	sf.Trust.AIAssisted = cfg.Trust.AIAssisted
	sf.Trust.Imported = cfg.Trust.Imported
	sf.Trust.Derived = cfg.Trust.Derived
	sf.Trust.AI = cfg.Trust.AI
	sf.HalfLives.Transient = halfLifeValue(cfg.HalfLives.Transient)
	sf.HalfLives.Developing = halfLifeValue(cfg.HalfLives.Developing)
	sf.HalfLives.Stable = halfLifeValue(cfg.HalfLives.Stable)
	sf.HalfLives.Evergreen = halfLifeValue(cfg.HalfLives.Evergreen)
	sf.HalfLives.Canonical = halfLifeValue(cfg.HalfLives.Canonical)
	sf.Vector.DefaultUrgency = cfg.Vector.DefaultUrgency
	sf.Vector.DefaultImpact = cfg.Vector.DefaultImpact
	sf.Vector.DefaultComplexity = cfg.Vector.DefaultComplexity

	var (
		data []byte
		err  error
	)
	switch format {
	case FormatTOML:
		data, err = toml.Marshal(sf)
	case FormatYAML:
		data, err = yaml.Marshal(sf)
	default:
		return nil, fmt.Errorf("unsupported config format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("encoding %s starter: %w", format, err)
	}
	return data, nil
}

func halfLifeValue(h domain.HalfLife) any {
	if h.Never {
		return "never"
	}
	return h.Days
}
