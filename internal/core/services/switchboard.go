package services

import (
	"time"

	"github.com/custodia-labs/doc-doctor/internal/core/domain"
	"github.com/custodia-labs/doc-doctor/internal/core/ports/driven"
	"github.com/custodia-labs/doc-doctor/internal/core/ports/driving"
)

// Ensure Switchboard implements the interface.
var _ driving.Switchboard = (*Switchboard)(nil)

// Switchboard aggregates the codec, scoring, editing and validation
// behind the single driving.Switchboard contract.
type Switchboard struct {
	parser  driven.DocumentParser
	writer  driven.DocumentWriter
	schemas driven.SchemaProvider
	config  driven.ConfigProvider
	now     func() time.Time
}

// NewSwitchboard creates a switchboard.
// The config parameter is optional (can be nil); built-in defaults are used then.
func NewSwitchboard(
	parser driven.DocumentParser,
	writer driven.DocumentWriter,
	schemas driven.SchemaProvider,
	config driven.ConfigProvider,
) *Switchboard {
	if config == nil {
		config = StaticConfig(nil)
	}
	return &Switchboard{
		parser:  parser,
		writer:  writer,
		schemas: schemas,
		config:  config,
		now:     time.Now,
	}
}

// SetClock replaces the time source used for freshness and stamping.
// It must be called before the switchboard is shared.
func (s *Switchboard) SetClock(now func() time.Time) {
	s.now = now
}

// Config returns the configuration in effect.
func (s *Switchboard) Config() *domain.Config {
	return s.config.Config()
}

// UsingDefaults reports whether configuration fell back to defaults.
func (s *Switchboard) UsingDefaults() bool {
	return s.config.UsingDefaults()
}

// FrontmatterSchema returns the header JSON schema.
func (s *Switchboard) FrontmatterSchema() string {
	return s.schemas.FrontmatterSchema()
}

// StubsSchema returns the stub JSON schema.
func (s *Switchboard) StubsSchema() string {
	return s.schemas.StubsSchema()
}

// staticConfig serves a fixed configuration.
type staticConfig struct {
	cfg *domain.Config
}

// StaticConfig wraps a configuration value as a driven.ConfigProvider.
// A nil cfg yields the built-in defaults.
func StaticConfig(cfg *domain.Config) driven.ConfigProvider {
	if cfg == nil {
		cfg = domain.DefaultConfig()
	}
	return staticConfig{cfg: cfg}
}

func (c staticConfig) Config() *domain.Config { return c.cfg }

func (c staticConfig) UsingDefaults() bool { return false }
