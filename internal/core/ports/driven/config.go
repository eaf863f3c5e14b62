package driven

import "github.com/custodia-labs/doc-doctor/internal/core/domain"

// ConfigProvider exposes the validated scoring configuration.
// Implementations handle discovery and layering of configuration files.
type ConfigProvider interface {
	// Config returns the configuration. The value must not be modified.
	Config() *domain.Config

	// UsingDefaults reports whether loading fell back to built-in defaults.
	UsingDefaults() bool
}
