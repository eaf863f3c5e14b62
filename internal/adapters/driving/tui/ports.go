// Package tui provides an interactive stub browser for one document.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/doc-doctor/internal/core/ports/driving"
)

// Ports aggregates everything the TUI needs.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Switchboard provides parsing, scoring and stub editing.
	Switchboard driving.Switchboard

	// Store reads and writes the document being browsed.
	Store DocumentStore
}

// NewPorts creates a new Ports aggregate.
func NewPorts(sb driving.Switchboard, store DocumentStore) *Ports {
	return &Ports{
		Switchboard: sb,
		Store:       store,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Switchboard == nil {
		return ErrMissingSwitchboard
	}
	if p.Store == nil {
		return ErrMissingStore
	}
	return nil
}
