package mcp

import (
	"github.com/custodia-labs/doc-doctor/internal/core/ports/driving"
)

// Ports aggregates the driving ports required by the MCP server.
type Ports struct {
	// Switchboard provides every document operation.
	Switchboard driving.Switchboard
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Switchboard == nil {
		return ErrMissingSwitchboard
	}
	return nil
}
