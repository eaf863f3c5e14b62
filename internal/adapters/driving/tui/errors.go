package tui

import "errors"

// ErrMissingSwitchboard is returned when the switchboard is not provided.
var ErrMissingSwitchboard = errors.New("tui: switchboard is required")

// ErrMissingStore is returned when the document store is not provided.
var ErrMissingStore = errors.New("tui: document store is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
