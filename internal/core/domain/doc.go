// Package domain defines the core business entities for Doc-Doctor.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Properties: The structured header of one document
//   - Stub: One editorial demand attached to a document
//   - Unit: A value clamped or checked to [0.0, 1.0]
//   - Config: The validated parameter set for every scoring function
//   - Error: The closed, front-end-visible error taxonomy
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
