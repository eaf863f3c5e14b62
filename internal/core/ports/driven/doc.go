// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - DocumentParser: Locates and decodes the metadata header
//   - DocumentWriter: Re-emits the header into an existing document
//   - SchemaProvider: Supplies the embedded JSON schemas
//
// # Optional Interfaces
//
// These can be nil - the switchboard falls back to built-in defaults:
//
//   - ConfigProvider: The process-wide scoring configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
