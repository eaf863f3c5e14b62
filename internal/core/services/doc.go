// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Services are pure Go with no I/O of their own: documents arrive as
// text, leave as text, and every call is safe for concurrent use.
package services
