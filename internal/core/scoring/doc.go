// Package scoring computes document and stub scores from metadata.
//
// Every function is pure: it reads its arguments and a *domain.Config
// and returns a value. Nothing here performs I/O, returns errors, or
// keeps state, so the functions may be called from any goroutine.
package scoring
