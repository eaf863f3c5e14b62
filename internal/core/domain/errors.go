package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors represent analysis and editing failures.
// They are wrapped by Error, so errors.Is works on any returned error.
var (
	// ErrNoFrontmatter indicates the document does not open with a header fence.
	ErrNoFrontmatter = errors.New("no frontmatter")

	// ErrInvalidDelimiters indicates an opening fence without a closing one.
	ErrInvalidDelimiters = errors.New("invalid frontmatter delimiters")

	// ErrYAMLSyntax indicates the header body could not be parsed.
	ErrYAMLSyntax = errors.New("yaml syntax error")

	// ErrTypeMismatch indicates a header value has the wrong shape.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrUnknownField indicates a key outside the closed field set.
	ErrUnknownField = errors.New("unknown field")

	// ErrOutOfRange indicates a numeric value outside [0.0, 1.0].
	ErrOutOfRange = errors.New("value out of range")

	// ErrInvalidEnumValue indicates text that maps to no enumeration variant.
	ErrInvalidEnumValue = errors.New("invalid enum value")

	// ErrMissingField indicates a recommended field is absent.
	ErrMissingField = errors.New("missing field")

	// ErrStubIndexOutOfRange indicates a stub index beyond the stub list.
	ErrStubIndexOutOfRange = errors.New("stub index out of range")

	// ErrInvalidConfig indicates a configuration layer failed validation.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrSerialize indicates the header could not be re-emitted.
	ErrSerialize = errors.New("serialization failed")
)

// ErrorKind is the front-end-visible classification of an Error.
type ErrorKind string

// The closed error taxonomy.
const (
	// KindParse covers header extraction and inner parse failures.
	KindParse ErrorKind = "parse"

	// KindSerialize covers re-emission failures.
	KindSerialize ErrorKind = "serialize"

	// KindValidation covers range, enumeration and missing-field failures.
	KindValidation ErrorKind = "validation"

	// KindStubOperation covers precondition failures on stub edits.
	KindStubOperation ErrorKind = "stub_operation"

	// KindOperation wraps any other lower-level failure.
	KindOperation ErrorKind = "operation"
)

// Position locates a finding in the full document text.
// Line and Column are 1-indexed; Column counts bytes.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
	Offset int `json:"offset"`
}

// String returns "line L, column C".
func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// Error is the structured error returned across the switchboard boundary.
type Error struct {
	// Kind is the taxonomy bucket.
	Kind ErrorKind

	// Err is the sentinel describing the failure mode.
	Err error

	// Message is a human-readable description.
	Message string

	// Position is the source location, when known.
	Position *Position

	// Field is the offending field path, e.g. "stubs[2].urgency".
	Field string

	// Snippet is roughly 30 characters of source around Position.
	Snippet string

	// Suggestion is an optional actionable hint.
	Suggestion string

	// Expected and Actual name the types involved in a type mismatch.
	Expected string
	Actual   string
}

// Error returns "<kind> error at line L, column C: message".
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Kind))
	b.WriteString(" error")
	if e.Position != nil {
		b.WriteString(" at ")
		b.WriteString(e.Position.String())
	}
	b.WriteString(": ")
	switch {
	case e.Message != "":
		b.WriteString(e.Message)
	case e.Err != nil:
		b.WriteString(e.Err.Error())
	default:
		b.WriteString("unknown error")
	}
	return b.String()
}

// Unwrap returns the sentinel for use with errors.Is.
func (e *Error) Unwrap() error {
	return e.Err
}

// Code returns a stable machine-readable code derived from the sentinel.
func (e *Error) Code() string {
	return CodeOf(e.Err)
}

// NewError builds an Error with the given kind, sentinel and message.
func NewError(kind ErrorKind, sentinel error, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Err:     sentinel,
		Message: fmt.Sprintf(format, args...),
	}
}

// AsError extracts an *Error from err's chain.
func AsError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// CodeOf maps a sentinel to its snake_case code.
func CodeOf(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNoFrontmatter):
		return "no_frontmatter"
	case errors.Is(err, ErrInvalidDelimiters):
		return "invalid_delimiters"
	case errors.Is(err, ErrYAMLSyntax):
		return "yaml_syntax"
	case errors.Is(err, ErrTypeMismatch):
		return "type_mismatch"
	case errors.Is(err, ErrUnknownField):
		return "unknown_field"
	case errors.Is(err, ErrOutOfRange):
		return "out_of_range"
	case errors.Is(err, ErrInvalidEnumValue):
		return "invalid_enum_value"
	case errors.Is(err, ErrMissingField):
		return "missing_field"
	case errors.Is(err, ErrStubIndexOutOfRange):
		return "stub_index_out_of_range"
	case errors.Is(err, ErrInvalidConfig):
		return "invalid_config"
	case errors.Is(err, ErrSerialize):
		return "serialize_failed"
	default:
		return "operation_failed"
	}
}
