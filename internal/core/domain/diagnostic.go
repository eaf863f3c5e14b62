package domain

import (
	"strconv"
	"strings"
)

// Severity separates hard findings from soft ones.
type Severity string

// Available severities.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Diagnostic is one finding about a document.
type Diagnostic struct {
	Severity   Severity  `json:"severity"`
	Code       string    `json:"code"`
	Message    string    `json:"message"`
	Field      string    `json:"field,omitempty"`
	Position   *Position `json:"position,omitempty"`
	Suggestion string    `json:"suggestion,omitempty"`
}

// DiagnosticFromError converts an Error into a diagnostic of the given severity.
func DiagnosticFromError(e *Error, sev Severity) Diagnostic {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	return Diagnostic{
		Severity:   sev,
		Code:       e.Code(),
		Message:    msg,
		Field:      e.Field,
		Position:   e.Position,
		Suggestion: e.Suggestion,
	}
}

// ValidationResult is the outcome of validating a document.
// It is returned even when the document is invalid.
type ValidationResult struct {
	IsValid  bool         `json:"is_valid"`
	Errors   []Diagnostic `json:"errors"`
	Warnings []Diagnostic `json:"warnings"`
}

// PointerPath converts a codec field path into a JSON pointer:
// "stubs[2].urgency" → "/stubs/2/urgency".
func PointerPath(field string) string {
	if field == "" || strings.HasPrefix(field, "/") {
		return field
	}
	var b strings.Builder
	for _, part := range strings.Split(field, ".") {
		name, rest, _ := strings.Cut(part, "[")
		if name != "" {
			b.WriteString("/")
			b.WriteString(name)
		}
		for rest != "" {
			idx, after, ok := strings.Cut(rest, "]")
			if !ok {
				break
			}
			if _, err := strconv.Atoi(idx); err == nil {
				b.WriteString("/")
				b.WriteString(idx)
			}
			rest = strings.TrimPrefix(after, "[")
		}
	}
	return b.String()
}

func filterSeverity(diags []Diagnostic, sev Severity) []Diagnostic {
	var out []Diagnostic
	for _, d := range diags {
		if d.Severity == sev {
			out = append(out, d)
		}
	}
	return out
}
