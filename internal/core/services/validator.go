package services

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/doc-doctor/internal/core/domain"
)

// ValidateDocument checks text and classifies findings. The document is
// parsed tolerantly so that every range and enumeration problem is
// reported at once. Strict mode turns unknown fields into errors.
func (s *Switchboard) ValidateDocument(text string, strict bool) *domain.ValidationResult {
	res := &domain.ValidationResult{
		Errors:   []domain.Diagnostic{},
		Warnings: []domain.Diagnostic{},
	}

	doc, err := s.parser.Parse(text, domain.ParseOptions{Tolerant: true})
	if err != nil {
		de, _ := domain.AsError(toDomainError(err))
		d := domain.DiagnosticFromError(de, domain.SeverityError)
		d.Field = domain.PointerPath(d.Field)
		res.Errors = append(res.Errors, d)
		return res
	}

	failed := make(map[string]bool)
	for _, d := range doc.Diagnostics {
		d.Field = domain.PointerPath(d.Field)
		if strict && d.Code == domain.CodeOf(domain.ErrUnknownField) {
			d.Severity = domain.SeverityError
		}
		if d.Severity == domain.SeverityError {
			failed[d.Field] = true
			res.Errors = append(res.Errors, d)
		} else {
			res.Warnings = append(res.Warnings, d)
		}
	}

	p := doc.Properties
	rangeCheck := func(field string, v float64) {
		if !failed[field] && !domain.InUnitRange(v) {
			failed[field] = true
			res.Errors = append(res.Errors, domain.Diagnostic{
				Severity:   domain.SeverityError,
				Code:       domain.CodeOf(domain.ErrOutOfRange),
				Message:    fmt.Sprintf("%v out of range [0, 1]", v),
				Field:      field,
				Suggestion: "use a number between 0.0 and 1.0",
			})
		}
	}

	rangeCheck("/refinement", p.Refinement.Float64())
	for i, stub := range p.Stubs {
		for _, q := range []struct {
			name  string
			value *domain.Unit
		}{
			{"urgency", stub.Urgency},
			{"impact", stub.Impact},
			{"complexity", stub.Complexity},
		} {
			if q.value != nil {
				rangeCheck(fmt.Sprintf("/stubs/%d/%s", i, q.name), q.value.Float64())
			}
		}
	}

	if strings.TrimSpace(p.Title) == "" {
		res.Warnings = append(res.Warnings, missing("/title", "missing title", "add a title so the note can be found"))
	}
	if p.Refinement == 0 && !failed["/refinement"] {
		res.Warnings = append(res.Warnings, domain.Diagnostic{
			Severity:   domain.SeverityWarning,
			Code:       "default_refinement",
			Message:    "refinement is 0 (default; set an explicit value)",
			Field:      "/refinement",
			Suggestion: "set refinement to a value between 0.0 and 1.0 that reflects how polished the note is",
		})
	}
	for i, stub := range p.Stubs {
		if strings.TrimSpace(stub.Description) == "" {
			res.Warnings = append(res.Warnings, missing(
				fmt.Sprintf("/stubs/%d/description", i),
				fmt.Sprintf("stub %d (%s) has no description", i, stub.Type),
				"describe what is missing so the stub can be acted on",
			))
		}
	}

	res.IsValid = len(res.Errors) == 0
	return res
}

func missing(field, message, suggestion string) domain.Diagnostic {
	return domain.Diagnostic{
		Severity:   domain.SeverityWarning,
		Code:       domain.CodeOf(domain.ErrMissingField),
		Message:    message,
		Field:      field,
		Suggestion: suggestion,
	}
}
