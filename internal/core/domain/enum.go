package domain

import "strings"

// normaliseEnum maps external text to the serialised enum form:
// lowercase, with hyphens and spaces folded to underscores.
func normaliseEnum(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "_")
	return strings.ReplaceAll(s, " ", "_")
}

// enumError reports text that maps to no variant, listing the valid ones.
func enumError(name, value string, valid []string) *Error {
	e := NewError(KindValidation, ErrInvalidEnumValue,
		"invalid %s %q (valid: %s)", name, value, strings.Join(valid, ", "))
	e.Suggestion = "use one of: " + strings.Join(valid, ", ")
	return e
}

func toStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
