package domain

// Form is the permanence intent of a document.
// Each form carries a staleness half-life supplied by configuration.
type Form string

// Available forms, from shortest- to longest-lived.
const (
	FormTransient  Form = "transient"
	FormDeveloping Form = "developing"
	FormStable     Form = "stable"
	FormEvergreen  Form = "evergreen"
	FormCanonical  Form = "canonical"
)

// DefaultForm is used when the header omits form.
const DefaultForm = FormDeveloping

// AllForms returns every form.
func AllForms() []Form {
	return []Form{FormTransient, FormDeveloping, FormStable, FormEvergreen, FormCanonical}
}

// ParseForm maps text to a Form, ignoring case.
func ParseForm(s string) (Form, error) {
	f := Form(normaliseEnum(s))
	if !f.IsValid() {
		return "", enumError("form", s, toStrings(AllForms()))
	}
	return f, nil
}

// IsValid returns true if the form is recognised.
func (f Form) IsValid() bool {
	switch f {
	case FormTransient, FormDeveloping, FormStable, FormEvergreen, FormCanonical:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f Form) String() string {
	return string(f)
}
