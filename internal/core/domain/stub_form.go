package domain

// StubForm is the lifecycle classification of a stub.
// It determines the stub's health penalty.
type StubForm string

// Available stub forms.
const (
	StubFormTransient  StubForm = "transient"
	StubFormPersistent StubForm = "persistent"
	StubFormBlocking   StubForm = "blocking"
	StubFormStructural StubForm = "structural"
)

// DefaultStubForm is used when a stub omits stub_form.
const DefaultStubForm = StubFormTransient

// AllStubForms returns every stub form.
func AllStubForms() []StubForm {
	return []StubForm{StubFormTransient, StubFormPersistent, StubFormBlocking, StubFormStructural}
}

// ParseStubForm maps text to a StubForm, ignoring case.
func ParseStubForm(s string) (StubForm, error) {
	f := StubForm(normaliseEnum(s))
	if !f.IsValid() {
		return "", enumError("stub_form", s, toStrings(AllStubForms()))
	}
	return f, nil
}

// IsValid returns true if the stub form is recognised.
func (f StubForm) IsValid() bool {
	switch f {
	case StubFormTransient, StubFormPersistent, StubFormBlocking, StubFormStructural:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f StubForm) String() string {
	return string(f)
}

// Priority is the declared importance of a stub.
type Priority string

// Available priorities.
const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// DefaultPriority is used when a stub omits priority.
const DefaultPriority = PriorityMedium

// AllPriorities returns every priority from lowest to highest.
func AllPriorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}
}

// ParsePriority maps text to a Priority, ignoring case.
func ParsePriority(s string) (Priority, error) {
	p := Priority(normaliseEnum(s))
	if !p.IsValid() {
		return "", enumError("priority", s, toStrings(AllPriorities()))
	}
	return p, nil
}

// IsValid returns true if the priority is recognised.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	default:
		return false
	}
}

// Urgency maps the priority to its numeric urgency.
func (p Priority) Urgency() float64 {
	switch p {
	case PriorityLow:
		return 0.25
	case PriorityHigh:
		return 0.75
	case PriorityCritical:
		return 1.0
	default:
		return 0.5
	}
}

// String returns the string representation.
func (p Priority) String() string {
	return string(p)
}
