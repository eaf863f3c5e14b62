package domain

import "strings"

// Stub is one editorial demand attached to a document.
// Stubs are addressed by their index in Properties.Stubs.
type Stub struct {
	// Type is the free-form kind of work, e.g. "expand" or "source".
	Type string `json:"type"`

	// Description says what is missing.
	Description string `json:"description"`

	// Form determines the stub's health penalty.
	Form StubForm `json:"stub_form"`

	// Priority maps to a default urgency.
	Priority Priority `json:"priority"`

	// Origin records who surfaced the stub.
	Origin Origin `json:"origin"`

	// Anchor optionally names the block the stub refers to.
	Anchor string `json:"anchor,omitempty"`

	// Urgency, Impact and Complexity override configured defaults when set.
	Urgency    *Unit `json:"urgency,omitempty"`
	Impact     *Unit `json:"impact,omitempty"`
	Complexity *Unit `json:"complexity,omitempty"`

	// InlineAnchors are the ^ids in the body this stub is tied to.
	InlineAnchors []string `json:"inline_anchors,omitempty"`

	Assignees    []string `json:"assignees,omitempty"`
	Participants []string `json:"participants,omitempty"`
	References   []string `json:"references,omitempty"`
	Dependencies []string `json:"dependencies,omitempty"`

	// Extra holds keys outside the closed stub field set, preserved on rewrite.
	Extra map[string]any `json:"extra,omitempty"`
}

// NewStub creates a stub with default form, priority and origin.
func NewStub(stubType, description string) Stub {
	return Stub{
		Type:        stubType,
		Description: description,
		Form:        DefaultStubForm,
		Priority:    DefaultPriority,
		Origin:      DefaultOrigin,
	}
}

// IsBlocking returns true if the stub blocks publication.
func (s Stub) IsBlocking() bool {
	return s.Form == StubFormBlocking
}

// Family returns the vector family of the stub's type.
func (s Stub) Family() VectorFamily {
	return FamilyForStubType(s.Type)
}

// HasInlineAnchor reports whether id is among the stub's inline anchors.
func (s Stub) HasInlineAnchor(id string) bool {
	want := NormaliseAnchorID(id)
	for _, a := range s.InlineAnchors {
		if NormaliseAnchorID(a) == want {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the stub.
func (s Stub) Clone() Stub {
	c := s
	c.Urgency = cloneUnit(s.Urgency)
	c.Impact = cloneUnit(s.Impact)
	c.Complexity = cloneUnit(s.Complexity)
	c.InlineAnchors = cloneStrings(s.InlineAnchors)
	c.Assignees = cloneStrings(s.Assignees)
	c.Participants = cloneStrings(s.Participants)
	c.References = cloneStrings(s.References)
	c.Dependencies = cloneStrings(s.Dependencies)
	c.Extra = cloneExtra(s.Extra)
	return c
}

// NormaliseAnchorID strips whitespace and a leading caret: "^abc" → "abc".
func NormaliseAnchorID(id string) string {
	return strings.TrimPrefix(strings.TrimSpace(id), "^")
}

// StubSpec is the loosely typed input for a new stub.
// Canonicalize never fails: unparseable enum text falls back to defaults
// and out-of-range numbers are clamped.
type StubSpec struct {
	Type          string   `json:"type"`
	Description   string   `json:"description"`
	StubForm      string   `json:"stub_form,omitempty"`
	Priority      string   `json:"priority,omitempty"`
	Origin        string   `json:"origin,omitempty"`
	Anchor        string   `json:"anchor,omitempty"`
	Urgency       *float64 `json:"urgency,omitempty"`
	Impact        *float64 `json:"impact,omitempty"`
	Complexity    *float64 `json:"complexity,omitempty"`
	InlineAnchors []string `json:"inline_anchors,omitempty"`
	Assignees     []string `json:"assignees,omitempty"`
	Participants  []string `json:"participants,omitempty"`
	References    []string `json:"references,omitempty"`
	Dependencies  []string `json:"dependencies,omitempty"`
}

// Canonicalize converts the input into a Stub.
func (spec StubSpec) Canonicalize() Stub {
	s := NewStub(strings.TrimSpace(spec.Type), strings.TrimSpace(spec.Description))
	if f, err := ParseStubForm(spec.StubForm); err == nil {
		s.Form = f
	}
	if p, err := ParsePriority(spec.Priority); err == nil {
		s.Priority = p
	}
	if o, err := ParseOrigin(spec.Origin); err == nil {
		s.Origin = o
	}
	s.Anchor = strings.TrimSpace(spec.Anchor)
	if spec.Urgency != nil {
		s.Urgency = UnitPtr(*spec.Urgency)
	}
	if spec.Impact != nil {
		s.Impact = UnitPtr(*spec.Impact)
	}
	if spec.Complexity != nil {
		s.Complexity = UnitPtr(*spec.Complexity)
	}
	s.InlineAnchors = nonEmpty(spec.InlineAnchors)
	s.Assignees = nonEmpty(spec.Assignees)
	s.Participants = nonEmpty(spec.Participants)
	s.References = nonEmpty(spec.References)
	s.Dependencies = nonEmpty(spec.Dependencies)
	return s
}

// StubUpdate carries optional replacements for an existing stub.
type StubUpdate struct {
	Description *string   `json:"description,omitempty"`
	Priority    *Priority `json:"priority,omitempty"`
	Form        *StubForm `json:"stub_form,omitempty"`
}

// IsEmpty returns true if the update changes nothing.
func (u StubUpdate) IsEmpty() bool {
	return u.Description == nil && u.Priority == nil && u.Form == nil
}

// Apply writes the set fields onto s.
func (u StubUpdate) Apply(s *Stub) {
	if u.Description != nil {
		s.Description = *u.Description
	}
	if u.Priority != nil {
		s.Priority = *u.Priority
	}
	if u.Form != nil {
		s.Form = *u.Form
	}
}

// StubFilter narrows a stub listing. Zero values match everything.
type StubFilter struct {
	// Type matches stubs whose type contains this text, ignoring case.
	Type string `json:"type,omitempty"`

	// BlockingOnly keeps only blocking stubs.
	BlockingOnly bool `json:"blocking_only,omitempty"`

	// Priority keeps only stubs with exactly this priority.
	Priority Priority `json:"priority,omitempty"`
}

// Matches reports whether s passes the filter.
func (f StubFilter) Matches(s Stub) bool {
	if f.Type != "" && !strings.Contains(strings.ToLower(s.Type), strings.ToLower(f.Type)) {
		return false
	}
	if f.BlockingOnly && !s.IsBlocking() {
		return false
	}
	if f.Priority != "" && s.Priority != f.Priority {
		return false
	}
	return true
}

// IndexedStub pairs a stub with its index in the document.
type IndexedStub struct {
	Index int  `json:"index"`
	Stub  Stub `json:"stub"`
}

func cloneUnit(u *Unit) *Unit {
	if u == nil {
		return nil
	}
	v := *u
	return &v
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func nonEmpty(in []string) []string {
	var out []string
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func cloneExtra(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneExtra(t)
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}
