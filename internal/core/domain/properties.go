package domain

import "time"

// Properties is the structured header of one document.
// Values are treated as immutable across operation boundaries:
// editing operations work on a Clone and return a new value.
type Properties struct {
	UID      string     `json:"uid,omitempty"`
	Title    string     `json:"title,omitempty"`
	Created  *time.Time `json:"created,omitempty"`
	Modified *time.Time `json:"modified,omitempty"`

	// Tags and Aliases keep their order; duplicates are allowed.
	Tags    []string `json:"tags,omitempty"`
	Aliases []string `json:"aliases,omitempty"`

	// Refinement expresses how polished the document is.
	Refinement Unit `json:"refinement"`

	Origin   Origin   `json:"origin"`
	Form     Form     `json:"form"`
	Audience Audience `json:"audience"`

	// Stubs is ordered; the index is the external address of a stub.
	Stubs []Stub `json:"stubs,omitempty"`

	// Extra holds top-level keys outside the closed field set, preserved on rewrite.
	Extra map[string]any `json:"extra,omitempty"`
}

// NewProperties returns an empty header with default enumerations.
func NewProperties() Properties {
	return Properties{
		Origin:   DefaultOrigin,
		Form:     DefaultForm,
		Audience: DefaultAudience,
	}
}

// Clone returns a deep copy.
func (p Properties) Clone() Properties {
	c := p
	c.Created = cloneTime(p.Created)
	c.Modified = cloneTime(p.Modified)
	c.Tags = cloneStrings(p.Tags)
	c.Aliases = cloneStrings(p.Aliases)
	if p.Stubs != nil {
		c.Stubs = make([]Stub, len(p.Stubs))
		for i := range p.Stubs {
			c.Stubs[i] = p.Stubs[i].Clone()
		}
	}
	c.Extra = cloneExtra(p.Extra)
	return c
}

// BlockingCount returns the number of blocking stubs.
func (p Properties) BlockingCount() int {
	n := 0
	for i := range p.Stubs {
		if p.Stubs[i].IsBlocking() {
			n++
		}
	}
	return n
}

// LastTouched returns Modified, falling back to Created.
func (p Properties) LastTouched() *time.Time {
	if p.Modified != nil {
		return p.Modified
	}
	return p.Created
}

// Span locates the header inside the full document text.
// Start and End delimit the header body (between the fences) as byte
// offsets; StartLine and EndLine are the 1-indexed lines of the opening
// and closing fences. BodyOffset is where the document body begins.
type Span struct {
	Raw        string `json:"raw"`
	Start      int    `json:"start"`
	End        int    `json:"end"`
	StartLine  int    `json:"start_line"`
	EndLine    int    `json:"end_line"`
	BodyOffset int    `json:"body_offset"`
}

// BodyStartLine returns the first line after the closing fence.
func (s Span) BodyStartLine() int {
	return s.EndLine + 1
}

// ParsedDocument is the codec's view of one document.
type ParsedDocument struct {
	Properties  Properties   `json:"properties"`
	Span        Span         `json:"span"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// Warnings returns the warning-severity diagnostics.
func (d *ParsedDocument) Warnings() []Diagnostic {
	return filterSeverity(d.Diagnostics, SeverityWarning)
}

// ParseOptions controls codec strictness.
type ParseOptions struct {
	// Strict turns unknown-field warnings into errors.
	Strict bool

	// Tolerant clamps out-of-range numbers and defaults invalid enumerations,
	// recording an error-severity diagnostic instead of failing.
	Tolerant bool
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
