package frontmatter

import (
	"bytes"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/doc-doctor/internal/core/domain"
)

// headerIndent is the YAML indentation of emitted headers.
const headerIndent = 2

// wireProperties fixes the emitted key order.
type wireProperties struct {
	UID        string         `yaml:"uid,omitempty"`
	Title      string         `yaml:"title,omitempty"`
	Created    string         `yaml:"created,omitempty"`
	Modified   string         `yaml:"modified,omitempty"`
	Tags       []string       `yaml:"tags,omitempty"`
	Aliases    []string       `yaml:"aliases,omitempty"`
	Refinement float64        `yaml:"refinement"`
	Origin     string         `yaml:"origin"`
	Form       string         `yaml:"form"`
	Audience   string         `yaml:"audience"`
	Stubs      []wireStub     `yaml:"stubs,omitempty"`
	Extra      map[string]any `yaml:",inline"`
}

type wireStub struct {
	Type          string         `yaml:"type"`
	Description   string         `yaml:"description,omitempty"`
	StubForm      string         `yaml:"stub_form"`
	Priority      string         `yaml:"priority"`
	Origin        string         `yaml:"origin"`
	Anchor        string         `yaml:"anchor,omitempty"`
	Urgency       *float64       `yaml:"urgency,omitempty"`
	Impact        *float64       `yaml:"impact,omitempty"`
	Complexity    *float64       `yaml:"complexity,omitempty"`
	InlineAnchors []string       `yaml:"inline_anchors,omitempty"`
	Assignees     []string       `yaml:"assignees,omitempty"`
	Participants  []string       `yaml:"participants,omitempty"`
	References    []string       `yaml:"references,omitempty"`
	Dependencies  []string       `yaml:"dependencies,omitempty"`
	Extra         map[string]any `yaml:",inline"`
}

func toWire(p domain.Properties) wireProperties {
	w := wireProperties{
		UID:        p.UID,
		Title:      p.Title,
		Created:    formatTime(p.Created),
		Modified:   formatTime(p.Modified),
		Tags:       p.Tags,
		Aliases:    p.Aliases,
		Refinement: p.Refinement.Float64(),
		Origin:     orDefault(p.Origin, domain.DefaultOrigin),
		Form:       orDefault(p.Form, domain.DefaultForm),
		Audience:   orDefault(p.Audience, domain.DefaultAudience),
		Extra:      withoutKnown(p.Extra, propertyFields),
	}
	for i := range p.Stubs {
		s := &p.Stubs[i]
		w.Stubs = append(w.Stubs, wireStub{
			Type:          s.Type,
			Description:   s.Description,
			StubForm:      orDefault(s.Form, domain.DefaultStubForm),
			Priority:      orDefault(s.Priority, domain.DefaultPriority),
			Origin:        orDefault(s.Origin, domain.DefaultOrigin),
			Anchor:        s.Anchor,
			Urgency:       unitValue(s.Urgency),
			Impact:        unitValue(s.Impact),
			Complexity:    unitValue(s.Complexity),
			InlineAnchors: s.InlineAnchors,
			Assignees:     s.Assignees,
			Participants:  s.Participants,
			References:    s.References,
			Dependencies:  s.Dependencies,
			Extra:         withoutKnown(s.Extra, stubFields),
		})
	}
	return w
}

// encode renders properties as a fenced header, trailing newline included.
func encode(p domain.Properties) (string, error) {
	var buf bytes.Buffer
	buf.WriteString(fence + "\n")

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(headerIndent)
	if err := enc.Encode(toWire(p)); err != nil {
		return "", domain.NewError(domain.KindSerialize, domain.ErrSerialize, "encoding header: %v", err)
	}
	if err := enc.Close(); err != nil {
		return "", domain.NewError(domain.KindSerialize, domain.ErrSerialize, "encoding header: %v", err)
	}

	buf.WriteString(fence + "\n")
	return buf.String(), nil
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339Nano)
}

func unitValue(u *domain.Unit) *float64 {
	if u == nil {
		return nil
	}
	v := u.Float64()
	return &v
}

func orDefault[T ~string](v, def T) string {
	if v == "" {
		return string(def)
	}
	return string(v)
}

// withoutKnown drops extra keys that would collide with emitted fields.
func withoutKnown(extra map[string]any, known []string) map[string]any {
	if len(extra) == 0 {
		return nil
	}
	out := make(map[string]any, len(extra))
	for k, v := range extra {
		out[k] = v
	}
	for _, k := range known {
		delete(out, k)
	}
	return out
}
