package frontmatter

import (
	"fmt"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/doc-doctor/internal/core/domain"
)

// Field names of the closed header and stub schemas.
var (
	propertyFields = []string{
		"uid", "title", "created", "modified", "tags", "aliases",
		"refinement", "origin", "form", "audience", "stubs",
	}
	stubFields = []string{
		"type", "description", "stub_form", "priority", "origin", "anchor",
		"urgency", "impact", "complexity", "inline_anchors", "assignees",
		"participants", "references", "dependencies",
	}
)

// timestampLayouts are tried in order when reading created/modified.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

var yamlLineRe = regexp.MustCompile(`line (\d+)`)

// decoder walks a YAML node tree into domain values.
type decoder struct {
	idx   *lineIndex
	span  domain.Span
	opts  domain.ParseOptions
	diags []domain.Diagnostic
}

// decode parses the raw header and walks it.
func (d *decoder) decode() (domain.Properties, error) {
	var root yaml.Node
	if err := yaml.Unmarshal([]byte(d.span.Raw), &root); err != nil {
		return domain.Properties{}, d.syntaxError(err)
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return domain.NewProperties(), nil
	}
	return d.properties(resolve(root.Content[0]))
}

// syntaxError maps a yaml.v3 error onto the document's lines.
// yaml.v3 reports only a line number for syntax errors, so the
// position always points at column 1 of that line.
func (d *decoder) syntaxError(err error) *domain.Error {
	msg := strings.TrimPrefix(err.Error(), "yaml: ")
	e := domain.NewError(domain.KindParse, domain.ErrYAMLSyntax, "%s", msg)
	if m := yamlLineRe.FindStringSubmatch(msg); m != nil {
		if rel, convErr := strconv.Atoi(m[1]); convErr == nil {
			d.locate(e, d.span.StartLine+rel, 1)
			e.Message = strings.TrimSpace(strings.Replace(msg, m[0]+":", "", 1))
		}
	}
	e.Suggestion = "check indentation and that every key is followed by a colon"
	return e
}

func (d *decoder) properties(n *yaml.Node) (domain.Properties, error) {
	p := domain.NewProperties()
	if isNull(n) {
		return p, nil
	}
	if n.Kind != yaml.MappingNode {
		return p, d.typeMismatch(n, "", "mapping")
	}

	seen := make(map[string]*yaml.Node, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], resolve(n.Content[i+1])
		key := k.Value
		if err := d.duplicate(seen, k, key); err != nil {
			return p, err
		}
		if isNull(v) && slices.Contains(propertyFields, key) {
			continue
		}

		var err error
		switch key {
		case "uid":
			p.UID, err = d.str(v, key)
		case "title":
			p.Title, err = d.str(v, key)
		case "created":
			p.Created, err = d.timestamp(v, key)
		case "modified":
			p.Modified, err = d.timestamp(v, key)
		case "tags":
			p.Tags, err = d.strs(v, key)
		case "aliases":
			p.Aliases, err = d.strs(v, key)
		case "refinement":
			p.Refinement, err = d.unit(v, key)
		case "origin":
			p.Origin, err = decodeEnum(d, v, key, domain.ParseOrigin, domain.DefaultOrigin)
		case "form":
			p.Form, err = decodeEnum(d, v, key, domain.ParseForm, domain.DefaultForm)
		case "audience":
			p.Audience, err = decodeEnum(d, v, key, domain.ParseAudience, domain.DefaultAudience)
		case "stubs":
			p.Stubs, err = d.stubs(v)
		default:
			p.Extra, err = d.unknown(k, v, key, p.Extra, propertyFields)
		}
		if err != nil {
			return p, err
		}
	}
	return p, nil
}

func (d *decoder) stubs(n *yaml.Node) ([]domain.Stub, error) {
	if isNull(n) {
		return nil, nil
	}
	if n.Kind != yaml.SequenceNode {
		return nil, d.typeMismatch(n, "stubs", "sequence")
	}
	var out []domain.Stub
	for i, item := range n.Content {
		s, err := d.stub(resolve(item), fmt.Sprintf("stubs[%d]", i))
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (d *decoder) stub(n *yaml.Node, path string) (domain.Stub, error) {
	s := domain.NewStub("", "")
	if n.Kind != yaml.MappingNode {
		return s, d.typeMismatch(n, path, "mapping")
	}

	seen := make(map[string]*yaml.Node, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], resolve(n.Content[i+1])
		key := k.Value
		field := path + "." + key
		if err := d.duplicate(seen, k, field); err != nil {
			return s, err
		}
		if isNull(v) && slices.Contains(stubFields, key) {
			continue
		}

		var err error
		switch key {
		case "type":
			s.Type, err = d.str(v, field)
		case "description":
			s.Description, err = d.str(v, field)
		case "stub_form":
			s.Form, err = decodeEnum(d, v, field, domain.ParseStubForm, domain.DefaultStubForm)
		case "priority":
			s.Priority, err = decodeEnum(d, v, field, domain.ParsePriority, domain.DefaultPriority)
		case "origin":
			s.Origin, err = decodeEnum(d, v, field, domain.ParseOrigin, domain.DefaultOrigin)
		case "anchor":
			s.Anchor, err = d.str(v, field)
		case "urgency":
			s.Urgency, err = d.optionalUnit(v, field)
		case "impact":
			s.Impact, err = d.optionalUnit(v, field)
		case "complexity":
			s.Complexity, err = d.optionalUnit(v, field)
		case "inline_anchors":
			s.InlineAnchors, err = d.strs(v, field)
		case "assignees":
			s.Assignees, err = d.strs(v, field)
		case "participants":
			s.Participants, err = d.strs(v, field)
		case "references":
			s.References, err = d.strs(v, field)
		case "dependencies":
			s.Dependencies, err = d.strs(v, field)
		default:
			s.Extra, err = d.unknown(k, v, field, s.Extra, stubFields)
		}
		if err != nil {
			return s, err
		}
	}
	return s, nil
}

// duplicate fails on a key already present in the same mapping.
// The error points at the second occurrence.
func (d *decoder) duplicate(seen map[string]*yaml.Node, k *yaml.Node, field string) error {
	if prev, ok := seen[k.Value]; ok {
		e := d.errorAt(k, domain.ErrYAMLSyntax, field, "mapping key %q already defined at line %d",
			k.Value, d.span.StartLine+prev.Line)
		e.Suggestion = "remove or merge the repeated key"
		return e
	}
	seen[k.Value] = k
	return nil
}

// unknown records a key outside the closed set and keeps its value.
func (d *decoder) unknown(k, v *yaml.Node, field string, extra map[string]any, valid []string) (map[string]any, error) {
	e := d.errorAt(k, domain.ErrUnknownField, field, "unknown field %q", k.Value)
	e.Suggestion = "known fields: " + strings.Join(valid, ", ")
	if d.opts.Strict {
		return extra, e
	}
	d.diags = append(d.diags, domain.DiagnosticFromError(e, domain.SeverityWarning))

	var value any
	if err := v.Decode(&value); err != nil {
		return extra, nil
	}
	if extra == nil {
		extra = make(map[string]any)
	}
	extra[k.Value] = value
	return extra, nil
}

func (d *decoder) scalar(n *yaml.Node, field, expected string) (string, error) {
	if n.Kind != yaml.ScalarNode {
		return "", d.typeMismatch(n, field, expected)
	}
	return n.Value, nil
}

func (d *decoder) str(n *yaml.Node, field string) (string, error) {
	return d.scalar(n, field, "string")
}

// strs reads a sequence of strings. A single scalar is read as a one-item list.
func (d *decoder) strs(n *yaml.Node, field string) ([]string, error) {
	if n.Kind == yaml.ScalarNode {
		if n.Value == "" {
			return nil, nil
		}
		return []string{n.Value}, nil
	}
	if n.Kind != yaml.SequenceNode {
		return nil, d.typeMismatch(n, field, "sequence of strings")
	}
	var out []string
	for i, item := range n.Content {
		item = resolve(item)
		if isNull(item) {
			continue
		}
		s, err := d.str(item, fmt.Sprintf("%s[%d]", field, i))
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (d *decoder) timestamp(n *yaml.Node, field string) (*time.Time, error) {
	s, err := d.scalar(n, field, "timestamp")
	if err != nil {
		return nil, err
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, strings.TrimSpace(s)); err == nil {
			return &t, nil
		}
	}
	e := d.errorAt(n, domain.ErrTypeMismatch, field, "%s: %q is not a timestamp", field, s)
	e.Expected = "timestamp"
	e.Actual = nodeType(n)
	e.Suggestion = "use an ISO 8601 date such as 2024-01-31 or 2024-01-31T09:30:00Z"
	return nil, e
}

func (d *decoder) number(n *yaml.Node, field string) (float64, error) {
	s, err := d.scalar(n, field, "number")
	if err != nil {
		return 0, err
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case ".inf", "+.inf":
		return math.Inf(1), nil
	case "-.inf":
		return math.Inf(-1), nil
	case ".nan":
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, d.typeMismatch(n, field, "number")
	}
	return v, nil
}

func (d *decoder) unit(n *yaml.Node, field string) (domain.Unit, error) {
	v, err := d.number(n, field)
	if err != nil {
		return 0, err
	}
	if domain.InUnitRange(v) {
		return domain.Unit(v), nil
	}
	e := d.errorAt(n, domain.ErrOutOfRange, field, "%s = %v out of range [0, 1]", field, v)
	e.Suggestion = "use a number between 0.0 and 1.0"
	if d.tolerate(e) {
		return domain.ClampUnit(v), nil
	}
	return 0, e
}

func (d *decoder) optionalUnit(n *yaml.Node, field string) (*domain.Unit, error) {
	u, err := d.unit(n, field)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// decodeEnum reads a closed enumeration. In tolerant mode an unknown
// value becomes def and an error diagnostic.
func decodeEnum[T ~string](d *decoder, n *yaml.Node, field string, parse func(string) (T, error), def T) (T, error) {
	s, err := d.str(n, field)
	if err != nil {
		return def, err
	}
	v, err := parse(s)
	if err == nil {
		return v, nil
	}
	e := d.wrap(err, n, field)
	if d.tolerate(e) {
		return def, nil
	}
	return def, e
}

// tolerate records e as an error diagnostic when parsing tolerantly.
func (d *decoder) tolerate(e *domain.Error) bool {
	if !d.opts.Tolerant {
		return false
	}
	d.diags = append(d.diags, domain.DiagnosticFromError(e, domain.SeverityError))
	return true
}

func (d *decoder) typeMismatch(n *yaml.Node, field, expected string) *domain.Error {
	actual := nodeType(n)
	name := field
	if name == "" {
		name = "header"
	}
	e := d.errorAt(n, domain.ErrTypeMismatch, field, "%s: expected %s, got %s", name, expected, actual)
	e.Expected = expected
	e.Actual = actual
	return e
}

func (d *decoder) errorAt(n *yaml.Node, sentinel error, field, format string, args ...any) *domain.Error {
	e := domain.NewError(domain.KindParse, sentinel, format, args...)
	e.Field = field
	if n != nil && n.Line > 0 {
		d.locate(e, d.span.StartLine+n.Line, n.Column)
	}
	return e
}

// wrap re-kinds a domain error raised during decoding as a parse error at n.
func (d *decoder) wrap(err error, n *yaml.Node, field string) *domain.Error {
	e := &domain.Error{Err: err, Message: err.Error()}
	if de, ok := domain.AsError(err); ok {
		c := *de
		e = &c
	}
	e.Kind = domain.KindParse
	e.Field = field
	if n != nil && n.Line > 0 {
		d.locate(e, d.span.StartLine+n.Line, n.Column)
	}
	return e
}

func (d *decoder) locate(e *domain.Error, line, column int) {
	off := d.idx.offset(line, column)
	pos := domain.Position{Line: line, Column: column, Offset: off}
	e.Position = &pos
	e.Snippet = d.idx.snippet(off)
}

// resolve follows YAML aliases to their anchored node.
func resolve(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	return n == nil || (n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null")
}

// nodeType names the YAML type of n for error messages.
func nodeType(n *yaml.Node) string {
	switch n.Kind {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.AliasNode:
		return "alias"
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!str":
			return "string"
		case "!!int":
			return "integer"
		case "!!float":
			return "number"
		case "!!bool":
			return "boolean"
		case "!!null":
			return "null"
		case "!!timestamp":
			return "timestamp"
		default:
			return strings.TrimPrefix(n.ShortTag(), "!!")
		}
	default:
		return "unknown"
	}
}
