package domain

// Origin is the creation driver of a document or of a stub.
type Origin string

// Available origins.
const (
	OriginHuman         Origin = "human"
	OriginCollaborative Origin = "collaborative"
	OriginAIAssisted    Origin = "ai_assisted"
	OriginImported      Origin = "imported"
	OriginDerived       Origin = "derived"
	OriginAI            Origin = "ai"
)

// DefaultOrigin is used when the header omits origin.
const DefaultOrigin = OriginHuman

// originAliases accepts alternate spellings found in older notes.
var originAliases = map[string]Origin{
	"derivative":   OriginDerived,
	"aiassisted":   OriginAIAssisted,
	"ai_generated": OriginAI,
}

// AllOrigins returns every origin.
func AllOrigins() []Origin {
	return []Origin{
		OriginHuman, OriginCollaborative, OriginAIAssisted,
		OriginImported, OriginDerived, OriginAI,
	}
}

// ParseOrigin maps text to an Origin, ignoring case.
// "derivative" is accepted as an alias of "derived".
func ParseOrigin(s string) (Origin, error) {
	n := normaliseEnum(s)
	if o, ok := originAliases[n]; ok {
		return o, nil
	}
	o := Origin(n)
	if !o.IsValid() {
		return "", enumError("origin", s, toStrings(AllOrigins()))
	}
	return o, nil
}

// IsValid returns true if the origin is recognised.
func (o Origin) IsValid() bool {
	switch o {
	case OriginHuman, OriginCollaborative, OriginAIAssisted, OriginImported, OriginDerived, OriginAI:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (o Origin) String() string {
	return string(o)
}
