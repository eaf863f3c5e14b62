package domain

// Audience is the intended visibility level of a document.
// Each audience carries a refinement gate supplied by configuration.
type Audience string

// Available audiences, ordered from least to most demanding.
const (
	AudiencePersonal Audience = "personal"
	AudienceInternal Audience = "internal"
	AudienceTrusted  Audience = "trusted"
	AudiencePublic   Audience = "public"
)

// DefaultAudience is used when the header omits audience.
const DefaultAudience = AudiencePersonal

// AllAudiences returns every audience in gate order.
func AllAudiences() []Audience {
	return []Audience{AudiencePersonal, AudienceInternal, AudienceTrusted, AudiencePublic}
}

// ParseAudience maps text to an Audience, ignoring case.
func ParseAudience(s string) (Audience, error) {
	a := Audience(normaliseEnum(s))
	if !a.IsValid() {
		return "", enumError("audience", s, toStrings(AllAudiences()))
	}
	return a, nil
}

// IsValid returns true if the audience is recognised.
func (a Audience) IsValid() bool {
	switch a {
	case AudiencePersonal, AudienceInternal, AudienceTrusted, AudiencePublic:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (a Audience) String() string {
	return string(a)
}
