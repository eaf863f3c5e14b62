package domain

// VectorFamily groups stub types by the kind of work they demand.
type VectorFamily string

// Available vector families.
const (
	VectorFamilyRetrieval   VectorFamily = "retrieval"
	VectorFamilyComputation VectorFamily = "computation"
	VectorFamilySynthesis   VectorFamily = "synthesis"
	VectorFamilyCreation    VectorFamily = "creation"
	VectorFamilyStructural  VectorFamily = "structural"
)

// DefaultVectorFamily is the fallback for stub types missing from the lookup.
const DefaultVectorFamily = VectorFamilyCreation

// stubTypeFamilies is the static stub type → family lookup.
var stubTypeFamilies = map[string]VectorFamily{
	// Finding things that already exist.
	"source":     VectorFamilyRetrieval,
	"citation":   VectorFamilyRetrieval,
	"cite":       VectorFamilyRetrieval,
	"reference":  VectorFamilyRetrieval,
	"link":       VectorFamilyRetrieval,
	"verify":     VectorFamilyRetrieval,
	"fact_check": VectorFamilyRetrieval,
	"research":   VectorFamilyRetrieval,

	// Deriving numbers or results.
	"calculate": VectorFamilyComputation,
	"compute":   VectorFamilyComputation,
	"data":      VectorFamilyComputation,
	"measure":   VectorFamilyComputation,
	"benchmark": VectorFamilyComputation,
	"analyze":   VectorFamilyComputation,
	"analyse":   VectorFamilyComputation,

	// Combining existing material.
	"expand":      VectorFamilySynthesis,
	"clarify":     VectorFamilySynthesis,
	"summarize":   VectorFamilySynthesis,
	"summarise":   VectorFamilySynthesis,
	"synthesize":  VectorFamilySynthesis,
	"compare":     VectorFamilySynthesis,
	"question":    VectorFamilySynthesis,
	"controversy": VectorFamilySynthesis,

	// Producing new material.
	"draft":      VectorFamilyCreation,
	"example":    VectorFamilyCreation,
	"diagram":    VectorFamilyCreation,
	"illustrate": VectorFamilyCreation,
	"write":      VectorFamilyCreation,
	"todo":       VectorFamilyCreation,

	// Reshaping the document itself.
	"restructure": VectorFamilyStructural,
	"reorganize":  VectorFamilyStructural,
	"split":       VectorFamilyStructural,
	"merge":       VectorFamilyStructural,
	"move":        VectorFamilyStructural,
	"format":      VectorFamilyStructural,
	"outline":     VectorFamilyStructural,
}

// AllVectorFamilies returns every vector family.
func AllVectorFamilies() []VectorFamily {
	return []VectorFamily{
		VectorFamilyRetrieval, VectorFamilyComputation, VectorFamilySynthesis,
		VectorFamilyCreation, VectorFamilyStructural,
	}
}

// FamilyForStubType categorises a free-form stub type.
// Unknown types fall back to DefaultVectorFamily.
func FamilyForStubType(stubType string) VectorFamily {
	if f, ok := stubTypeFamilies[normaliseEnum(stubType)]; ok {
		return f
	}
	return DefaultVectorFamily
}

// IsValid returns true if the family is recognised.
func (f VectorFamily) IsValid() bool {
	switch f {
	case VectorFamilyRetrieval, VectorFamilyComputation, VectorFamilySynthesis,
		VectorFamilyCreation, VectorFamilyStructural:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f VectorFamily) String() string {
	return string(f)
}
