package domain

import "time"

// HealthScore is the health of a document with its components.
type HealthScore struct {
	// Score is the weighted combination, in [0, 1].
	Score float64 `json:"score"`

	// StubPenalty is the capped sum of stub-form penalties.
	StubPenalty float64 `json:"stub_penalty"`

	// RefinementComponent and StubComponent are the weighted terms.
	RefinementComponent float64 `json:"refinement_component"`
	StubComponent       float64 `json:"stub_component"`
}

// Usefulness relates refinement to the gate of an audience.
type Usefulness struct {
	Refinement float64  `json:"refinement"`
	Gate       float64  `json:"gate"`
	Margin     float64  `json:"margin"`
	IsUseful   bool     `json:"is_useful"`
	Audience   Audience `json:"audience"`
}

// StateDimensions bundles every per-document score.
// ComplianceFit and CoverageFit need external context and are fixed at 1.0.
type StateDimensions struct {
	Health        float64    `json:"health"`
	Usefulness    Usefulness `json:"usefulness"`
	Trust         float64    `json:"trust"`
	Freshness     float64    `json:"freshness"`
	ComplianceFit float64    `json:"compliance_fit"`
	CoverageFit   float64    `json:"coverage_fit"`
}

// StubContext is the environment a stub is evaluated in.
type StubContext struct {
	HasControversy          bool     `json:"has_controversy"`
	HasExternalDependencies bool     `json:"has_external_dependencies"`
	EditorialVelocity       *float64 `json:"editorial_velocity,omitempty"`
	AgeDays                 *float64 `json:"age_days,omitempty"`
}

// VectorPhysics are the per-stub quantities used to rank editorial work.
type VectorPhysics struct {
	Family          VectorFamily `json:"family"`
	Urgency         float64      `json:"urgency"`
	Impact          float64      `json:"impact"`
	Complexity      float64      `json:"complexity"`
	PotentialEnergy float64      `json:"potential_energy"`
	Friction        float64      `json:"friction"`
	Magnitude       float64      `json:"magnitude"`

	// Forecast is the expected completion time, when velocity is known
	// and friction is below 1.
	Forecast *float64 `json:"forecast,omitempty"`
}

// RankedStub is a stub with its physics, as ranked by an analysis.
type RankedStub struct {
	Index   int           `json:"index"`
	Stub    Stub          `json:"stub"`
	Physics VectorPhysics `json:"physics"`
}

// StubSummary counts a document's stubs.
type StubSummary struct {
	Total    int                  `json:"total"`
	Blocking int                  `json:"blocking"`
	ByForm   map[StubForm]int     `json:"by_form"`
	ByFamily map[VectorFamily]int `json:"by_family"`
}

// Analysis is the full assessment of one document.
type Analysis struct {
	Properties Properties      `json:"properties"`
	Span       Span            `json:"span"`
	Dimensions StateDimensions `json:"dimensions"`
	Health     HealthScore     `json:"health"`
	Stubs      StubSummary     `json:"stub_summary"`
	Ranked     []RankedStub    `json:"ranked_stubs"`
	Warnings   []Diagnostic    `json:"warnings,omitempty"`
	AnalyzedAt time.Time       `json:"analyzed_at"`

	// UsingDefaults is set when configuration loading fell back to defaults.
	UsingDefaults bool `json:"using_defaults"`
}

// AnchorOccurrence is one ^id found in a document body.
// Line is counted from the document's first line, header included.
type AnchorOccurrence struct {
	ID   string `json:"id"`
	Line int    `json:"line"`
}

// StubAnchorMatch lists which declared inline anchors of a stub occur in the body.
type StubAnchorMatch struct {
	Index    int      `json:"index"`
	Type     string   `json:"type"`
	Declared []string `json:"declared"`
	Found    []string `json:"found"`
	Missing  []string `json:"missing,omitempty"`
}

// AnchorReport is the result of scanning a document for anchors.
type AnchorReport struct {
	Anchors []AnchorOccurrence `json:"anchors"`
	Stubs   []StubAnchorMatch  `json:"stubs"`
}

// AddStubResult is returned by adding a stub.
type AddStubResult struct {
	Text  string `json:"text"`
	Index int    `json:"index"`
}

// ResolveStubResult is returned by resolving (removing) a stub.
type ResolveStubResult struct {
	Text    string `json:"text"`
	Removed Stub   `json:"removed"`
}

// StubEditResult is returned by edits that keep the stub in place.
type StubEditResult struct {
	Text  string `json:"text"`
	Index int    `json:"index"`
	Stub  Stub   `json:"stub"`
}

// InitOptions controls stamping a document with identity fields.
type InitOptions struct {
	// UID is written when the header has none.
	UID string

	// Now is written to created (when absent) and modified.
	Now time.Time

	// Title is written when the header has none.
	Title string
}

// InitResult is returned by stamping a document.
type InitResult struct {
	Text       string     `json:"text"`
	Properties Properties `json:"properties"`
	Created    bool       `json:"created_header"`
}
