package model

// Category classifies a competitor by JTBD and path overlap
type Category string

const (
	CategoryDirect     Category = "direct"     // Same JTBD, comparable monetization/usage path
	CategoryAdjacent   Category = "adjacent"   // Same JTBD, different path or segment
	CategorySubstitute Category = "substitute" // Different category, same outcome
)

// Priority orders categories for ranking: Direct beats Adjacent beats Substitute
func (c Category) Priority() int {
	switch c {
	case CategoryDirect:
		return 0
	case CategoryAdjacent:
		return 1
	case CategorySubstitute:
		return 2
	default:
		return 3
	}
}

// Dimension identifies one of the six fixed rubric dimensions
type Dimension string

const (
	DimTraction           Dimension = "traction_score"
	DimProductCapability  Dimension = "product_capability_score"
	DimMonetization       Dimension = "monetization_score"
	DimUserSentiment      Dimension = "user_sentiment_score"
	DimExecutionMaturity  Dimension = "execution_maturity_score"
	DimEvidenceConfidence Dimension = "evidence_confidence_score"
)

// Dimensions lists the rubric dimensions in canonical order
var Dimensions = []Dimension{
	DimTraction,
	DimProductCapability,
	DimMonetization,
	DimUserSentiment,
	DimExecutionMaturity,
	DimEvidenceConfidence,
}

// ConfidenceLevel is the derived trust tier from evidence quantity/type/recency
type ConfidenceLevel string

const (
	ConfidenceLow    ConfidenceLevel = "low"
	ConfidenceMedium ConfidenceLevel = "med"
	ConfidenceHigh   ConfidenceLevel = "high"
)

// ThreatLevel is the qualitative threat conclusion for a benchmark row
type ThreatLevel string

const (
	ThreatLow    ThreatLevel = "low"
	ThreatMedium ThreatLevel = "medium"
	ThreatHigh   ThreatLevel = "high"
)

// Competitor is one normalized, classified, scored benchmark entity.
// The engine owns it for the duration of a single run.
type Competitor struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`

	Category Category `json:"category"`

	// Descriptive fields carried through for display
	TargetUser  string `json:"target_user,omitempty"`
	CoreJTBD    string `json:"core_jtbd,omitempty"`
	Platform    string `json:"platform,omitempty"`
	GeoFocus    string `json:"geo_focus,omitempty"`
	KeyStrength string `json:"key_strength,omitempty"`
	KeyWeakness string `json:"key_weakness,omitempty"`

	// Per-dimension scores, integer 1-5, clamped on input
	Scores map[Dimension]int `json:"scores"`

	// Imputed lists dimensions whose score was missing and defaulted to the
	// rubric midpoint; they reduce confidence downstream
	Imputed []Dimension `json:"imputed,omitempty"`

	// WeightedTotal is derived: sum(score*weight)/sum(weights), 0-5 scale
	WeightedTotal float64 `json:"weighted_total"`

	Evidence   []Evidence      `json:"evidence,omitempty"`
	Confidence ConfidenceLevel `json:"confidence"`
	Threat     ThreatLevel     `json:"threat_level,omitempty"`

	// Extra preserves unrecognized input keys; never used for scoring
	Extra map[string]any `json:"extra,omitempty"`
}

// HasIdentity reports whether the competitor is retrievable at all
func (c *Competitor) HasIdentity() bool {
	return c.Name != ""
}
