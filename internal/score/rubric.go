// Package score applies the fixed six-dimension rubric to produce weighted
// competitor totals on a 0-5 scale.
package score

import (
	"fmt"

	"github.com/haowu77/competitive-analysis-skill/internal/model"
)

const (
	// Midpoint is substituted for missing dimension scores
	Midpoint = 3
	minScore = 1
	maxScore = 5
)

// Rubric is the scoring rubric: the six fixed dimensions with their weights.
// Dimension identity is fixed; only weights are configurable. Weights are
// normalized to sum 1.0 before use, so any uniform rescaling of an override
// yields identical totals.
type Rubric struct {
	weights map[model.Dimension]float64 // Normalized, sums to 1.0
}

// LevelDescriptions documents what each 1-5 level means per dimension. Kept
// as data so report consumers can render the rubric alongside scores.
var LevelDescriptions = map[model.Dimension][5]string{
	model.DimTraction:           {"No observable usage", "Early signups only", "Steady niche usage", "Clear growth trend", "Category-leading growth"},
	model.DimProductCapability:  {"Single narrow feature", "Basic feature set", "Competitive core features", "Broad differentiated set", "Clear capability leader"},
	model.DimMonetization:       {"No revenue path", "Unproven pricing", "Working pricing model", "Multiple proven streams", "Best-in-class monetization"},
	model.DimUserSentiment:      {"Widely negative", "Mixed, trending down", "Neutral or mixed", "Mostly positive", "Strongly positive advocacy"},
	model.DimExecutionMaturity:  {"Prototype quality", "Irregular releases", "Regular releases", "Fast reliable cadence", "Operationally excellent"},
	model.DimEvidenceConfidence: {"No verifiable sources", "Single weak source", "Some corroboration", "Multiple solid sources", "Fully corroborated"},
}

// NewRubric builds a rubric from a weight override ordered as
// model.Dimensions. Nil or empty means the default 20/30/15/20/10/5. Every
// weight must be positive; a wrong count is an unknown-dimension override.
func NewRubric(weights []float64) (*Rubric, error) {
	if len(weights) == 0 {
		weights = model.DefaultWeights
	}
	if len(weights) != len(model.Dimensions) {
		return nil, fmt.Errorf("weights: need %d values, got %d: %w",
			len(model.Dimensions), len(weights), model.ErrInvalidRubric)
	}

	var sum float64
	for i, w := range weights {
		if w <= 0 {
			return nil, fmt.Errorf("weight for %q must be positive, got %v: %w",
				model.Dimensions[i], w, model.ErrInvalidRubric)
		}
		sum += w
	}

	normalized := make(map[model.Dimension]float64, len(weights))
	for i, dim := range model.Dimensions {
		normalized[dim] = weights[i] / sum
	}
	return &Rubric{weights: normalized}, nil
}

// NewRubricFromOverrides builds a rubric from a per-dimension override map.
// Unknown dimension names are a rubric error; omitted dimensions keep their
// default weight.
func NewRubricFromOverrides(overrides map[string]float64) (*Rubric, error) {
	weights := append([]float64(nil), model.DefaultWeights...)
	index := make(map[string]int, len(model.Dimensions))
	for i, dim := range model.Dimensions {
		index[string(dim)] = i
	}
	for name, w := range overrides {
		i, ok := index[name]
		if !ok {
			return nil, fmt.Errorf("unknown dimension %q: %w", name, model.ErrInvalidRubric)
		}
		weights[i] = w
	}
	return NewRubric(weights)
}

// Weight returns the normalized weight of a dimension
func (r *Rubric) Weight(dim model.Dimension) float64 {
	return r.weights[dim]
}
