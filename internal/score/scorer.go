package score

import (
	"math"

	"github.com/haowu77/competitive-analysis-skill/internal/model"
)

// Scorer applies a rubric to raw dimension scores
type Scorer struct {
	rubric *Rubric
}

// NewScorer creates a scorer for one run
func NewScorer(rubric *Rubric) *Scorer {
	return &Scorer{rubric: rubric}
}

// Result is the scoring output for one competitor
type Result struct {
	Scores  map[model.Dimension]int // Clamped display scores
	Imputed []model.Dimension       // Dimensions defaulted to the midpoint
	Total   float64                 // Weighted total, 0-5, two decimals
}

// Score computes the weighted total from raw per-dimension scores. Out-of-
// range values are clamped to [1,5]; a missing dimension defaults to the
// rubric midpoint and is reported as imputed so the evidence validator can
// reflect the reduced certainty.
func (s *Scorer) Score(raw map[model.Dimension]float64) Result {
	res := Result{Scores: make(map[model.Dimension]int, len(model.Dimensions))}

	var total float64
	for _, dim := range model.Dimensions {
		v, ok := raw[dim]
		if !ok {
			v = Midpoint
			res.Imputed = append(res.Imputed, dim)
		}
		clamped := clamp(v)
		res.Scores[dim] = clamped
		total += float64(clamped) * s.rubric.Weight(dim)
	}

	// Weights sum to 1.0, so total is already on the 0-5 scale
	res.Total = round2(total)
	return res
}

func clamp(v float64) int {
	n := int(math.Round(v))
	if n < minScore {
		return minScore
	}
	if n > maxScore {
		return maxScore
	}
	return n
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
