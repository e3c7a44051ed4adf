// Package validate derives confidence levels from evidence sets and, as an
// optional collaborator step, verifies evidence links over the network.
package validate

import (
	"time"

	"github.com/haowu77/competitive-analysis-skill/internal/model"
)

// evidenceFacts are the inputs the confidence rule table is evaluated over
type evidenceFacts struct {
	total            int
	official         int
	thirdParty       int
	strongThirdParty int
	allDatesValid    bool // Every item has a valid access date and is not stale
	partialDates     bool // At least half the items carry a valid access date
	imputedScores    bool // Any dimension score was defaulted to the midpoint
}

// confidenceRule is one row of the decision table
type confidenceRule struct {
	name  string
	match func(f evidenceFacts) bool
	level model.ConfidenceLevel
}

// The table is evaluated in order, first match wins:
//  1. High:   >=3 sources, >=1 official, >=1 third-party, all dates valid
//  2. Medium: >=2 sources, official or strong third-party, partial dates
//  3. Low:    otherwise
var confidenceRules = []confidenceRule{
	{
		name: "high",
		match: func(f evidenceFacts) bool {
			return f.total >= 3 && f.official >= 1 && f.thirdParty >= 1 &&
				f.allDatesValid && !f.imputedScores
		},
		level: model.ConfidenceHigh,
	},
	{
		name: "medium",
		match: func(f evidenceFacts) bool {
			return f.total >= 2 && (f.official >= 1 || f.strongThirdParty >= 1) &&
				f.partialDates
		},
		level: model.ConfidenceMedium,
	},
	{
		name:  "low",
		match: func(f evidenceFacts) bool { return true },
		level: model.ConfidenceLow,
	},
}

// ConfidenceInput carries everything the decision needs beyond the evidence
// itself. Ref is the run's reference time; staleness is measured against it
// so repeated runs with pinned metadata stay byte-identical.
type ConfidenceInput struct {
	Evidence     []model.Evidence
	ImputedDims  int
	Ref          time.Time
	PeriodMonths int
}

// Confidence evaluates the decision table for one competitor's evidence set
func Confidence(in ConfidenceInput) model.ConfidenceLevel {
	f := gatherFacts(in)
	for _, r := range confidenceRules {
		if r.match(f) {
			return r.level
		}
	}
	return model.ConfidenceLow
}

func gatherFacts(in ConfidenceInput) evidenceFacts {
	f := evidenceFacts{
		total:         len(in.Evidence),
		imputedScores: in.ImputedDims > 0,
	}

	dated := 0
	allValid := len(in.Evidence) > 0
	for i := range in.Evidence {
		ev := &in.Evidence[i]
		switch {
		case ev.SourceType == model.SourceOfficial:
			f.official++
		case ev.SourceType.IsThirdParty():
			f.thirdParty++
			if ev.SourceType.IsStrongThirdParty() {
				f.strongThirdParty++
			}
		}
		if ev.HasValidAccessDate() {
			dated++
		}
		if !ev.HasValidAccessDate() || ev.IsStale(in.Ref, in.PeriodMonths) {
			allValid = false
		}
	}

	f.allDatesValid = allValid
	f.partialDates = f.total > 0 && dated*2 >= f.total
	return f
}
