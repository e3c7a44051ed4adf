package validate

import (
	"testing"
	"time"

	"github.com/haowu77/competitive-analysis-skill/internal/model"
)

var confRef = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

func ev(st model.SourceType, accessDate time.Time) model.Evidence {
	return model.Evidence{
		Product:    "Acme",
		SourceType: st,
		URL:        "https://example.com",
		AccessDate: accessDate,
	}
}

func fresh() time.Time { return confRef.AddDate(0, -1, 0) }

func TestConfidence_High(t *testing.T) {
	got := Confidence(ConfidenceInput{
		Evidence: []model.Evidence{
			ev(model.SourceOfficial, fresh()),
			ev(model.SourceReview, fresh()),
			ev(model.SourceMedia, fresh()),
		},
		Ref:          confRef,
		PeriodMonths: 24,
	})
	if got != model.ConfidenceHigh {
		t.Errorf("expected high, got %s", got)
	}
}

func TestConfidence_ImputedScoresBlockHigh(t *testing.T) {
	in := ConfidenceInput{
		Evidence: []model.Evidence{
			ev(model.SourceOfficial, fresh()),
			ev(model.SourceReview, fresh()),
			ev(model.SourceMedia, fresh()),
		},
		ImputedDims:  1,
		Ref:          confRef,
		PeriodMonths: 24,
	}
	if got := Confidence(in); got != model.ConfidenceMedium {
		t.Errorf("expected medium when scores were imputed, got %s", got)
	}
}

func TestConfidence_MissingOfficialDowngrades(t *testing.T) {
	got := Confidence(ConfidenceInput{
		Evidence: []model.Evidence{
			ev(model.SourceReview, fresh()),
			ev(model.SourceResearch, fresh()),
			ev(model.SourceMedia, fresh()),
		},
		Ref:          confRef,
		PeriodMonths: 24,
	})
	if got != model.ConfidenceMedium {
		t.Errorf("expected medium without an official source, got %s", got)
	}
}

func TestConfidence_StaleEvidenceBlocksHigh(t *testing.T) {
	stale := confRef.AddDate(0, -30, 0) // Outside a 24-month window
	got := Confidence(ConfidenceInput{
		Evidence: []model.Evidence{
			ev(model.SourceOfficial, stale),
			ev(model.SourceReview, fresh()),
			ev(model.SourceMedia, fresh()),
		},
		Ref:          confRef,
		PeriodMonths: 24,
	})
	if got != model.ConfidenceMedium {
		t.Errorf("expected medium with stale evidence, got %s", got)
	}
}

func TestConfidence_MediumRequiresAnchor(t *testing.T) {
	// Two weak third-party sources: no official, no strong third-party.
	got := Confidence(ConfidenceInput{
		Evidence: []model.Evidence{
			ev(model.SourceMedia, fresh()),
			ev(model.SourceStore, fresh()),
		},
		Ref:          confRef,
		PeriodMonths: 24,
	})
	if got != model.ConfidenceLow {
		t.Errorf("expected low without an anchoring source, got %s", got)
	}

	// Swapping one for a review gives a strong third-party anchor.
	got = Confidence(ConfidenceInput{
		Evidence: []model.Evidence{
			ev(model.SourceMedia, fresh()),
			ev(model.SourceReview, fresh()),
		},
		Ref:          confRef,
		PeriodMonths: 24,
	})
	if got != model.ConfidenceMedium {
		t.Errorf("expected medium with a review anchor, got %s", got)
	}
}

func TestConfidence_PartialDates(t *testing.T) {
	// Official + review, but only one of two carries an access date: the
	// half-dated threshold still holds.
	got := Confidence(ConfidenceInput{
		Evidence: []model.Evidence{
			ev(model.SourceOfficial, fresh()),
			ev(model.SourceReview, time.Time{}),
		},
		Ref:          confRef,
		PeriodMonths: 24,
	})
	if got != model.ConfidenceMedium {
		t.Errorf("expected medium with half-dated evidence, got %s", got)
	}

	// One of three dated falls below half.
	got = Confidence(ConfidenceInput{
		Evidence: []model.Evidence{
			ev(model.SourceOfficial, fresh()),
			ev(model.SourceReview, time.Time{}),
			ev(model.SourceMedia, time.Time{}),
		},
		Ref:          confRef,
		PeriodMonths: 24,
	})
	if got != model.ConfidenceLow {
		t.Errorf("expected low below the dated threshold, got %s", got)
	}
}

func TestConfidence_Empty(t *testing.T) {
	got := Confidence(ConfidenceInput{Ref: confRef, PeriodMonths: 24})
	if got != model.ConfidenceLow {
		t.Errorf("expected low for no evidence, got %s", got)
	}
}

func TestConfidence_SingleSource(t *testing.T) {
	got := Confidence(ConfidenceInput{
		Evidence:     []model.Evidence{ev(model.SourceOfficial, fresh())},
		Ref:          confRef,
		PeriodMonths: 24,
	})
	if got != model.ConfidenceLow {
		t.Errorf("expected low for a single source, got %s", got)
	}
}
