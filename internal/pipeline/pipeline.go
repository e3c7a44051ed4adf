// Package pipeline orchestrates a complete benchmark synthesis run:
// locale resolution, normalization, classification, scoring, confidence
// rating, and table assembly.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/haowu77/competitive-analysis-skill/internal/assemble"
	"github.com/haowu77/competitive-analysis-skill/internal/classify"
	"github.com/haowu77/competitive-analysis-skill/internal/llm"
	"github.com/haowu77/competitive-analysis-skill/internal/locale"
	"github.com/haowu77/competitive-analysis-skill/internal/model"
	"github.com/haowu77/competitive-analysis-skill/internal/normalize"
	"github.com/haowu77/competitive-analysis-skill/internal/score"
	"github.com/haowu77/competitive-analysis-skill/internal/validate"
)

// Pipeline runs the synthesis steps in fixed order. Identical input and
// configuration always produce an identical document, except for the
// generated-at timestamp and the optional LLM narrative.
type Pipeline struct {
	config     *model.Config
	registry   *normalize.Registry
	summarizer *llm.Summarizer // Optional narrative generator (nil if disabled)

	// now is the clock used for RunMeta and staleness checks; overridable
	// in tests for reproducible output
	now func() time.Time
}

// NewPipeline creates a pipeline with the given configuration
func NewPipeline(cfg *model.Config) *Pipeline {
	var summarizer *llm.Summarizer
	if cfg.LLM.Provider != "" {
		s, err := llm.NewSummarizer(cfg.LLM)
		if err != nil {
			if cfg.Output.Verbose {
				fmt.Fprintf(os.Stderr, "Warning: Failed to initialize LLM provider: %v\n", err)
			}
		} else {
			summarizer = s
		}
	}

	return &Pipeline{
		config:     cfg,
		registry:   normalize.NewRegistry(),
		summarizer: summarizer,
		now:        time.Now,
	}
}

// BuildRequest is one synthesis invocation: a free-text brief, a structured
// payload, or both. At least one must be present.
type BuildRequest struct {
	Brief   string
	Payload map[string]any
}

// Build runs the full synthesis and returns the assembled document
func (p *Pipeline) Build(ctx context.Context, req BuildRequest) (*model.BenchmarkDocument, error) {
	if strings.TrimSpace(req.Brief) == "" && len(req.Payload) == 0 {
		return nil, fmt.Errorf("neither brief nor structured input provided: %w", model.ErrInvalidInput)
	}

	// 1. Resolve the output locale
	resolver := locale.NewResolver(p.config.Run.LangSource)
	explicit := p.config.Run.Lang
	if explicit == "auto" {
		explicit = ""
	}
	code, err := resolver.Resolve(explicit, req.Brief, detectionText(req.Payload))
	if err != nil {
		return nil, err
	}
	labels := locale.For(code)

	// 2. Build the rubric
	rubric, err := score.NewRubric(p.config.Run.Weights)
	if err != nil {
		return nil, err
	}
	scorer := score.NewScorer(rubric)

	// 3. Normalize the structured input
	normalizer := normalize.NewNormalizer(p.registry, labels)
	norm, err := normalizer.Normalize(req.Payload)
	if err != nil {
		return nil, err
	}

	generatedAt := p.now().UTC()
	meta := model.RunMeta{
		Region:       p.config.Run.Region,
		TopN:         p.config.Run.TopN,
		PeriodMonths: p.config.Run.PeriodMonths,
		Locale:       code,
		GeneratedAt:  generatedAt,
	}

	// 4. Classify, score, and rate every draft
	classifier := classify.NewClassifier(p.registry, referenceFrom(req.Brief, norm))
	competitors := make([]model.Competitor, 0, len(norm.Drafts))
	for i := range norm.Drafts {
		d := &norm.Drafts[i]
		d.Competitor.Category = classifier.Classify(d)

		res := scorer.Score(d.RawScores)
		d.Competitor.Scores = res.Scores
		d.Competitor.Imputed = res.Imputed
		d.Competitor.WeightedTotal = res.Total

		d.Competitor.Confidence = validate.Confidence(validate.ConfidenceInput{
			Evidence:     d.Competitor.Evidence,
			ImputedDims:  len(d.Competitor.Imputed),
			Ref:          generatedAt,
			PeriodMonths: p.config.Run.PeriodMonths,
		})

		competitors = append(competitors, d.Competitor)
	}

	// 5. Assemble the five tables
	assembler := assemble.New(labels)
	doc, err := assembler.Assemble(assemble.Input{
		Brief:       req.Brief,
		Meta:        meta,
		MinEvidence: p.config.Run.MinEvidence,
		Competitors: competitors,
		SummaryRows: norm.SummaryRows,
		FeatureRows: norm.FeatureRows,
		PricingRows: norm.PricingRows,
		Warnings:    norm.Warnings,
	})
	if err != nil {
		return nil, err
	}

	// 6. Generate the narrative if enabled (after assembly, never affects tables)
	if p.summarizer != nil && p.summarizer.IsEnabled() {
		narrative, err := p.summarizer.Narrative(ctx, req.Brief, doc)
		if err != nil {
			if p.config.Output.Verbose {
				fmt.Fprintf(os.Stderr, "Warning: LLM narrative generation failed: %v\n", err)
			}
		} else if narrative != nil {
			doc.Narrative = narrative
		}
	}

	return doc, nil
}

// detectionText serializes the payload for language detection. Marshal order
// is deterministic (encoding/json sorts map keys).
func detectionText(payload map[string]any) string {
	if len(payload) == 0 {
		return ""
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return ""
	}
	return string(b)
}

// referenceFrom derives the classifier's reference offering from the brief
// and any summary rows the caller supplied
func referenceFrom(brief string, norm *normalize.Result) *classify.Reference {
	var jtbd, segment []string
	if brief != "" {
		jtbd = append(jtbd, brief)
	}
	for _, row := range norm.SummaryRows {
		for _, key := range []string{"problem_statement", "top_findings"} {
			if s, ok := row[key].(string); ok && s != "" {
				jtbd = append(jtbd, s)
			}
		}
		if s, ok := row["target_segment"].(string); ok && s != "" {
			segment = append(segment, s)
		}
	}
	return classify.NewReference(
		strings.Join(jtbd, " "),
		strings.Join(segment, " "),
		brief,
	)
}
