package llm

import (
	"context"
	"fmt"

	"github.com/haowu77/competitive-analysis-skill/internal/model"
)

// Summarizer wraps a provider and turns a finished benchmark document into
// an optional narrative. A nil provider means the feature is disabled.
type Summarizer struct {
	provider Provider
	config   Config
}

// NewSummarizer creates a summarizer from the LLM configuration. Returns an
// error only when a provider was requested but could not be constructed.
func NewSummarizer(modelConfig model.LLMConfig) (*Summarizer, error) {
	config := ConfigFromModel(modelConfig)
	provider, err := NewProvider(config)
	if err != nil {
		return nil, fmt.Errorf("create LLM provider: %w", err)
	}
	return &Summarizer{provider: provider, config: config}, nil
}

// IsEnabled reports whether a provider is configured
func (s *Summarizer) IsEnabled() bool {
	return s != nil && s.provider != nil
}

// Narrative generates positioning commentary for the document. The evidence
// URL allowlist is built from the Sources table, so the narrative can only
// cite what the run itself cited.
func (s *Summarizer) Narrative(ctx context.Context, brief string, doc *model.BenchmarkDocument) (*model.Narrative, error) {
	if !s.IsEnabled() {
		return nil, nil
	}

	resp, err := s.provider.Summarize(ctx, SummarizeRequest{
		Brief:        brief,
		Document:     doc,
		EvidenceURLs: EvidenceURLs(doc),
		Model:        s.config.Model,
		MaxTokens:    s.config.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	return &model.Narrative{
		Enabled:        true,
		Provider:       s.provider.Name(),
		Model:          resp.Model,
		StrictEvidence: s.config.StrictEvidence,
		SummaryMD:      resp.Summary,
	}, nil
}

// EvidenceURLs collects the unique citation URLs from the Sources table, in
// table order
func EvidenceURLs(doc *model.BenchmarkDocument) []string {
	sources := doc.TableFor(model.SheetSources)
	if sources == nil {
		return nil
	}
	seen := make(map[string]bool)
	var urls []string
	for _, row := range sources.Rows {
		url, ok := row["url"].(string)
		if !ok || url == "" || seen[url] {
			continue
		}
		seen[url] = true
		urls = append(urls, url)
	}
	return urls
}
