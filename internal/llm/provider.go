// Package llm generates the optional positioning narrative for a finished
// benchmark document. The narrative is commentary only: it runs after
// assembly and never feeds back into scores, ranking, or classification.
package llm

import (
	"context"
	"fmt"

	"github.com/haowu77/competitive-analysis-skill/internal/model"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Summarize generates a positioning narrative with strict evidence mode
	Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// SummarizeRequest contains the input for narrative generation
type SummarizeRequest struct {
	// Brief is the user's requirement brief, when one was provided
	Brief string

	// Document is the assembled benchmark to comment on
	Document *model.BenchmarkDocument

	// EvidenceURLs is the STRICT allowlist of URLs the LLM can cite.
	// The LLM cannot reference any URL not in this list.
	EvidenceURLs []string

	// Prompt overrides the default prompt when non-empty
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// SummarizeResponse contains the LLM's narrative output
type SummarizeResponse struct {
	// Summary is the generated narrative in Markdown
	Summary string

	// CitedURLs are the URLs the LLM actually cited (for verification)
	CitedURLs []string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests, in seconds
	Timeout int

	// StrictEvidence enforces the URL allowlist (should always be true)
	StrictEvidence bool

	// MaxTokens for response generation
	MaxTokens int
}

// BuildPrompt constructs the default narrative prompt with strict evidence mode
func BuildPrompt(req SummarizeRequest) string {
	doc := req.Document

	prompt := fmt.Sprintf(`You are writing positioning commentary for a competitive benchmark. The scores and ranking are already final - you comment on them, you never change them.

CRITICAL RULES:
1. You MUST ONLY cite URLs from this allowed list:
%s

2. DO NOT infer, speculate, or cite external sources beyond this list.
3. If evidence for a point is thin, say so explicitly.
4. Do not invent competitors, scores, or facts not present in the tables below.
5. Write 3-5 sentences of Markdown: where the strongest threats are, where the gaps are, and what to watch.

`, joinURLs(req.EvidenceURLs))

	if req.Brief != "" {
		prompt += fmt.Sprintf("Requirement brief:\n%s\n\n", req.Brief)
	}

	prompt += "Ranked benchmark:\n"
	if bench := doc.TableFor(model.SheetBenchmark); bench != nil {
		for _, row := range bench.Rows {
			prompt += fmt.Sprintf("- #%v %v (%v): total %v, threat %v\n",
				row["rank"], row["company_product"], row["category"],
				row["weighted_total"], row["threat_level"])
		}
	}

	if len(doc.Warnings) > 0 {
		prompt += "\nData quality warnings:\n"
		for i, w := range doc.Warnings {
			if i >= 10 {
				prompt += fmt.Sprintf("... and %d more\n", len(doc.Warnings)-10)
				break
			}
			prompt += fmt.Sprintf("- %s\n", w.Message)
		}
	}

	return prompt
}

func joinURLs(urls []string) string {
	if len(urls) == 0 {
		return "(No evidence URLs available)"
	}
	result := ""
	for i, url := range urls {
		if i >= 20 { // Limit to first 20 to avoid token bloat
			result += fmt.Sprintf("\n... and %d more URLs", len(urls)-20)
			break
		}
		result += fmt.Sprintf("\n- %s", url)
	}
	return result
}
