package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/haowu77/competitive-analysis-skill/internal/model"
	"github.com/haowu77/competitive-analysis-skill/internal/pipeline"
)

var (
	inputJSON    string
	brief        string
	region       string
	topN         int
	periodMonths int
	minEvidence  int
	weightsRaw   string
	lang         string
	langSource   string
	outJSON      string
	outXLSX      string
	buildTimeout time.Duration
	llmEnabled   bool
	llmProvider  string
	llmModel     string
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a competitive benchmark from a brief and/or structured input",
	Long: `Build synthesizes the five benchmark tables from the given inputs:
- Normalizes competitor rows (alias-tolerant keys, localized headers)
- Classifies each competitor as Direct, Adjacent, or Substitute
- Scores six dimensions on a 1-5 rubric and computes the weighted total
- Rates evidence confidence and drops under-sourced competitors
- Ranks, caps at top-N, and assembles the fixed table set

Example:
  compbench build --brief "note-taking app for students" --xlsx benchmark.xlsx
  compbench build --input-json competitors.json --json benchmark.json
  compbench build --input-json competitors.json --lang ja --weights 10,40,10,20,10,10`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)

	// Input flags
	buildCmd.Flags().StringVar(&inputJSON, "input-json", "", "structured input JSON path")
	buildCmd.Flags().StringVar(&brief, "brief", "", "requirement brief")

	// Run flags
	buildCmd.Flags().StringVar(&region, "region", "global", "target region")
	buildCmd.Flags().IntVar(&topN, "top-n", 8, "competitor count cap")
	buildCmd.Flags().IntVar(&periodMonths, "period-months", 24, "evidence lookback window in months")
	buildCmd.Flags().IntVar(&minEvidence, "min-evidence", 2, "minimum sources per competitor")
	buildCmd.Flags().StringVar(&weightsRaw, "weights", "", "six rubric weights: traction,capability,monetization,sentiment,execution,evidence")
	buildCmd.Flags().StringVar(&lang, "lang", "auto", "output language (auto, en, zh, ja, ko, es, fr, de)")
	buildCmd.Flags().StringVar(&langSource, "lang-source", "both", "text source for language detection (brief, input, both)")

	// Output flags
	buildCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path")
	buildCmd.Flags().StringVar(&outXLSX, "xlsx", "benchmark.xlsx", "output XLSX path")
	buildCmd.Flags().DurationVar(&buildTimeout, "timeout", 2*time.Minute, "overall build timeout")

	// LLM flags
	buildCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM narrative generation")
	buildCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	buildCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name")
}

func runBuild(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), buildTimeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	payload, err := pipeline.LoadPayload(inputJSON)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Region: %s | Top-N: %d | Window: %dm\n", region, topN, periodMonths)
		fmt.Fprintf(os.Stderr, "Language: %s (source: %s)\n", lang, langSource)
		fmt.Fprintln(os.Stderr)
	}

	p := pipeline.NewPipeline(cfg)
	doc, err := p.Build(ctx, pipeline.BuildRequest{Brief: brief, Payload: payload})
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	if verbose {
		bench := doc.TableFor(model.SheetBenchmark)
		fmt.Fprintf(os.Stderr, "✓ Resolved locale: %s\n", doc.Meta.Locale)
		if bench != nil {
			fmt.Fprintf(os.Stderr, "✓ Ranked %d competitors\n", len(bench.Rows))
		}
		fmt.Fprintf(os.Stderr, "✓ %d warnings\n", len(doc.Warnings))
		fmt.Fprintln(os.Stderr)
	}

	renderer := pipeline.NewRenderer()
	if err := renderer.RenderOutputs(doc, outJSON, outXLSX, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}

// buildConfig assembles the run configuration from flags
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	cfg.Run.Region = region
	cfg.Run.TopN = topN
	cfg.Run.PeriodMonths = periodMonths
	cfg.Run.MinEvidence = minEvidence
	cfg.Run.Lang = lang
	cfg.Run.LangSource = langSource
	cfg.Output.Verbose = verbose

	if weightsRaw != "" {
		weights, err := parseWeights(weightsRaw)
		if err != nil {
			return nil, err
		}
		cfg.Run.Weights = weights
	}

	if llmEnabled {
		cfg.LLM.Provider = llmProvider
		cfg.LLM.Model = llmModel
		cfg.LLM.StrictEvidence = true // Always enforce

		switch llmProvider {
		case "openai":
			if os.Getenv("OPENAI_API_KEY") == "" {
				return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
			}
		case "anthropic", "claude":
			if os.Getenv("ANTHROPIC_API_KEY") == "" {
				return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
			}
		case "ollama":
			if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
				cfg.LLM.BaseURL = baseURL
			}
		}
	}

	return cfg, nil
}

// parseWeights parses six comma-separated rubric weights
func parseWeights(raw string) ([]float64, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 6 {
		return nil, fmt.Errorf("--weights must contain exactly 6 numbers, got %d", len(parts))
	}
	weights := make([]float64, 6)
	for i, part := range parts {
		w, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("--weights entry %q is not a number", strings.TrimSpace(part))
		}
		weights[i] = w
	}
	return weights, nil
}
