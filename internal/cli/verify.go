package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/haowu77/competitive-analysis-skill/internal/cache"
	"github.com/haowu77/competitive-analysis-skill/internal/locale"
	"github.com/haowu77/competitive-analysis-skill/internal/model"
	"github.com/haowu77/competitive-analysis-skill/internal/normalize"
	"github.com/haowu77/competitive-analysis-skill/internal/validate"
)

var (
	verifyInput   string
	verifyTimeout time.Duration
	verifyWorkers int
	verifyRPS     float64
	verifyBurst   int
	verifyUA      string
	noRobots      bool
	fetchTitles   bool
	noCache       bool
	cacheDir      string
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check evidence links for accessibility and staleness",
	Long: `Verify fetches every citation URL in the structured input and reports
dead links, redirects, robots.txt denials, and sources older than the
evidence lookback window. Verification is advisory: it never changes
scores or confidence in a build.

Example:
  compbench verify --input-json competitors.json
  compbench verify --input-json competitors.json --workers 10 --rps 1`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().StringVar(&verifyInput, "input-json", "", "structured input JSON path (required)")
	_ = verifyCmd.MarkFlagRequired("input-json")

	verifyCmd.Flags().DurationVar(&verifyTimeout, "timeout", 10*time.Second, "per-request timeout")
	verifyCmd.Flags().IntVar(&verifyWorkers, "workers", 20, "concurrent verification workers")
	verifyCmd.Flags().Float64Var(&verifyRPS, "rps", 2.0, "max requests per second per domain")
	verifyCmd.Flags().IntVar(&verifyBurst, "burst", 5, "rate limiter burst size")
	verifyCmd.Flags().StringVar(&verifyUA, "ua", "", "HTTP User-Agent (default from config)")
	verifyCmd.Flags().BoolVar(&noRobots, "no-robots", false, "skip robots.txt checks")
	verifyCmd.Flags().BoolVar(&fetchTitles, "fetch-titles", false, "GET pages to fill missing citation titles")
	verifyCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the verification result cache")
	verifyCmd.Flags().StringVar(&cacheDir, "cache-dir", "", "cache directory (default: $HOME/.compbench/cache)")

	verifyCmd.Flags().IntVar(&periodMonths, "period-months", 24, "evidence lookback window in months")
}

func runVerify(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	evidence, err := loadEvidence(verifyInput)
	if err != nil {
		return err
	}
	if len(evidence) == 0 {
		fmt.Println("No citations found in input")
		return nil
	}

	cfg := model.DefaultConfig().Verify
	cfg.Timeout = verifyTimeout
	cfg.Workers = verifyWorkers
	cfg.RequestsPerSecond = verifyRPS
	cfg.BurstSize = verifyBurst
	cfg.RespectRobots = !noRobots
	cfg.FetchTitles = fetchTitles
	if verifyUA != "" {
		cfg.UserAgent = verifyUA
	}

	var store cache.Cache
	if !noCache {
		dir := cacheDir
		if dir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("find home directory: %w", err)
			}
			dir = home + "/.compbench/cache"
		}
		store = cache.NewLayeredCache(cfg.CacheTTL, dir, cfg.CacheTTL)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Verifying %d citations (%d workers, %.1f rps)\n\n",
			len(evidence), cfg.Workers, cfg.RequestsPerSecond)
	}

	verifier := validate.NewVerifier(cfg, periodMonths, store)
	results, err := verifier.Verify(ctx, evidence)
	if err != nil {
		return fmt.Errorf("verify failed: %w", err)
	}

	printVerification(results)
	return nil
}

// loadEvidence normalizes the input file and flattens its citations
func loadEvidence(path string) ([]model.Evidence, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("input %s is not a JSON object: %w", path, model.ErrInvalidInput)
	}

	normalizer := normalize.NewNormalizer(normalize.NewRegistry(), locale.For("en"))
	res, err := normalizer.Normalize(payload)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(res.Evidence))
	for key := range res.Evidence {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var evidence []model.Evidence
	for _, key := range keys {
		evidence = append(evidence, res.Evidence[key]...)
	}
	return evidence, nil
}

func printVerification(results []model.VerificationResult) {
	var ok, dead, stale, denied int
	for _, r := range results {
		switch {
		case r.RobotsDenied:
			denied++
			fmt.Printf("  ROBOTS  %s\n", r.URL)
		case r.IsDead:
			dead++
			fmt.Printf("  DEAD    %s (%s)\n", r.URL, deadReason(r))
		case r.IsStale:
			stale++
			fmt.Printf("  STALE   %s (age %dd)\n", r.URL, ageDays(r))
		case r.IsAccessible:
			ok++
			if verbose {
				fmt.Printf("  OK      %s\n", r.URL)
			}
		default:
			dead++
			fmt.Printf("  FAIL    %s (%s)\n", r.URL, deadReason(r))
		}
	}
	fmt.Printf("\n%d ok, %d dead, %d stale, %d robots-denied of %d checked\n",
		ok, dead, stale, denied, len(results))
}

func deadReason(r model.VerificationResult) string {
	if r.Error != "" {
		return r.Error
	}
	return fmt.Sprintf("HTTP %d", r.StatusCode)
}

func ageDays(r model.VerificationResult) int {
	if r.AgeDays != nil {
		return *r.AgeDays
	}
	return 0
}
