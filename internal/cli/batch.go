package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/haowu77/competitive-analysis-skill/internal/model"
	"github.com/haowu77/competitive-analysis-skill/internal/pipeline"
	"github.com/haowu77/competitive-analysis-skill/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Build benchmarks for multiple input files in parallel",
	Long: `Batch builds multiple structured inputs concurrently:
- Read input JSON paths from a list file (one per line)
- Build each benchmark in parallel with a configurable worker count
- Write one JSON and one XLSX workbook per input

Example:
  compbench batch inputs.txt
  compbench batch inputs.txt --concurrency 4 --output-dir ./benchmarks`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./compbench-reports", "output directory for benchmarks")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	fmt.Fprintf(os.Stderr, "Input list: %s\n", file)
	fmt.Fprintf(os.Stderr, "Workers:    %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "Output dir: %s\n\n", outputDir)

	cfg := model.DefaultConfig()
	cfg.Output.Verbose = verbose

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	p := pipeline.NewPipeline(cfg)
	processor := worker.NewBatchProcessor(p, concurrency)

	results, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	renderer := pipeline.NewRenderer()
	successCount := 0
	failureCount := 0

	for _, result := range results {
		if result.Error != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.InputPath, result.Error)
			continue
		}

		slug := outputSlug(result.InputPath)
		jsonPath := filepath.Join(outputDir, slug+".json")
		xlsxPath := filepath.Join(outputDir, slug+".xlsx")

		if err := renderer.RenderJSON(result.Document, jsonPath); err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: failed to write JSON: %v\n", result.InputPath, err)
			continue
		}
		if err := renderer.RenderXLSX(result.Document, xlsxPath); err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: failed to write XLSX: %v\n", result.InputPath, err)
			continue
		}

		successCount++
		fmt.Fprintf(os.Stderr, "✓ %s (locale %s, %d warnings)\n",
			result.InputPath, result.Document.Meta.Locale, len(result.Document.Warnings))
	}

	fmt.Fprintf(os.Stderr, "\n%d of %d built, %d failed, output in %s\n",
		successCount, len(results), failureCount, outputDir)

	return nil
}

// outputSlug derives an output file stem from an input path
func outputSlug(inputPath string) string {
	base := filepath.Base(inputPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." {
		base = "benchmark"
	}
	if len(base) > 100 {
		base = base[:100]
	}
	return base
}
