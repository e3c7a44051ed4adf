package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/haowu77/competitive-analysis-skill/internal/model"
)

// Builder defines the interface for building one benchmark from an input file
type Builder interface {
	BuildFile(ctx context.Context, inputPath string) (*model.BenchmarkDocument, error)
}

// BuildJob builds one benchmark document from a structured input file
type BuildJob struct {
	InputPath string
	Builder   Builder
}

// Execute executes the build job
func (j *BuildJob) Execute(ctx context.Context) Result {
	doc, err := j.Builder.BuildFile(ctx, j.InputPath)
	return &BuildResult{
		InputPath: j.InputPath,
		Document:  doc,
		Error:     err,
	}
}

// BuildResult represents the result of a build job
type BuildResult struct {
	InputPath string
	Document  *model.BenchmarkDocument
	Error     error
}

// GetError returns the error from the build result
func (r *BuildResult) GetError() error {
	return r.Error
}

// BatchProcessor builds multiple benchmark inputs concurrently
type BatchProcessor struct {
	builder     Builder
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(builder Builder, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		builder:     builder,
		concurrency: concurrency,
	}
}

// ProcessPaths builds all input files concurrently
func (b *BatchProcessor) ProcessPaths(ctx context.Context, paths []string) []*BuildResult {
	if len(paths) == 0 {
		return []*BuildResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, path := range paths {
		pool.Submit(&BuildJob{
			InputPath: path,
			Builder:   b.builder,
		})
	}

	results := pool.Wait()

	buildResults := make([]*BuildResult, len(results))
	for i, result := range results {
		buildResults[i] = result.(*BuildResult)
	}
	return buildResults
}

// ProcessFile reads input paths from a list file and builds them concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, listPath string) ([]*BuildResult, error) {
	paths, err := ReadPathsFromFile(listPath)
	if err != nil {
		return nil, fmt.Errorf("read input list: %w", err)
	}
	return b.ProcessPaths(ctx, paths), nil
}

// ReadPathsFromFile reads input file paths from a list file (one per line)
func ReadPathsFromFile(listPath string) ([]string, error) {
	file, err := os.Open(listPath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var paths []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !seen[line] {
			seen[line] = true
			paths = append(paths, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return paths, nil
}
