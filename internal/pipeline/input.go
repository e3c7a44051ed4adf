package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/haowu77/competitive-analysis-skill/internal/model"
)

// LoadPayload reads a structured input file. An empty path yields an empty
// payload (brief-only mode).
func LoadPayload(path string) (map[string]any, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("input %s is not a JSON object: %w", path, model.ErrInvalidInput)
	}
	return payload, nil
}

// BuildFile loads a structured input file and runs the full synthesis.
// Used by the batch processor; brief-only runs go through Build directly.
func (p *Pipeline) BuildFile(ctx context.Context, inputPath string) (*model.BenchmarkDocument, error) {
	payload, err := LoadPayload(inputPath)
	if err != nil {
		return nil, err
	}
	return p.Build(ctx, BuildRequest{Payload: payload})
}
