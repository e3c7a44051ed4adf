package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/haowu77/competitive-analysis-skill/internal/export"
	"github.com/haowu77/competitive-analysis-skill/internal/locale"
	"github.com/haowu77/competitive-analysis-skill/internal/model"
)

// Renderer writes the assembled document to its output targets
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderJSON writes the document as indented JSON
func (r *Renderer) RenderJSON(doc *model.BenchmarkDocument, path string) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write JSON: %w", err)
	}
	return nil
}

// RenderXLSX writes the document as an XLSX workbook
func (r *Renderer) RenderXLSX(doc *model.BenchmarkDocument, path string) error {
	if err := export.WriteXLSXFile(path, doc); err != nil {
		return fmt.Errorf("write XLSX: %w", err)
	}
	return nil
}

// RenderOutputs writes all configured targets and prints the run summary
func (r *Renderer) RenderOutputs(doc *model.BenchmarkDocument, jsonPath, xlsxPath string, verbose bool) error {
	if jsonPath != "" {
		if err := r.RenderJSON(doc, jsonPath); err != nil {
			return err
		}
		if verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", jsonPath)
		}
	}
	if xlsxPath != "" {
		if err := r.RenderXLSX(doc, xlsxPath); err != nil {
			return err
		}
		if verbose {
			fmt.Printf("✓ Wrote XLSX: %s\n", xlsxPath)
		}
	}
	r.RenderSummary(doc)
	return nil
}

// RenderSummary prints a short run report to stdout
func (r *Renderer) RenderSummary(doc *model.BenchmarkDocument) {
	labels := locale.For(doc.Meta.Locale)

	bench := doc.TableFor(model.SheetBenchmark)
	sources := doc.TableFor(model.SheetSources)

	fmt.Printf("Locale: %s | Region: %s | Window: %dm\n",
		doc.Meta.Locale, doc.Meta.Region, doc.Meta.PeriodMonths)
	if bench != nil {
		fmt.Printf("Competitors: %d (top %d)\n", len(bench.Rows), doc.Meta.TopN)
		for _, row := range bench.Rows {
			fmt.Printf("  %v. %v  %v  %v  [%v]\n",
				row["rank"], row["company_product"], row["category"],
				row["weighted_total"], row["threat_level"])
		}
	}
	if sources != nil {
		fmt.Printf("Citations: %d\n", len(sources.Rows))
	}

	if len(doc.Warnings) > 0 {
		fmt.Println(labels.Warning("title"))
		for _, w := range doc.Warnings {
			fmt.Printf("  %s\n", w.Message)
		}
	}

	if doc.Narrative != nil && doc.Narrative.Enabled {
		fmt.Printf("Narrative: %s/%s\n", doc.Narrative.Provider, doc.Narrative.Model)
	}
}
