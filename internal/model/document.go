package model

import "time"

// Sheet identifies one of the five canonical tables
type Sheet string

const (
	SheetSummary       Sheet = "summary"
	SheetBenchmark     Sheet = "benchmark"
	SheetFeatureMatrix Sheet = "feature_matrix"
	SheetPricingGTM    Sheet = "pricing_gtm"
	SheetSources       Sheet = "sources"
)

// SheetOrder is the fixed output order of the five tables
var SheetOrder = []Sheet{
	SheetSummary,
	SheetBenchmark,
	SheetFeatureMatrix,
	SheetPricingGTM,
	SheetSources,
}

// Row maps canonical column keys to cell values
type Row map[string]any

// Table is one assembled output table: a localized name, localized headers in
// canonical column order, and data rows keyed by canonical column
type Table struct {
	Sheet   Sheet    `json:"sheet"`
	Name    string   `json:"name"`    // Localized sheet name
	Columns []string `json:"columns"` // Canonical column keys, fixed order
	Headers []string `json:"headers"` // Localized headers, same order as Columns
	Rows    []Row    `json:"rows"`
}

// RunMeta carries the per-run configuration echoed into the artifact
type RunMeta struct {
	Region       string    `json:"region"`
	TopN         int       `json:"top_n"`
	PeriodMonths int       `json:"period_months"`
	Locale       string    `json:"locale"`
	GeneratedAt  time.Time `json:"generated_at"`
}

// Warning is a non-fatal, localized note about a skipped row or weak evidence
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// BenchmarkDocument is the final artifact: five tables in fixed order plus
// run metadata. Created once per invocation and never mutated after assembly.
type BenchmarkDocument struct {
	Meta     RunMeta   `json:"meta"`
	Tables   []Table   `json:"tables"`
	Warnings []Warning `json:"warnings,omitempty"`

	// Narrative is the optional LLM-written positioning commentary. It is
	// generated after assembly and never affects scores or table contents.
	Narrative *Narrative `json:"narrative,omitempty"`
}

// TableFor returns the assembled table for the given sheet, or nil
func (d *BenchmarkDocument) TableFor(sheet Sheet) *Table {
	for i := range d.Tables {
		if d.Tables[i].Sheet == sheet {
			return &d.Tables[i]
		}
	}
	return nil
}

// Narrative contains optional LLM-generated commentary.
// It never affects scoring, ranking, or classification.
type Narrative struct {
	Enabled        bool     `json:"enabled"`
	Provider       string   `json:"provider,omitempty"`
	Model          string   `json:"model,omitempty"`
	StrictEvidence bool     `json:"strict_evidence"`
	SummaryMD      string   `json:"summary_md,omitempty"`
	Warnings       []string `json:"warnings,omitempty"` // Citation leaks and similar issues
}
