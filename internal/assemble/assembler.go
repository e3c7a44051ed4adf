// Package assemble builds the final five-table benchmark document from
// classified, scored competitors and the pass-through input rows.
package assemble

import (
	"fmt"
	"sort"
	"time"

	"github.com/haowu77/competitive-analysis-skill/internal/locale"
	"github.com/haowu77/competitive-analysis-skill/internal/model"
)

// Threat derivation thresholds on the 0-5 weighted-total scale
const (
	threatHighMin   = 3.75
	threatMediumMin = 2.75
)

// Input carries everything the assembler needs for one run. Competitors must
// already be classified, scored, and confidence-rated.
type Input struct {
	Brief       string
	Meta        model.RunMeta
	MinEvidence int
	Competitors []model.Competitor
	SummaryRows []model.Row
	FeatureRows []model.Row
	PricingRows []model.Row
	Warnings    []model.Warning
}

// Assembler turns a run's intermediate state into the fixed five-table
// document. All display strings come from the label map; the assembler never
// hardcodes a header or enum value.
type Assembler struct {
	labels *locale.Labels
}

func New(labels *locale.Labels) *Assembler {
	return &Assembler{labels: labels}
}

// Assemble builds the document. The five tables always appear, in fixed
// order, even when empty. Summary always carries exactly three rows.
func (a *Assembler) Assemble(in Input) (*model.BenchmarkDocument, error) {
	doc := &model.BenchmarkDocument{
		Meta:     in.Meta,
		Warnings: append([]model.Warning{}, in.Warnings...),
	}

	kept := a.filterByEvidence(in.Competitors, in.MinEvidence, doc)
	if len(in.Competitors) > 0 && len(kept) == 0 {
		return nil, fmt.Errorf("no competitor met the minimum of %d sources: %w",
			in.MinEvidence, model.ErrInsufficientData)
	}

	ranked := rank(kept, in.Meta.TopN)
	for i := range ranked {
		a.deriveThreat(&ranked[i])
	}
	a.addEvidenceWarnings(ranked, doc)

	doc.Tables = []model.Table{
		a.summaryTable(in),
		a.benchmarkTable(ranked),
		a.featureMatrixTable(in.FeatureRows),
		a.pricingTable(in.PricingRows),
		a.sourcesTable(ranked),
	}
	return doc, nil
}

// filterByEvidence drops competitors below the evidence minimum, recording a
// localized warning per dropped row
func (a *Assembler) filterByEvidence(in []model.Competitor, minEvidence int, doc *model.BenchmarkDocument) []model.Competitor {
	kept := make([]model.Competitor, 0, len(in))
	for _, c := range in {
		if len(c.Evidence) < minEvidence {
			doc.Warnings = append(doc.Warnings, model.Warning{
				Code: "dropped_evidence",
				Message: fmt.Sprintf(a.labels.Warning("dropped_evidence"),
					c.Name, len(c.Evidence), minEvidence),
			})
			continue
		}
		kept = append(kept, c)
	}
	return kept
}

// rank orders by category priority, then weighted total descending, then name
// ascending for a stable total order, and caps at topN
func rank(in []model.Competitor, topN int) []model.Competitor {
	out := append([]model.Competitor{}, in...)
	sort.SliceStable(out, func(i, j int) bool {
		if pi, pj := out[i].Category.Priority(), out[j].Category.Priority(); pi != pj {
			return pi < pj
		}
		if out[i].WeightedTotal != out[j].WeightedTotal {
			return out[i].WeightedTotal > out[j].WeightedTotal
		}
		return out[i].Name < out[j].Name
	})
	if topN > 0 && len(out) > topN {
		out = out[:topN]
	}
	return out
}

// deriveThreat fills an absent threat level from the weighted total. Derived
// High is capped to Medium unless the evidence confidence is High; an input
// that stated its own threat level is left alone.
func (a *Assembler) deriveThreat(c *model.Competitor) {
	if c.Threat != "" {
		return
	}
	switch {
	case c.WeightedTotal >= threatHighMin:
		c.Threat = model.ThreatHigh
	case c.WeightedTotal >= threatMediumMin:
		c.Threat = model.ThreatMedium
	default:
		c.Threat = model.ThreatLow
	}
	if c.Threat == model.ThreatHigh && c.Confidence != model.ConfidenceHigh {
		c.Threat = model.ThreatMedium
	}
}

// addEvidenceWarnings reports weak sourcing per kept competitor: fewer than
// three citations, no official source, no third-party source
func (a *Assembler) addEvidenceWarnings(ranked []model.Competitor, doc *model.BenchmarkDocument) {
	for _, c := range ranked {
		var official, third bool
		for _, ev := range c.Evidence {
			if ev.SourceType == model.SourceOfficial {
				official = true
			}
			if ev.SourceType.IsThirdParty() {
				third = true
			}
		}
		if len(c.Evidence) < 3 {
			doc.Warnings = append(doc.Warnings, model.Warning{
				Code:    "sources_lt3",
				Message: fmt.Sprintf(a.labels.Warning("sources_lt3"), c.Name),
			})
		}
		if !official {
			doc.Warnings = append(doc.Warnings, model.Warning{
				Code:    "missing_official",
				Message: fmt.Sprintf(a.labels.Warning("missing_official"), c.Name),
			})
		}
		if !third {
			doc.Warnings = append(doc.Warnings, model.Warning{
				Code:    "missing_third",
				Message: fmt.Sprintf(a.labels.Warning("missing_third"), c.Name),
			})
		}
	}
}

// summaryTable builds the three fixed template rows. The first row's top
// findings cell is replaced by the brief when one was supplied. Input summary
// rows, when present, override template cells positionally.
func (a *Assembler) summaryTable(in Input) model.Table {
	t := a.newTable(model.SheetSummary)
	scope := scopeText(in)
	for i, tpl := range a.labels.SummaryTemplates {
		row := model.Row{
			"problem_statement":      tpl.ProblemStatement,
			"target_segment":         tpl.TargetSegment,
			"method":                 tpl.Method,
			"scope":                  scope,
			"top_findings":           tpl.TopFindings,
			"strategic_implications": tpl.StrategicImplications,
		}
		if i == 0 && in.Brief != "" {
			row["top_findings"] = in.Brief
		}
		if i < len(in.SummaryRows) {
			for _, col := range t.Columns {
				if v, ok := in.SummaryRows[i][col]; ok && v != "" && v != nil {
					row[col] = v
				}
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// scopeText describes the run parameters in the Summary scope column
func scopeText(in Input) string {
	parts := ""
	if in.Brief != "" {
		parts = "brief provided; "
	}
	return fmt.Sprintf("%sregion=%s; top_n=%d; window=%dm",
		parts, in.Meta.Region, in.Meta.TopN, in.Meta.PeriodMonths)
}

func (a *Assembler) benchmarkTable(ranked []model.Competitor) model.Table {
	t := a.newTable(model.SheetBenchmark)
	for i, c := range ranked {
		row := model.Row{
			"rank":            i + 1,
			"company_product": c.Name,
			"category":        a.labels.Enum("category", string(c.Category)),
			"target_user":     c.TargetUser,
			"core_jtbd":       c.CoreJTBD,
			"platform":        c.Platform,
			"geo_focus":       c.GeoFocus,
			"weighted_total":  c.WeightedTotal,
			"key_strength":    c.KeyStrength,
			"key_weakness":    c.KeyWeakness,
			"threat_level":    a.labels.Enum("threat", string(c.Threat)),
			"confidence":      a.labels.Enum("confidence", string(c.Confidence)),
		}
		for _, dim := range model.Dimensions {
			row[string(dim)] = c.Scores[dim]
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func (a *Assembler) featureMatrixTable(rows []model.Row) model.Table {
	t := a.newTable(model.SheetFeatureMatrix)
	for _, raw := range rows {
		row := cloneForSheet(raw, t.Columns)
		row["our_status"] = a.localizeCell("our_status", row["our_status"])
		row["parity_gap"] = a.localizeCell("parity_gap", row["parity_gap"])
		t.Rows = append(t.Rows, row)
	}
	return t
}

func (a *Assembler) pricingTable(rows []model.Row) model.Table {
	t := a.newTable(model.SheetPricingGTM)
	for _, raw := range rows {
		t.Rows = append(t.Rows, cloneForSheet(raw, t.Columns))
	}
	return t
}

// sourcesTable lists every citation of every kept competitor, in rank order
func (a *Assembler) sourcesTable(ranked []model.Competitor) model.Table {
	t := a.newTable(model.SheetSources)
	for _, c := range ranked {
		for _, ev := range c.Evidence {
			row := model.Row{
				"product":          ev.Product,
				"source_type":      a.localizeCell("source_type", string(ev.SourceType)),
				"url":              ev.URL,
				"title":            ev.Title,
				"published_date":   formatDate(ev.PublishedDate),
				"access_date":      formatDate(ev.AccessDate),
				"claim":            ev.Claim,
				"evidence_snippet": ev.Snippet,
				"confidence":       a.localizeCell("confidence", string(ev.Confidence)),
			}
			t.Rows = append(t.Rows, row)
		}
	}
	return t
}

// newTable creates an empty table with localized name and headers
func (a *Assembler) newTable(sheet model.Sheet) model.Table {
	cols := model.SheetColumns[sheet]
	headers := make([]string, len(cols))
	for i, col := range cols {
		headers[i] = a.labels.Header(col)
	}
	return model.Table{
		Sheet:   sheet,
		Name:    a.labels.SheetName(sheet),
		Columns: cols,
		Headers: headers,
		Rows:    []model.Row{},
	}
}

// localizeCell localizes a canonical enum token, passing through anything
// that is empty or unrecognized
func (a *Assembler) localizeCell(kind string, v any) any {
	s, ok := v.(string)
	if !ok || s == "" {
		return v
	}
	return a.labels.Enum(kind, s)
}

func cloneForSheet(raw model.Row, cols []string) model.Row {
	out := make(model.Row, len(cols))
	for _, col := range cols {
		if v, ok := raw[col]; ok {
			out[col] = v
		} else {
			out[col] = ""
		}
	}
	return out
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
