package assemble

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/haowu77/competitive-analysis-skill/internal/locale"
	"github.com/haowu77/competitive-analysis-skill/internal/model"
)

func testMeta() model.RunMeta {
	return model.RunMeta{
		Region:       "global",
		TopN:         8,
		PeriodMonths: 24,
		Locale:       "en",
		GeneratedAt:  time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func competitor(name string, cat model.Category, total float64, sources int) model.Competitor {
	c := model.Competitor{
		Name:          name,
		Category:      cat,
		WeightedTotal: total,
		Scores:        map[model.Dimension]int{},
		Confidence:    model.ConfidenceMedium,
	}
	for _, dim := range model.Dimensions {
		c.Scores[dim] = 3
	}
	for i := 0; i < sources; i++ {
		st := model.SourceOfficial
		if i%2 == 1 {
			st = model.SourceReview
		}
		c.Evidence = append(c.Evidence, model.Evidence{
			Product:    name,
			SourceType: st,
			URL:        "https://example.com/" + name,
			AccessDate: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		})
	}
	return c
}

func TestAssemble_FiveTablesFixedOrder(t *testing.T) {
	a := New(locale.For("en"))
	doc, err := a.Assemble(Input{Meta: testMeta(), MinEvidence: 2})
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	if len(doc.Tables) != len(model.SheetOrder) {
		t.Fatalf("expected %d tables, got %d", len(model.SheetOrder), len(doc.Tables))
	}
	for i, sheet := range model.SheetOrder {
		if doc.Tables[i].Sheet != sheet {
			t.Errorf("table %d = %s, want %s", i, doc.Tables[i].Sheet, sheet)
		}
	}
}

func TestAssemble_SummaryAlwaysThreeRows(t *testing.T) {
	a := New(locale.For("en"))

	doc, err := a.Assemble(Input{Meta: testMeta(), MinEvidence: 2})
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	summary := doc.TableFor(model.SheetSummary)
	if len(summary.Rows) != 3 {
		t.Fatalf("expected exactly 3 summary rows, got %d", len(summary.Rows))
	}
	if summary.Rows[0]["problem_statement"] != "Market Definition" {
		t.Errorf("row 0 problem statement = %v", summary.Rows[0]["problem_statement"])
	}
}

func TestAssemble_BriefReplacesFirstRowFindings(t *testing.T) {
	a := New(locale.For("en"))

	doc, err := a.Assemble(Input{
		Brief:       "AI meeting assistants for sales teams",
		Meta:        testMeta(),
		MinEvidence: 2,
	})
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	rows := doc.TableFor(model.SheetSummary).Rows
	if rows[0]["top_findings"] != "AI meeting assistants for sales teams" {
		t.Errorf("row 0 top findings = %v", rows[0]["top_findings"])
	}
	// Rows 1 and 2 keep their template findings.
	if rows[1]["top_findings"] == "AI meeting assistants for sales teams" {
		t.Error("brief must only replace the first row")
	}
	// Scope reflects the run parameters.
	scope, _ := rows[0]["scope"].(string)
	if !strings.Contains(scope, "brief provided") || !strings.Contains(scope, "top_n=8") {
		t.Errorf("scope = %q", scope)
	}
}

func TestAssemble_SummaryInputOverridesCells(t *testing.T) {
	a := New(locale.For("en"))

	doc, err := a.Assemble(Input{
		Meta:        testMeta(),
		MinEvidence: 2,
		SummaryRows: []model.Row{
			{"problem_statement": "Custom problem", "method": ""},
		},
	})
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	rows := doc.TableFor(model.SheetSummary).Rows
	if rows[0]["problem_statement"] != "Custom problem" {
		t.Errorf("override lost: %v", rows[0]["problem_statement"])
	}
	// Empty override cells keep the template value.
	if rows[0]["method"] == "" {
		t.Error("empty override cell must not clear the template")
	}
}

func TestAssemble_RankingOrder(t *testing.T) {
	a := New(locale.For("en"))

	in := Input{
		Meta:        testMeta(),
		MinEvidence: 2,
		Competitors: []model.Competitor{
			competitor("Zeta", model.CategorySubstitute, 4.9, 3),
			competitor("Alpha", model.CategoryDirect, 3.1, 3),
			competitor("Beta", model.CategoryDirect, 4.2, 3),
			competitor("Tie-B", model.CategoryAdjacent, 3.5, 3),
			competitor("Tie-A", model.CategoryAdjacent, 3.5, 3),
		},
	}
	doc, err := a.Assemble(in)
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	rows := doc.TableFor(model.SheetBenchmark).Rows
	want := []string{"Beta", "Alpha", "Tie-A", "Tie-B", "Zeta"}
	if len(rows) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(rows))
	}
	for i, name := range want {
		if rows[i]["company_product"] != name {
			t.Errorf("rank %d = %v, want %s", i+1, rows[i]["company_product"], name)
		}
		if rows[i]["rank"] != i+1 {
			t.Errorf("rank cell %d = %v", i, rows[i]["rank"])
		}
	}
}

func TestAssemble_TopNCap(t *testing.T) {
	a := New(locale.For("en"))

	meta := testMeta()
	meta.TopN = 2
	in := Input{
		Meta:        meta,
		MinEvidence: 0,
		Competitors: []model.Competitor{
			competitor("A", model.CategoryDirect, 4.0, 3),
			competitor("B", model.CategoryDirect, 3.0, 3),
			competitor("C", model.CategoryDirect, 2.0, 3),
		},
	}
	doc, err := a.Assemble(in)
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	if rows := doc.TableFor(model.SheetBenchmark).Rows; len(rows) != 2 {
		t.Errorf("expected 2 rows under top_n cap, got %d", len(rows))
	}
}

func TestAssemble_EvidenceMinimumFilter(t *testing.T) {
	a := New(locale.For("en"))

	in := Input{
		Meta:        testMeta(),
		MinEvidence: 2,
		Competitors: []model.Competitor{
			competitor("Kept", model.CategoryDirect, 4.0, 3),
			competitor("Dropped", model.CategoryDirect, 4.5, 1),
		},
	}
	doc, err := a.Assemble(in)
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	rows := doc.TableFor(model.SheetBenchmark).Rows
	if len(rows) != 1 || rows[0]["company_product"] != "Kept" {
		t.Fatalf("expected only Kept, got %+v", rows)
	}

	var dropWarning bool
	for _, w := range doc.Warnings {
		if w.Code == "dropped_evidence" && strings.Contains(w.Message, "Dropped") {
			dropWarning = true
		}
	}
	if !dropWarning {
		t.Errorf("expected dropped_evidence warning, got %+v", doc.Warnings)
	}
}

func TestAssemble_AllFilteredIsError(t *testing.T) {
	a := New(locale.For("en"))

	_, err := a.Assemble(Input{
		Meta:        testMeta(),
		MinEvidence: 2,
		Competitors: []model.Competitor{
			competitor("Thin", model.CategoryDirect, 4.0, 1),
		},
	})
	if err == nil {
		t.Fatal("expected error when nothing survives the evidence minimum")
	}
	if !errors.Is(err, model.ErrInsufficientData) {
		t.Errorf("expected ErrInsufficientData, got %v", err)
	}
}

func TestAssemble_NoCompetitorsIsValid(t *testing.T) {
	a := New(locale.For("en"))

	doc, err := a.Assemble(Input{Meta: testMeta(), MinEvidence: 2})
	if err != nil {
		t.Fatalf("brief-only run must succeed: %v", err)
	}
	if rows := doc.TableFor(model.SheetBenchmark).Rows; len(rows) != 0 {
		t.Errorf("expected empty benchmark table, got %d rows", len(rows))
	}
}

func TestAssemble_ThreatDerivation(t *testing.T) {
	a := New(locale.For("en"))

	high := competitor("High", model.CategoryDirect, 4.0, 3)
	high.Confidence = model.ConfidenceHigh
	capped := competitor("Capped", model.CategoryDirect, 4.0, 3)
	capped.Confidence = model.ConfidenceMedium
	medium := competitor("Medium", model.CategoryDirect, 3.0, 3)
	low := competitor("Low", model.CategoryDirect, 2.0, 3)
	stated := competitor("Stated", model.CategoryDirect, 4.9, 3)
	stated.Threat = model.ThreatLow

	doc, err := a.Assemble(Input{
		Meta:        testMeta(),
		MinEvidence: 2,
		Competitors: []model.Competitor{high, capped, medium, low, stated},
	})
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	threats := map[string]any{}
	for _, row := range doc.TableFor(model.SheetBenchmark).Rows {
		threats[row["company_product"].(string)] = row["threat_level"]
	}

	if threats["High"] != "High" {
		t.Errorf("High: %v", threats["High"])
	}
	// Derived High without High confidence is capped.
	if threats["Capped"] != "Medium" {
		t.Errorf("Capped: %v", threats["Capped"])
	}
	if threats["Medium"] != "Medium" {
		t.Errorf("Medium: %v", threats["Medium"])
	}
	if threats["Low"] != "Low" {
		t.Errorf("Low: %v", threats["Low"])
	}
	// An input-stated threat is never overridden.
	if threats["Stated"] != "Low" {
		t.Errorf("Stated: %v", threats["Stated"])
	}
}

func TestAssemble_SourceValidationWarnings(t *testing.T) {
	a := New(locale.For("en"))

	// Two official sources: under three citations and no third-party.
	c := competitor("Acme", model.CategoryDirect, 3.0, 0)
	for i := 0; i < 2; i++ {
		c.Evidence = append(c.Evidence, model.Evidence{
			Product:    "Acme",
			SourceType: model.SourceOfficial,
			URL:        "https://acme.example.com",
		})
	}

	doc, err := a.Assemble(Input{Meta: testMeta(), MinEvidence: 2, Competitors: []model.Competitor{c}})
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	codes := map[string]bool{}
	for _, w := range doc.Warnings {
		codes[w.Code] = true
	}
	if !codes["sources_lt3"] {
		t.Error("expected sources_lt3 warning")
	}
	if !codes["missing_third"] {
		t.Error("expected missing_third warning")
	}
	if codes["missing_official"] {
		t.Error("missing_official should not fire with official sources present")
	}
}

func TestAssemble_SourcesTableInRankOrder(t *testing.T) {
	a := New(locale.For("en"))

	first := competitor("First", model.CategoryDirect, 4.5, 2)
	second := competitor("Second", model.CategoryAdjacent, 4.9, 2)

	doc, err := a.Assemble(Input{
		Meta:        testMeta(),
		MinEvidence: 2,
		Competitors: []model.Competitor{second, first},
	})
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	rows := doc.TableFor(model.SheetSources).Rows
	if len(rows) != 4 {
		t.Fatalf("expected 4 source rows, got %d", len(rows))
	}
	// Direct outranks Adjacent, so First's citations lead.
	if rows[0]["product"] != "First" || rows[3]["product"] != "Second" {
		t.Errorf("sources out of rank order: %v ... %v", rows[0]["product"], rows[3]["product"])
	}
	if rows[0]["access_date"] != "2026-05-01" {
		t.Errorf("access date = %v", rows[0]["access_date"])
	}
}

func TestAssemble_LocalizedOutput(t *testing.T) {
	a := New(locale.For("zh"))

	c := competitor("Acme", model.CategoryDirect, 4.0, 3)
	c.Threat = model.ThreatHigh

	doc, err := a.Assemble(Input{Meta: testMeta(), MinEvidence: 2, Competitors: []model.Competitor{c}})
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	bench := doc.TableFor(model.SheetBenchmark)
	if bench.Name != "竞品基准" {
		t.Errorf("sheet name = %q", bench.Name)
	}
	row := bench.Rows[0]
	if row["category"] != "直接竞品" {
		t.Errorf("category = %v", row["category"])
	}
	if row["threat_level"] != "高" {
		t.Errorf("threat = %v", row["threat_level"])
	}
	if row["confidence"] != "中" {
		t.Errorf("confidence = %v", row["confidence"])
	}

	src := doc.TableFor(model.SheetSources).Rows[0]
	if src["source_type"] != "官方" {
		t.Errorf("source type = %v", src["source_type"])
	}
}

func TestAssemble_BenchmarkRowCarriesConfidence(t *testing.T) {
	a := New(locale.For("en"))

	high := competitor("Solid", model.CategoryDirect, 4.2, 4)
	high.Confidence = model.ConfidenceHigh
	low := competitor("Shaky", model.CategoryDirect, 2.1, 2)
	low.Confidence = model.ConfidenceLow

	doc, err := a.Assemble(Input{
		Meta:        testMeta(),
		MinEvidence: 2,
		Competitors: []model.Competitor{high, low},
	})
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	bench := doc.TableFor(model.SheetBenchmark)
	if got := bench.Columns[len(bench.Columns)-1]; got != "confidence" {
		t.Fatalf("last benchmark column = %q, want confidence", got)
	}
	if bench.Rows[0]["confidence"] != "High" {
		t.Errorf("row 0 confidence = %v", bench.Rows[0]["confidence"])
	}
	if bench.Rows[1]["confidence"] != "Low" {
		t.Errorf("row 1 confidence = %v", bench.Rows[1]["confidence"])
	}
}

func TestAssemble_FeatureMatrixLocalizesEnums(t *testing.T) {
	a := New(locale.For("en"))

	doc, err := a.Assemble(Input{
		Meta:        testMeta(),
		MinEvidence: 2,
		FeatureRows: []model.Row{
			{"l1_capability": "Reporting", "our_status": "live", "parity_gap": "gap"},
		},
	})
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	row := doc.TableFor(model.SheetFeatureMatrix).Rows[0]
	if row["our_status"] != "Live" {
		t.Errorf("our_status = %v", row["our_status"])
	}
	if row["parity_gap"] != "Gap" {
		t.Errorf("parity_gap = %v", row["parity_gap"])
	}
	// Absent columns are present but empty.
	if v, ok := row["importance"]; !ok || v != "" {
		t.Errorf("importance = %v, %v", v, ok)
	}
}
