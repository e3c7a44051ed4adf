package export

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/haowu77/competitive-analysis-skill/internal/model"
)

func testDocument() *model.BenchmarkDocument {
	doc := &model.BenchmarkDocument{
		Meta: model.RunMeta{
			Region:       "global",
			TopN:         8,
			PeriodMonths: 24,
			Locale:       "en",
			GeneratedAt:  time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC),
		},
	}
	for _, sheet := range model.SheetOrder {
		cols := model.SheetColumns[sheet]
		headers := make([]string, len(cols))
		for i, c := range cols {
			headers[i] = c
		}
		doc.Tables = append(doc.Tables, model.Table{
			Sheet:   sheet,
			Name:    sheetDisplayName(sheet),
			Columns: cols,
			Headers: headers,
			Rows:    []model.Row{},
		})
	}

	bench := doc.TableFor(model.SheetBenchmark)
	bench.Name = "Benchmark"
	bench.Rows = append(bench.Rows, model.Row{
		"rank":            1,
		"company_product": "Acme & Partners <Ltd>",
		"category":        "Direct",
		"weighted_total":  3.75,
		"traction_score":  4,
		"key_strength":    "line one\nline two",
	})
	return doc
}

func sheetDisplayName(sheet model.Sheet) string {
	switch sheet {
	case model.SheetSummary:
		return "Summary"
	case model.SheetBenchmark:
		return "Benchmark"
	case model.SheetFeatureMatrix:
		return "Feature-Matrix"
	case model.SheetPricingGTM:
		return "Pricing-GTM"
	default:
		return "Sources"
	}
}

func readZip(t *testing.T, data []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("output is not a valid zip: %v", err)
	}
	parts := make(map[string]string, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", f.Name, err)
		}
		body, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			t.Fatalf("read %s: %v", f.Name, err)
		}
		parts[f.Name] = string(body)
	}
	return parts
}

func TestWriteXLSX_PackageStructure(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, testDocument()); err != nil {
		t.Fatalf("WriteXLSX failed: %v", err)
	}
	parts := readZip(t, buf.Bytes())

	required := []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"xl/workbook.xml",
		"xl/_rels/workbook.xml.rels",
		"xl/styles.xml",
		"docProps/core.xml",
		"docProps/app.xml",
		"xl/worksheets/sheet1.xml",
		"xl/worksheets/sheet2.xml",
		"xl/worksheets/sheet3.xml",
		"xl/worksheets/sheet4.xml",
		"xl/worksheets/sheet5.xml",
	}
	for _, name := range required {
		if _, ok := parts[name]; !ok {
			t.Errorf("missing package part %s", name)
		}
	}

	// Every worksheet is declared in the content types.
	for i := 1; i <= 5; i++ {
		want := "/xl/worksheets/sheet" + string(rune('0'+i)) + ".xml"
		if !strings.Contains(parts["[Content_Types].xml"], want) {
			t.Errorf("content types missing %s", want)
		}
	}
}

func TestWriteXLSX_WorkbookSheetNames(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, testDocument()); err != nil {
		t.Fatalf("WriteXLSX failed: %v", err)
	}
	parts := readZip(t, buf.Bytes())

	wb := parts["xl/workbook.xml"]
	for _, name := range []string{"Summary", "Benchmark"} {
		if !strings.Contains(wb, `name="`+name+`"`) {
			t.Errorf("workbook missing sheet %q", name)
		}
	}
	// Sheet order fixed: Summary is sheet 1.
	if !strings.Contains(wb, `name="Summary" sheetId="1"`) {
		t.Error("Summary must be the first sheet")
	}
}

func TestWriteXLSX_WorksheetContents(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, testDocument()); err != nil {
		t.Fatalf("WriteXLSX failed: %v", err)
	}
	parts := readZip(t, buf.Bytes())

	// Benchmark is the second sheet in the fixed order.
	ws := parts["xl/worksheets/sheet2.xml"]

	if !strings.Contains(ws, `ySplit="1"`) || !strings.Contains(ws, `state="frozen"`) {
		t.Error("header row must be frozen")
	}
	if !strings.Contains(ws, "<autoFilter") {
		t.Error("missing autofilter")
	}
	// Special characters escape; the inline string survives.
	if !strings.Contains(ws, "Acme &amp; Partners &lt;Ltd&gt;") {
		t.Error("XML escaping failed for cell text")
	}
	// Numbers are numeric cells, not inline strings.
	if !strings.Contains(ws, "<v>3.75</v>") {
		t.Error("weighted total must be a numeric cell")
	}
	// Multiline text keeps its whitespace.
	if !strings.Contains(ws, `xml:space="preserve"`) {
		t.Error("multiline cell must preserve whitespace")
	}
}

func TestWriteXLSX_CorePropertiesTimestamp(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, testDocument()); err != nil {
		t.Fatalf("WriteXLSX failed: %v", err)
	}
	parts := readZip(t, buf.Bytes())

	if !strings.Contains(parts["docProps/core.xml"], "2026-06-01T12:00:00Z") {
		t.Error("core properties must carry the run's generated-at timestamp")
	}
}

func TestWriteXLSX_Deterministic(t *testing.T) {
	doc := testDocument()

	var a, b bytes.Buffer
	if err := WriteXLSX(&a, doc); err != nil {
		t.Fatalf("WriteXLSX failed: %v", err)
	}
	if err := WriteXLSX(&b, doc); err != nil {
		t.Fatalf("WriteXLSX failed: %v", err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("identical documents produced different workbooks")
	}
}

func TestColLetter(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "A"}, {2, "B"}, {26, "Z"}, {27, "AA"}, {52, "AZ"}, {53, "BA"},
	}
	for _, tt := range tests {
		if got := colLetter(tt.n); got != tt.want {
			t.Errorf("colLetter(%d) = %s, want %s", tt.n, got, tt.want)
		}
	}
}
