// Package export writes the assembled benchmark document as an XLSX workbook.
// The OOXML parts are generated directly: five worksheets with a frozen
// header row, fixed column widths, an autofilter, and inline strings.
package export

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/haowu77/competitive-analysis-skill/internal/model"
)

// WriteXLSXFile writes the workbook to path, creating parent directories
func WriteXLSXFile(path string, doc *model.BenchmarkDocument) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create workbook: %w", err)
	}
	defer func() { _ = f.Close() }()
	return WriteXLSX(f, doc)
}

// WriteXLSX writes the workbook to w. Sheet order follows model.SheetOrder.
func WriteXLSX(w io.Writer, doc *model.BenchmarkDocument) error {
	zw := zip.NewWriter(w)

	var names []string
	var sheets []string
	for _, key := range model.SheetOrder {
		t := doc.TableFor(key)
		if t == nil {
			continue
		}
		names = append(names, t.Name)
		sheets = append(sheets, worksheetXML(t, model.SheetWidths[key]))
	}

	parts := []struct {
		name string
		body string
	}{
		{"[Content_Types].xml", contentTypesXML(len(sheets))},
		{"_rels/.rels", rootRelsXML},
		{"xl/workbook.xml", workbookXML(names)},
		{"xl/_rels/workbook.xml.rels", workbookRelsXML(len(sheets))},
		{"xl/styles.xml", stylesXML},
	}
	for i, body := range sheets {
		parts = append(parts, struct {
			name string
			body string
		}{fmt.Sprintf("xl/worksheets/sheet%d.xml", i+1), body})
	}
	parts = append(parts,
		struct {
			name string
			body string
		}{"docProps/core.xml", coreXML(doc.Meta.GeneratedAt)},
		struct {
			name string
			body string
		}{"docProps/app.xml", appXML},
	)

	for _, part := range parts {
		pw, err := zw.Create(part.name)
		if err != nil {
			return fmt.Errorf("create zip entry %s: %w", part.name, err)
		}
		if _, err := pw.Write([]byte(part.body)); err != nil {
			return fmt.Errorf("write zip entry %s: %w", part.name, err)
		}
	}
	return zw.Close()
}

// colLetter converts a 1-based column index to its A1 letter form
func colLetter(n int) string {
	var s string
	for n > 0 {
		n--
		s = string(rune('A'+n%26)) + s
		n /= 26
	}
	return s
}

func escapeXML(s string) string {
	var b strings.Builder
	if err := xml.EscapeText(&b, []byte(s)); err != nil {
		return s
	}
	return b.String()
}

// worksheetXML renders one sheet: header row plus data rows, with the header
// frozen, styled bold, and covered by an autofilter
func worksheetXML(t *model.Table, widths []float64) string {
	maxCols := len(t.Columns)
	if maxCols == 0 {
		maxCols = 1
	}
	totalRows := len(t.Rows) + 1

	var cols []string
	for i := 1; i <= maxCols; i++ {
		w := 24.0
		if i-1 < len(widths) {
			w = widths[i-1]
		}
		cols = append(cols, fmt.Sprintf(`<col min="%d" max="%d" width="%g" customWidth="1"/>`, i, i, w))
	}

	lines := []string{
		`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`,
		`<worksheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">`,
		`  <sheetViews><sheetView workbookViewId="0"><pane ySplit="1" topLeftCell="A2" activePane="bottomLeft" state="frozen"/></sheetView></sheetViews>`,
		`  <sheetFormatPr defaultRowHeight="22"/>`,
		fmt.Sprintf(`  <cols>%s</cols>`, strings.Join(cols, "")),
		fmt.Sprintf(`  <dimension ref="A1:%s%d"/>`, colLetter(maxCols), totalRows),
		`  <sheetData>`,
	}

	lines = append(lines, rowXML(1, headerCells(t), true))
	for i, row := range t.Rows {
		cells := make([]any, len(t.Columns))
		for j, col := range t.Columns {
			cells[j] = row[col]
		}
		lines = append(lines, rowXML(i+2, cells, false))
	}

	lines = append(lines,
		`  </sheetData>`,
		fmt.Sprintf(`  <autoFilter ref="A1:%s%d"/>`, colLetter(maxCols), totalRows),
		`</worksheet>`,
	)
	return strings.Join(lines, "\n")
}

func headerCells(t *model.Table) []any {
	cells := make([]any, len(t.Headers))
	for i, h := range t.Headers {
		cells[i] = h
	}
	return cells
}

func rowXML(r int, cells []any, header bool) string {
	style := "1"
	if header {
		style = "2"
	}
	var b strings.Builder
	fmt.Fprintf(&b, `    <row r="%d" ht="22" customHeight="1">`+"\n", r)
	for c, val := range cells {
		ref := fmt.Sprintf("%s%d", colLetter(c+1), r)
		switch v := val.(type) {
		case nil:
			fmt.Fprintf(&b, `      <c r="%s" s="%s"/>`+"\n", ref, style)
		case int:
			fmt.Fprintf(&b, `      <c r="%s" s="%s"><v>%d</v></c>`+"\n", ref, style, v)
		case float64:
			fmt.Fprintf(&b, `      <c r="%s" s="%s"><v>%g</v></c>`+"\n", ref, style, v)
		default:
			s := fmt.Sprintf("%v", v)
			if s == "" {
				fmt.Fprintf(&b, `      <c r="%s" s="%s"/>`+"\n", ref, style)
				continue
			}
			preserve := ""
			if strings.HasPrefix(s, " ") || strings.HasSuffix(s, " ") || strings.Contains(s, "\n") {
				preserve = ` xml:space="preserve"`
			}
			fmt.Fprintf(&b, `      <c r="%s" t="inlineStr" s="%s"><is><t%s>%s</t></is></c>`+"\n",
				ref, style, preserve, escapeXML(s))
		}
	}
	b.WriteString(`    </row>`)
	return b.String()
}

const stylesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<styleSheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main">
  <fonts count="2">
    <font><sz val="11"/><color theme="1"/><name val="Calibri"/><family val="2"/></font>
    <font><b/><sz val="11"/><color theme="1"/><name val="Calibri"/><family val="2"/></font>
  </fonts>
  <fills count="2">
    <fill><patternFill patternType="none"/></fill>
    <fill><patternFill patternType="gray125"/></fill>
  </fills>
  <borders count="1">
    <border><left/><right/><top/><bottom/><diagonal/></border>
  </borders>
  <cellStyleXfs count="1">
    <xf numFmtId="0" fontId="0" fillId="0" borderId="0"/>
  </cellStyleXfs>
  <cellXfs count="3">
    <xf numFmtId="0" fontId="0" fillId="0" borderId="0" xfId="0"/>
    <xf numFmtId="0" fontId="0" fillId="0" borderId="0" xfId="0" applyAlignment="1"><alignment horizontal="center" vertical="center" wrapText="1"/></xf>
    <xf numFmtId="0" fontId="1" fillId="0" borderId="0" xfId="0" applyAlignment="1" applyFont="1"><alignment horizontal="center" vertical="center" wrapText="1"/></xf>
  </cellXfs>
  <cellStyles count="1">
    <cellStyle name="Normal" xfId="0" builtinId="0"/>
  </cellStyles>
</styleSheet>
`

func workbookXML(sheetNames []string) string {
	var lines []string
	for i, name := range sheetNames {
		lines = append(lines, fmt.Sprintf(`    <sheet name="%s" sheetId="%d" r:id="rId%d"/>`,
			escapeXML(name), i+1, i+1))
	}
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<workbook xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">
  <sheets>
` + strings.Join(lines, "\n") + `
  </sheets>
</workbook>
`
}

func workbookRelsXML(sheetCount int) string {
	var rels []string
	for i := 1; i <= sheetCount; i++ {
		rels = append(rels, fmt.Sprintf(`  <Relationship Id="rId%d" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet" Target="worksheets/sheet%d.xml"/>`, i, i))
	}
	rels = append(rels, fmt.Sprintf(`  <Relationship Id="rId%d" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>`, sheetCount+1))
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
` + strings.Join(rels, "\n") + `
</Relationships>
`
}

func contentTypesXML(sheetCount int) string {
	overrides := []string{
		`  <Override PartName="/xl/workbook.xml" ContentType="application/vnd.openxmlformats-officedocument.spreadsheetml.sheet.main+xml"/>`,
		`  <Override PartName="/xl/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.spreadsheetml.styles+xml"/>`,
		`  <Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>`,
		`  <Override PartName="/docProps/app.xml" ContentType="application/vnd.openxmlformats-officedocument.extended-properties+xml"/>`,
	}
	for i := 1; i <= sheetCount; i++ {
		overrides = append(overrides, fmt.Sprintf(`  <Override PartName="/xl/worksheets/sheet%d.xml" ContentType="application/vnd.openxmlformats-officedocument.spreadsheetml.worksheet+xml"/>`, i))
	}
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
` + strings.Join(overrides, "\n") + `
</Types>
`
}

const rootRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="xl/workbook.xml"/>
  <Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>
  <Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties" Target="docProps/app.xml"/>
</Relationships>
`

func coreXML(generatedAt time.Time) string {
	if generatedAt.IsZero() {
		generatedAt = time.Now().UTC()
	}
	ts := generatedAt.UTC().Format("2006-01-02T15:04:05Z")
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" xmlns:dcmitype="http://purl.org/dc/dcmitype/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
  <dc:creator>compbench</dc:creator>
  <cp:lastModifiedBy>compbench</cp:lastModifiedBy>
  <dcterms:created xsi:type="dcterms:W3CDTF">%s</dcterms:created>
  <dcterms:modified xsi:type="dcterms:W3CDTF">%s</dcterms:modified>
</cp:coreProperties>
`, ts, ts)
}

const appXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties" xmlns:vt="http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes">
  <Application>compbench</Application>
</Properties>
`
