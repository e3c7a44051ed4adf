// Package normalize maps heterogeneous structured input into canonical
// competitor entities via an alias-tolerant key registry.
package normalize

import (
	"strings"
	"unicode"

	"github.com/haowu77/competitive-analysis-skill/internal/locale"
	"github.com/haowu77/competitive-analysis-skill/internal/model"
)

// NormKey reduces a header or token to its comparison form: lowercase with
// every non-alphanumeric rune stripped. Unicode aware, so localized headers
// normalize the same way as canonical keys.
func NormKey(s string) string {
	var b strings.Builder
	for _, ch := range strings.ToLower(s) {
		if unicode.IsLetter(ch) || unicode.IsDigit(ch) {
			b.WriteRune(ch)
		}
	}
	return b.String()
}

// Enum alias tokens accepted on input, per canonical value. These cover the
// localized display values plus common shorthand.
var enumCanonical = map[string]map[string][]string{
	"threat": {
		"high":   {"high", "高", "높음", "alto", "élevé", "hoch"},
		"medium": {"medium", "med", "中", "중간", "medio", "moyen", "mittel"},
		"low":    {"low", "低", "낮음", "bajo", "faible", "niedrig"},
	},
	"category": {
		"direct":     {"direct", "直接", "直接競合", "直接竞品", "직접", "directo", "direkt"},
		"adjacent":   {"adjacent", "邻近", "隣接", "인접", "adyacente", "angrenzend"},
		"substitute": {"substitute", "替代", "代替", "대체", "sustituto", "ersatz", "substitut"},
	},
	"confidence": {
		"high": {"high", "高", "높음", "alta", "haut", "hoch"},
		"med":  {"med", "medium", "中", "중간", "media", "moyen", "mittel"},
		"low":  {"low", "低", "낮음", "baja", "bas", "niedrig"},
	},
	"our_status": {
		"none":    {"none", "无", "未対応", "없음", "ninguno", "aucun", "kein"},
		"planned": {"planned", "规划", "計画", "계획", "planificado", "planifié", "geplant"},
		"live":    {"live", "已上线", "提供中", "운영", "activo", "enligne"},
	},
	"parity_gap": {
		"lead":    {"lead", "领先", "優位", "우위", "lidera", "avance", "vorsprung"},
		"parity":  {"parity", "同等", "동등", "paridad", "parité", "parität"},
		"partial": {"partial", "部分", "부분", "parcial", "partiel", "teilweise"},
		"gap":     {"gap", "差距", "ギャップ", "격차", "brecha", "écart", "lücke"},
	},
}

// Source-type tokens are matched by containment: "App Store listing" and
// "官网" both resolve. Order fixes which type wins when several match.
var sourceTypeOrder = []model.SourceType{
	model.SourceOfficial,
	model.SourceStore,
	model.SourceReview,
	model.SourceMedia,
	model.SourceResearch,
}

var sourceTypeTokens = map[model.SourceType][]string{
	model.SourceOfficial: {"official", "官网", "官方", "公式", "공식"},
	model.SourceStore:    {"store", "appstore", "play", "商店", "스토어"},
	model.SourceReview:   {"review", "评测", "レビュー", "리뷰"},
	model.SourceMedia:    {"media", "媒体", "メディア", "미디어"},
	model.SourceResearch: {"research", "报告", "研究", "リサーチ", "연구"},
}

// Registry is the static synonym registry: canonical sheet and column keys
// mapped from every accepted variant (canonical spellings plus every locale's
// display strings). Built once per run, read-only afterwards.
type Registry struct {
	sheets  map[string]model.Sheet
	columns map[model.Sheet]map[string]string
	enums   map[string]map[string]string
}

// NewRegistry builds the registry from the canonical schema and the locale
// label tables.
func NewRegistry() *Registry {
	r := &Registry{
		sheets:  make(map[string]model.Sheet),
		columns: make(map[model.Sheet]map[string]string),
		enums:   make(map[string]map[string]string),
	}

	for _, sheet := range model.SheetOrder {
		key := string(sheet)
		r.sheets[NormKey(key)] = sheet
		r.sheets[NormKey(strings.ReplaceAll(key, "_", "-"))] = sheet
		r.sheets[NormKey(strings.ReplaceAll(key, "_", ""))] = sheet

		cols := make(map[string]string, len(model.SheetColumns[sheet]))
		for _, col := range model.SheetColumns[sheet] {
			cols[NormKey(col)] = col
		}
		r.columns[sheet] = cols
	}
	// Accepted synonym for the benchmark sheet
	r.sheets[NormKey("competitors")] = model.SheetBenchmark

	for _, labels := range locale.All() {
		for _, sheet := range model.SheetOrder {
			if name := labels.SheetNames[sheet]; name != "" {
				r.sheets[NormKey(name)] = sheet
			}
			for _, col := range model.SheetColumns[sheet] {
				if header, ok := labels.Headers[col]; ok {
					r.columns[sheet][NormKey(header)] = col
				}
			}
		}
	}

	for kind, values := range enumCanonical {
		m := make(map[string]string)
		for canonical, variants := range values {
			m[NormKey(canonical)] = canonical
			for _, v := range variants {
				m[NormKey(v)] = canonical
			}
		}
		r.enums[kind] = m
	}

	return r
}

// CanonicalSheet resolves a raw top-level key to a canonical sheet
func (r *Registry) CanonicalSheet(raw string) (model.Sheet, bool) {
	s, ok := r.sheets[NormKey(raw)]
	return s, ok
}

// CanonicalColumn resolves a raw row key to a canonical column for a sheet
func (r *Registry) CanonicalColumn(sheet model.Sheet, raw string) (string, bool) {
	c, ok := r.columns[sheet][NormKey(raw)]
	return c, ok
}

// CanonicalEnum resolves a localized or shorthand enum value to its canonical
// token, e.g. "直接竞品" -> "direct". Exact match on the normalized form.
func (r *Registry) CanonicalEnum(kind string, value any) (string, bool) {
	if value == nil {
		return "", false
	}
	nk := NormKey(toString(value))
	if nk == "" {
		return "", false
	}
	c, ok := r.enums[kind][nk]
	return c, ok
}

// SourceType resolves a raw source-type cell to a canonical type by token
// containment. Returns false when nothing matches.
func (r *Registry) SourceType(value any) (model.SourceType, bool) {
	nk := NormKey(toString(value))
	if nk == "" {
		return "", false
	}
	for _, st := range sourceTypeOrder {
		for _, tok := range sourceTypeTokens[st] {
			if strings.Contains(nk, NormKey(tok)) {
				return st, true
			}
		}
	}
	return "", false
}
