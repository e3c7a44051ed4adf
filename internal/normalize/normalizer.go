package normalize

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/haowu77/competitive-analysis-skill/internal/locale"
	"github.com/haowu77/competitive-analysis-skill/internal/model"
)

// Draft is a competitor after normalization but before classification and
// scoring. RawScores holds only the dimensions actually present in the input;
// the scorer fills the rest from the rubric midpoint.
type Draft struct {
	Competitor  model.Competitor
	RawScores   map[model.Dimension]float64
	RawCategory any    // Raw category cell, resolved by the classifier
	PricingText string // Pricing/GTM descriptors for path comparison
}

// Result is the canonical intermediate form of one input set
type Result struct {
	SummaryRows []model.Row
	Drafts      []Draft
	FeatureRows []model.Row
	PricingRows []model.Row
	// Evidence is keyed by normalized product name; unmatched rows keep
	// their key so the assembler can still report them
	Evidence map[string][]model.Evidence
	Warnings []model.Warning
}

// Normalizer maps a free-text brief and/or a structured record set into the
// canonical intermediate form. It never invents competitors: a brief without
// structured input yields zero drafts, and the brief only contributes
// JTBD/segment/pricing hints.
type Normalizer struct {
	reg    *Registry
	labels *locale.Labels
}

// NewNormalizer creates a normalizer emitting warnings in the given locale
func NewNormalizer(reg *Registry, labels *locale.Labels) *Normalizer {
	return &Normalizer{reg: reg, labels: labels}
}

// Normalize converts a structured payload into the canonical form. A nil or
// empty payload is valid (brief-only mode) and yields an empty result.
// Bad individual rows are skipped with a warning; a recognized sheet bound to
// a non-list value is a run-level input error.
func (n *Normalizer) Normalize(payload map[string]any) (*Result, error) {
	res := &Result{Evidence: make(map[string][]model.Evidence)}
	if len(payload) == 0 {
		return res, nil
	}

	rowsBySheet := make(map[model.Sheet][]model.Row)
	for _, key := range sortedKeys(payload) {
		sheet, ok := n.reg.CanonicalSheet(key)
		if !ok {
			continue // Unknown top-level keys are ignored
		}
		list, ok := payload[key].([]any)
		if !ok {
			return nil, fmt.Errorf("key %q is not a list of rows: %w", key, model.ErrInvalidInput)
		}
		for _, item := range list {
			raw, ok := item.(map[string]any)
			if !ok {
				continue
			}
			rowsBySheet[sheet] = append(rowsBySheet[sheet], n.mapRow(sheet, raw))
		}
	}

	res.SummaryRows = rowsBySheet[model.SheetSummary]
	res.FeatureRows = rowsBySheet[model.SheetFeatureMatrix]
	res.PricingRows = rowsBySheet[model.SheetPricingGTM]

	pricingText := make(map[string]string)
	for _, row := range res.PricingRows {
		name := toString(row["product"])
		if name == "" {
			continue
		}
		desc := joinNonEmpty(
			toString(row["pricing_model"]),
			toString(row["packaging_unit"]),
			toString(row["trial_freemium"]),
			toString(row["primary_channel"]),
		)
		pricingText[NormKey(name)] = desc
	}

	for i, row := range rowsBySheet[model.SheetBenchmark] {
		draft, ok := n.draftFromRow(row)
		if !ok {
			res.Warnings = append(res.Warnings, model.Warning{
				Code:    "dropped_no_identity",
				Message: fmt.Sprintf(n.labels.Warning("dropped_no_identity"), i+1),
			})
			continue
		}
		draft.PricingText = pricingText[NormKey(draft.Competitor.Name)]
		res.Drafts = append(res.Drafts, draft)
	}

	for _, row := range rowsBySheet[model.SheetSources] {
		ev := n.evidenceFromRow(row)
		if ev.Product == "" {
			continue
		}
		key := NormKey(ev.Product)
		res.Evidence[key] = append(res.Evidence[key], ev)
	}

	// Attach evidence to drafts by normalized product name
	for i := range res.Drafts {
		res.Drafts[i].Competitor.Evidence = res.Evidence[NormKey(res.Drafts[i].Competitor.Name)]
	}

	return res, nil
}

// mapRow resolves every raw key of a row through the column alias registry.
// Canonical columns default to ""; unknown keys are preserved under their raw
// name but never consulted for scoring.
func (n *Normalizer) mapRow(sheet model.Sheet, raw map[string]any) model.Row {
	out := make(model.Row, len(model.SheetColumns[sheet]))
	for _, col := range model.SheetColumns[sheet] {
		out[col] = ""
	}
	for _, key := range sortedKeys(raw) {
		if col, ok := n.reg.CanonicalColumn(sheet, key); ok {
			// First alias wins; don't overwrite a non-empty mapping
			if cur, exists := out[col]; !exists || cur == "" || cur == nil {
				out[col] = raw[key]
			}
			continue
		}
		if _, taken := out[key]; !taken {
			out[key] = raw[key]
		}
	}
	return out
}

func (n *Normalizer) draftFromRow(row model.Row) (Draft, bool) {
	name := strings.TrimSpace(toString(row["company_product"]))
	if name == "" {
		// Identity fallbacks for inputs that never used a benchmark header
		for _, alt := range []string{"name", "product", "company"} {
			for k, v := range row {
				if NormKey(k) == alt {
					name = strings.TrimSpace(toString(v))
				}
			}
			if name != "" {
				break
			}
		}
	}
	if name == "" {
		return Draft{}, false
	}

	c := model.Competitor{
		Name:        name,
		TargetUser:  toString(row["target_user"]),
		CoreJTBD:    toString(row["core_jtbd"]),
		Platform:    toString(row["platform"]),
		GeoFocus:    toString(row["geo_focus"]),
		KeyStrength: toString(row["key_strength"]),
		KeyWeakness: toString(row["key_weakness"]),
		Extra:       make(map[string]any),
	}
	for k, v := range row {
		switch nk := NormKey(k); nk {
		case "url", "website", "link":
			if c.URL == "" {
				c.URL = toString(v)
			}
		}
	}

	scores := make(map[model.Dimension]float64, len(model.Dimensions))
	for _, dim := range model.Dimensions {
		if f, ok := toFloat(row[string(dim)]); ok {
			scores[dim] = f
		}
	}

	known := make(map[string]bool, len(model.SheetColumns[model.SheetBenchmark]))
	for _, col := range model.SheetColumns[model.SheetBenchmark] {
		known[col] = true
	}
	for k, v := range row {
		if !known[k] {
			c.Extra[k] = v
		}
	}

	var threat any = row["threat_level"]
	if tok, ok := n.reg.CanonicalEnum("threat", threat); ok {
		c.Threat = model.ThreatLevel(tok)
	}

	return Draft{Competitor: c, RawScores: scores, RawCategory: row["category"]}, true
}

func (n *Normalizer) evidenceFromRow(row model.Row) model.Evidence {
	ev := model.Evidence{
		Product: strings.TrimSpace(toString(row["product"])),
		URL:     toString(row["url"]),
		Title:   toString(row["title"]),
		Claim:   toString(row["claim"]),
		Snippet: toString(row["evidence_snippet"]),
	}
	if st, ok := n.reg.SourceType(row["source_type"]); ok {
		ev.SourceType = st
	}
	if tok, ok := n.reg.CanonicalEnum("confidence", row["confidence"]); ok {
		ev.Confidence = model.ConfidenceLevel(tok)
	}
	if t, ok := parseDate(toString(row["published_date"])); ok {
		ev.PublishedDate = t
	}
	if t, ok := parseDate(toString(row["access_date"])); ok {
		ev.AccessDate = t
	}
	return ev
}

// parseDate accepts the absolute calendar date shapes seen in real inputs
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{"2006-01-02", "2006/01/02", "2006.01.02", "2006-01"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func toString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	case bool:
		return strconv.FormatBool(s)
	default:
		return fmt.Sprintf("%v", s)
	}
}

func toFloat(v any) (float64, bool) {
	switch f := v.(type) {
	case nil:
		return 0, false
	case float64:
		return f, true
	case int:
		return float64(f), true
	case string:
		s := strings.TrimSpace(f)
		if s == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

func joinNonEmpty(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}

// sortedKeys keeps iteration deterministic: identical input always maps to
// identical output regardless of map ordering
func sortedKeys[M map[string]any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
