// Package locale resolves the output language for a run and owns the
// localized label tables consumed read-only by the table assembler.
package locale

import "github.com/haowu77/competitive-analysis-skill/internal/model"

// SummaryTemplate is one fixed Summary row in a given locale
type SummaryTemplate struct {
	ProblemStatement      string
	TargetSegment         string
	Method                string
	TopFindings           string
	StrategicImplications string
}

// Labels is the label map for one locale: sheet names, column headers, enum
// display values, the three Summary row templates, and warning strings.
// Loaded once per run and immutable thereafter.
type Labels struct {
	Code             string
	SheetNames       map[model.Sheet]string
	Headers          map[string]string
	SummaryTemplates []SummaryTemplate
	Enums            map[string]map[string]string // kind -> canonical token -> display
	Warnings         map[string]string
}

// Supported lists the supported locale codes in a stable order
var Supported = []string{"en", "zh", "ja", "ko", "es", "fr", "de"}

// IsSupported reports whether code is a supported locale
func IsSupported(code string) bool {
	_, ok := locales[code]
	return ok
}

// All returns the label maps for every supported locale in Supported order.
// Used by the normalizer to build its alias registry.
func All() []*Labels {
	out := make([]*Labels, 0, len(Supported))
	for _, code := range Supported {
		out = append(out, locales[code])
	}
	return out
}

// For returns the label map for a locale, falling back to English for
// unknown codes. The returned value must be treated as read-only.
func For(code string) *Labels {
	if l, ok := locales[code]; ok {
		return l
	}
	return locales["en"]
}

// Header resolves a canonical column key to its localized header with the
// deterministic fallback chain: requested locale -> en -> literal key.
func (l *Labels) Header(key string) string {
	if h, ok := l.Headers[key]; ok {
		return h
	}
	if h, ok := locales["en"].Headers[key]; ok {
		return h
	}
	return key
}

// SheetName resolves a sheet's localized display name, falling back to the
// English name (every locale table defines all five, but the chain holds).
func (l *Labels) SheetName(sheet model.Sheet) string {
	if n, ok := l.SheetNames[sheet]; ok {
		return n
	}
	return locales["en"].SheetNames[sheet]
}

// Enum resolves a canonical enum token (e.g. category "direct") to its
// localized display value, with the same fallback chain as Header.
func (l *Labels) Enum(kind, canonical string) string {
	if m, ok := l.Enums[kind]; ok {
		if v, ok := m[canonical]; ok {
			return v
		}
	}
	if m, ok := locales["en"].Enums[kind]; ok {
		if v, ok := m[canonical]; ok {
			return v
		}
	}
	return canonical
}

// Warning resolves a warning template key, falling back to English
func (l *Labels) Warning(key string) string {
	if w, ok := l.Warnings[key]; ok {
		return w
	}
	if w, ok := locales["en"].Warnings[key]; ok {
		return w
	}
	return key
}
