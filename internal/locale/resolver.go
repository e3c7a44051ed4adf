package locale

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/haowu77/competitive-analysis-skill/internal/model"
)

// Detection source modes
const (
	SourceBrief = "brief"
	SourceInput = "input"
	SourceBoth  = "both"
)

// Common-word hints for Latin-script languages. Script distribution alone
// cannot separate es/fr/de from English.
var langTokenHints = map[string]map[string]bool{
	"es": toSet("de", "la", "para", "con", "que", "los", "las", "una", "por"),
	"fr": toSet("le", "la", "les", "de", "des", "et", "pour", "avec", "une"),
	"de": toSet("und", "der", "die", "das", "mit", "für", "ein", "eine", "nicht"),
}

func toSet(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

var latinTokenRe = regexp.MustCompile(`[a-zA-ZÀ-ÿ]+`)

// Resolver selects the output locale for a run
type Resolver struct {
	source string // brief | input | both
}

// NewResolver creates a resolver with the given detection source mode.
// An empty mode means "both".
func NewResolver(source string) *Resolver {
	if source == "" {
		source = SourceBoth
	}
	return &Resolver{source: source}
}

// Resolve picks the output locale. An explicit code always wins and must be
// in the supported set; "auto" (or empty) detects from the selected text
// sources and never fails: inconclusive input resolves to "en".
func (r *Resolver) Resolve(explicit, brief, inputText string) (string, error) {
	if explicit != "" && explicit != "auto" {
		if !IsSupported(explicit) {
			return "", fmt.Errorf("locale %q: %w", explicit, model.ErrUnsupportedLocale)
		}
		return explicit, nil
	}

	var parts []string
	if (r.source == SourceBrief || r.source == SourceBoth) && strings.TrimSpace(brief) != "" {
		parts = append(parts, brief)
	}
	if (r.source == SourceInput || r.source == SourceBoth) && strings.TrimSpace(inputText) != "" {
		parts = append(parts, inputText)
	}

	detected := Detect(strings.Join(parts, "\n"))
	if !IsSupported(detected) {
		return "en", nil
	}
	return detected, nil
}

// Detect guesses the language of text from script distribution and common
// words. Deterministic: identical text always yields the same code.
func Detect(text string) string {
	if strings.TrimSpace(text) == "" {
		return "en"
	}

	var countHan, countKana, countHangul, countLatin int
	for _, ch := range text {
		switch {
		case ch >= 0x3040 && ch <= 0x30FF:
			countKana++
		case ch >= 0xAC00 && ch <= 0xD7AF:
			countHangul++
		case ch >= 0x4E00 && ch <= 0x9FFF:
			countHan++
		case (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z'):
			countLatin++
		}
	}

	counts := []int{countHan, countKana, countHangul, countLatin}
	sort.Sort(sort.Reverse(sort.IntSlice(counts)))
	total := countHan + countKana + countHangul + countLatin

	// No script dominates: don't guess
	if total > 0 && float64(counts[0]-counts[1])/float64(total) < 0.10 {
		return "en"
	}

	if countKana >= 6 {
		return "ja"
	}
	if countHangul >= 6 {
		return "ko"
	}
	if countHan >= 10 && countKana < 6 && countHangul < 6 {
		return "zh"
	}
	if countLatin == 0 {
		return "en"
	}

	// Latin script: distinguish es/fr/de from English by common words
	scores := map[string]int{"es": 0, "fr": 0, "de": 0}
	for _, tok := range latinTokenRe.FindAllString(strings.ToLower(text), -1) {
		for lang, hints := range langTokenHints {
			if hints[tok] {
				scores[lang]++
			}
		}
	}

	best, bestScore := "en", 0
	for _, lang := range []string{"es", "fr", "de"} { // Fixed order for tie determinism
		if scores[lang] > bestScore {
			best, bestScore = lang, scores[lang]
		}
	}
	if bestScore >= 2 {
		return best
	}
	return "en"
}
