// Package classify assigns each competitor one of the three category tiers.
// The decision is an ordered rule table evaluated top to bottom, first match
// wins; ambiguous rows resolve to Adjacent as the conservative default.
package classify

import (
	"strings"
	"unicode"

	"github.com/haowu77/competitive-analysis-skill/internal/model"
	"github.com/haowu77/competitive-analysis-skill/internal/normalize"
)

// Reference is the product context competitors are classified against,
// built from the brief and Summary rows. Empty reference fields disable the
// corresponding overlap tests.
type Reference struct {
	jtbd    map[string]bool
	segment map[string]bool
	pricing map[string]bool
}

// NewReference builds the classification context from hint texts
func NewReference(jtbdText, segmentText, pricingText string) *Reference {
	return &Reference{
		jtbd:    tokenize(jtbdText),
		segment: tokenize(segmentText),
		pricing: tokenize(pricingText),
	}
}

// facts are the boolean inputs the rule table is evaluated over
type facts struct {
	explicit     model.Category // Zero when no alias-resolvable category supplied
	jtbdStrong   bool           // Substantial JTBD token overlap
	jtbdWeak     bool           // Any JTBD token overlap
	pathMatch    bool           // Comparable monetization/usage path
	segmentMatch bool           // Same target segment
}

// rule is one row of the classification table
type rule struct {
	name  string
	match func(f facts) bool
	out   model.Category
}

// The table encodes: Direct = same JTBD and comparable path; Adjacent = same
// JTBD, different path or segment; Substitute = different job, same outcome.
var rules = []rule{
	{"explicit", func(f facts) bool { return f.explicit != "" }, ""}, // Out taken from facts
	{"direct", func(f facts) bool { return f.jtbdStrong && f.pathMatch }, model.CategoryDirect},
	{"adjacent-path", func(f facts) bool { return f.jtbdStrong }, model.CategoryAdjacent},
	{"substitute", func(f facts) bool { return !f.jtbdStrong && f.jtbdWeak && !f.segmentMatch }, model.CategorySubstitute},
	{"default", func(f facts) bool { return true }, model.CategoryAdjacent},
}

// Classifier evaluates the rule table against a reference context
type Classifier struct {
	reg *normalize.Registry
	ref *Reference
}

// NewClassifier creates a classifier for one run
func NewClassifier(reg *normalize.Registry, ref *Reference) *Classifier {
	return &Classifier{reg: reg, ref: ref}
}

// Classify assigns a category to a draft competitor. Deterministic: identical
// descriptive input always yields the same category.
func (c *Classifier) Classify(d *normalize.Draft) model.Category {
	f := c.gather(d)
	for _, r := range rules {
		if r.match(f) {
			if r.name == "explicit" {
				return f.explicit
			}
			return r.out
		}
	}
	return model.CategoryAdjacent
}

func (c *Classifier) gather(d *normalize.Draft) facts {
	var f facts

	if tok, ok := c.reg.CanonicalEnum("category", d.RawCategory); ok {
		f.explicit = model.Category(tok)
	}

	jtbd := tokenize(d.Competitor.CoreJTBD)
	f.jtbdStrong, f.jtbdWeak = overlapStrength(jtbd, c.ref.jtbd)

	path := tokenize(d.PricingText + " " + d.Competitor.Platform)
	_, f.pathMatch = overlapStrength(path, c.ref.pricing)

	segment := tokenize(d.Competitor.TargetUser)
	_, f.segmentMatch = overlapStrength(segment, c.ref.segment)

	return f
}

// overlapStrength compares two token sets. Weak means any shared token;
// strong means at least two shared tokens or at least 40% of the smaller set.
func overlapStrength(a, b map[string]bool) (strong, weak bool) {
	if len(a) == 0 || len(b) == 0 {
		return false, false
	}
	shared := 0
	for tok := range a {
		if b[tok] {
			shared++
		}
	}
	if shared == 0 {
		return false, false
	}
	smaller := len(a)
	if len(b) < smaller {
		smaller = len(b)
	}
	strong = shared >= 2 || float64(shared)/float64(smaller) >= 0.4
	return strong, true
}

// Tokens shorter than this carry no signal
const minTokenLen = 3

var stopwords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "that": true,
	"from": true, "into": true, "are": true, "has": true, "have": true,
	"los": true, "las": true, "les": true, "des": true, "und": true,
	"der": true, "die": true, "das": true, "par": true, "por": true,
}

func tokenize(s string) map[string]bool {
	out := make(map[string]bool)
	var cur strings.Builder
	flush := func() {
		tok := strings.ToLower(cur.String())
		cur.Reset()
		// CJK runes tokenize per character above, so length gates only apply
		// to alphabetic tokens
		if len([]rune(tok)) >= minTokenLen && !stopwords[tok] {
			out[tok] = true
		}
	}
	for _, ch := range s {
		switch {
		case unicode.Is(unicode.Han, ch) || unicode.Is(unicode.Hiragana, ch) ||
			unicode.Is(unicode.Katakana, ch) || unicode.Is(unicode.Hangul, ch):
			flush()
			out[string(ch)] = true
		case unicode.IsLetter(ch) || unicode.IsDigit(ch):
			cur.WriteRune(ch)
		default:
			flush()
		}
	}
	flush()
	return out
}
