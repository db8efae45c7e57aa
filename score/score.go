// Package score defines the string-similarity boundary used by fuzzmap.
//
// The resolver consumes a single capability: a normalized similarity score
// in [0,100] between a requested keypath segment and a candidate key. The
// concrete algorithm is pluggable; two backends are provided, both built on
// external similarity libraries.
package score

import (
	"strings"
	"unicode"

	"github.com/agext/levenshtein"
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// Scorer computes a similarity score between two strings.
// Implementations must return values in [0,100], be deterministic, and
// treat comparison case-insensitively.
type Scorer interface {
	Score(a, b string) int
}

// ScorerFunc adapts a plain function to the Scorer interface.
type ScorerFunc func(a, b string) int

func (f ScorerFunc) Score(a, b string) int { return f(a, b) }

// WRatio is the default scorer. It uses the weighted-ratio measure from
// go-fuzzywuzzy, which blends full, partial (substring), and token-based
// ratios. Substring tolerance matters for keypath segments: a truncated
// segment like "temp" still scores high against "temperature".
type WRatio struct{}

func (WRatio) Score(a, b string) int {
	return clamp(fuzzy.WRatio(a, b))
}

// Levenshtein scores by normalized edit distance. Stricter than WRatio:
// truncations and substrings are penalized proportionally to length.
// Inputs are fold-normalized before comparison (lowercase, non-alphanumeric
// runs collapsed to single spaces).
type Levenshtein struct{}

func (Levenshtein) Score(a, b string) int {
	sim := levenshtein.Similarity(Fold(a), Fold(b), nil)
	return clamp(int(sim * 100))
}

// Fold normalizes a string for comparison: lowercases it and collapses
// non-alphanumeric runs to single spaces, trimming the ends.
func Fold(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func clamp(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}

// Default returns the scorer used when none is configured.
func Default() Scorer { return WRatio{} }

// ByName returns the named scorer, or false if the name is unknown.
// Recognized names: "wratio", "levenshtein".
func ByName(name string) (Scorer, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "wratio":
		return WRatio{}, true
	case "levenshtein":
		return Levenshtein{}, true
	default:
		return nil, false
	}
}
