package match

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Strategy decides whether an available ingredient satisfies a required one.
// The matching strategy is pluggable so a stricter similarity can replace the
// substring heuristic without touching callers.
type Strategy interface {
	Matches(required, available string) bool
}

// SubstringStrategy is the default: names match when equal or when either is
// a substring of the other, so "red onion" is satisfied by "onion". Known
// precision tradeoff: short names can over-match ("egg" vs "eggplant").
type SubstringStrategy struct{}

func (SubstringStrategy) Matches(required, available string) bool {
	a := strings.ToLower(strings.TrimSpace(required))
	b := strings.ToLower(strings.TrimSpace(available))
	if a == "" || b == "" {
		return false
	}
	return a == b || strings.Contains(a, b) || strings.Contains(b, a)
}

// DefaultLevenshteinThreshold is the minimum normalized similarity for the
// edit-distance strategy.
const DefaultLevenshteinThreshold = 0.8

// LevenshteinStrategy matches on normalized edit-distance similarity
// (1 - distance/maxLen), which is stricter on short names than substring
// containment.
type LevenshteinStrategy struct {
	Threshold float64
}

func (s LevenshteinStrategy) Matches(required, available string) bool {
	a := strings.ToLower(strings.TrimSpace(required))
	b := strings.ToLower(strings.TrimSpace(available))
	if a == "" || b == "" {
		return false
	}
	if a == b {
		return true
	}
	threshold := s.Threshold
	if threshold <= 0 {
		threshold = DefaultLevenshteinThreshold
	}
	return similarity(a, b) >= threshold
}

func similarity(a, b string) float64 {
	maxLen := len([]rune(a))
	if lb := len([]rune(b)); lb > maxLen {
		maxLen = lb
	}
	if maxLen == 0 {
		return 1.0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(dist)/float64(maxLen)
}
