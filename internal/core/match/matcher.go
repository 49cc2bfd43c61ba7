package match

import (
	"context"
	"sort"
	"strings"

	"ingredient-intelligence/internal/pkg/common"

	"go.uber.org/zap"
)

// CostEstimateCap is the deliberate cost-control cutoff: baskets are only
// priced when at most this many effective-missing ingredients remain.
const CostEstimateCap = 4

// Recipe is the matcher's view of a recipe: an id and its canonical
// ingredient list.
type Recipe struct {
	ID          string   `json:"id"`
	Ingredients []string `json:"ingredients"`
}

// Result is the outcome of matching one recipe against the available set.
// EstimatedMissingCost is nil when pricing was skipped (no pricer, cap
// exceeded, or the vendor lookup failed).
type Result struct {
	RecipeID             string   `json:"recipe_id"`
	MatchRatio           float64  `json:"match_ratio"`
	Matched              []string `json:"matched_ingredients"`
	Missing              []string `json:"missing_ingredients"`
	EffectiveMissing     []string `json:"effective_missing_ingredients"`
	EstimatedMissingCost *float64 `json:"estimated_missing_cost"`
}

// Pricer estimates the cost of buying a set of missing ingredients. The
// vendor basket builder implements it; a nil Pricer disables pricing.
type Pricer interface {
	EstimateCost(ctx context.Context, ingredients []string) (*float64, error)
}

// SortPolicy selects the total order applied to match results.
type SortPolicy string

const (
	// SortClosest ranks by match ratio descending.
	SortClosest SortPolicy = "closest"
	// SortFewest ranks by effective missing count ascending.
	SortFewest SortPolicy = "fewest"
	// SortCheapest ranks by estimated missing cost ascending, unknown cost last.
	SortCheapest SortPolicy = "cheapest"
	// SortPerfect ranks by effective missing count ascending, match ratio
	// descending as tie-break. The default.
	SortPerfect SortPolicy = "perfect"
)

// ParseSortPolicy rejects unknown policy names; the empty string selects the
// default.
func ParseSortPolicy(s string) (SortPolicy, bool) {
	switch SortPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return SortPerfect, true
	case SortClosest:
		return SortClosest, true
	case SortFewest:
		return SortFewest, true
	case SortCheapest:
		return SortCheapest, true
	case SortPerfect:
		return SortPerfect, true
	}
	return "", false
}

// Matcher scores recipes against an available-ingredient set, excluding
// pantry staples from the missing counts.
type Matcher struct {
	strategy Strategy
	staples  map[string]struct{}
}

// NewMatcher builds a matcher. A nil strategy falls back to substring
// matching.
func NewMatcher(strategy Strategy, staples []string) *Matcher {
	if strategy == nil {
		strategy = SubstringStrategy{}
	}
	stapleSet := make(map[string]struct{}, len(staples))
	for _, s := range staples {
		stapleSet[strings.ToLower(strings.TrimSpace(s))] = struct{}{}
	}
	return &Matcher{strategy: strategy, staples: stapleSet}
}

// Match scores a single recipe. A recipe ingredient is matched when any
// available ingredient satisfies the strategy. matchedCount + missingCount
// always equals the recipe's ingredient count, and the effective missing set
// is the missing set minus staples.
func (m *Matcher) Match(recipeID string, recipeIngredients, available []string) Result {
	result := Result{
		RecipeID:         recipeID,
		Matched:          []string{},
		Missing:          []string{},
		EffectiveMissing: []string{},
	}

	for _, required := range recipeIngredients {
		if m.isAvailable(required, available) {
			result.Matched = append(result.Matched, required)
		} else {
			result.Missing = append(result.Missing, required)
			if !m.isStaple(required) {
				result.EffectiveMissing = append(result.EffectiveMissing, required)
			}
		}
	}

	if total := len(recipeIngredients); total > 0 {
		result.MatchRatio = float64(len(result.Matched)) / float64(total)
	}
	return result
}

func (m *Matcher) isAvailable(required string, available []string) bool {
	for _, have := range available {
		if m.strategy.Matches(required, have) {
			return true
		}
	}
	return false
}

func (m *Matcher) isStaple(name string) bool {
	_, ok := m.staples[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// MatchAll scores a recipe corpus, prices the small baskets, and sorts by
// the given policy. Recipes with no listed ingredients are excluded rather
// than scored as zero. Pricing failures degrade that recipe's cost to nil;
// they never abort the batch.
func (m *Matcher) MatchAll(ctx context.Context, recipes []Recipe, available []string, pricer Pricer, policy SortPolicy) []Result {
	results := make([]Result, 0, len(recipes))
	for _, recipe := range recipes {
		if len(recipe.Ingredients) == 0 {
			continue
		}
		result := m.Match(recipe.ID, recipe.Ingredients, available)

		if pricer != nil && len(result.EffectiveMissing) > 0 && len(result.EffectiveMissing) <= CostEstimateCap {
			cost, err := pricer.EstimateCost(ctx, result.EffectiveMissing)
			if err != nil {
				common.LogWarn("missing-ingredient pricing failed",
					zap.String("recipe_id", recipe.ID),
					zap.Error(err),
				)
			} else {
				result.EstimatedMissingCost = cost
			}
		}
		results = append(results, result)
	}

	Sort(results, policy)
	return results
}

// Sort orders results by the policy. Every policy is a total order: ties fall
// through to the remaining keys and finally to recipe id, so equal inputs
// always produce the same ranking.
func Sort(results []Result, policy SortPolicy) {
	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		switch policy {
		case SortClosest:
			if a.MatchRatio != b.MatchRatio {
				return a.MatchRatio > b.MatchRatio
			}
			if len(a.EffectiveMissing) != len(b.EffectiveMissing) {
				return len(a.EffectiveMissing) < len(b.EffectiveMissing)
			}
		case SortFewest:
			if len(a.EffectiveMissing) != len(b.EffectiveMissing) {
				return len(a.EffectiveMissing) < len(b.EffectiveMissing)
			}
			if a.MatchRatio != b.MatchRatio {
				return a.MatchRatio > b.MatchRatio
			}
		case SortCheapest:
			if c := compareCost(a.EstimatedMissingCost, b.EstimatedMissingCost); c != 0 {
				return c < 0
			}
			if len(a.EffectiveMissing) != len(b.EffectiveMissing) {
				return len(a.EffectiveMissing) < len(b.EffectiveMissing)
			}
		default: // SortPerfect
			if len(a.EffectiveMissing) != len(b.EffectiveMissing) {
				return len(a.EffectiveMissing) < len(b.EffectiveMissing)
			}
			if a.MatchRatio != b.MatchRatio {
				return a.MatchRatio > b.MatchRatio
			}
		}
		return a.RecipeID < b.RecipeID
	})
}

// compareCost orders known costs ascending and puts nil (unknown) last.
func compareCost(a, b *float64) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case *a < *b:
		return -1
	case *a > *b:
		return 1
	}
	return 0
}
