package match

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchPizzaScenario(t *testing.T) {
	m := NewMatcher(SubstringStrategy{}, []string{"olive oil", "salt"})

	result := m.Match("pizza",
		[]string{"pizza dough", "tomato sauce", "fresh mozzarella", "fresh basil", "olive oil", "salt"},
		[]string{"dough", "tomato sauce", "mozzarella"},
	)

	assert.Equal(t, []string{"pizza dough", "tomato sauce", "fresh mozzarella"}, result.Matched)
	assert.Equal(t, []string{"fresh basil", "olive oil", "salt"}, result.Missing)
	assert.Equal(t, []string{"fresh basil"}, result.EffectiveMissing)
	assert.InDelta(t, 0.5, result.MatchRatio, 1e-9)
}

func TestMatchRatioBounds(t *testing.T) {
	m := NewMatcher(SubstringStrategy{}, []string{"salt"})

	cases := [][2][]string{
		{{"a", "b", "c"}, {"a"}},
		{{"tomato"}, {"tomato"}},
		{{"tomato", "salt"}, nil},
		{{"x", "y", "z", "salt"}, {"q"}},
	}
	for i, c := range cases {
		result := m.Match(fmt.Sprintf("r%d", i), c[0], c[1])
		assert.GreaterOrEqual(t, result.MatchRatio, 0.0)
		assert.LessOrEqual(t, result.MatchRatio, 1.0)
		assert.LessOrEqual(t, len(result.EffectiveMissing), len(result.Missing))
		assert.LessOrEqual(t, len(result.Missing), len(c[0]))
		assert.Equal(t, len(c[0]), len(result.Matched)+len(result.Missing))
	}
}

type fixedPricer struct {
	costs map[int]float64
	err   error
	calls int
}

func (p *fixedPricer) EstimateCost(_ context.Context, ingredients []string) (*float64, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	cost := p.costs[len(ingredients)]
	return &cost, nil
}

func TestMatchAllCostCap(t *testing.T) {
	m := NewMatcher(SubstringStrategy{}, nil)
	pricer := &fixedPricer{costs: map[int]float64{2: 14.50}}

	recipes := []Recipe{
		{ID: "small-gap", Ingredients: []string{"tomato", "onion", "basil", "dill"}},
		{ID: "big-gap", Ingredients: []string{"a", "b", "c", "d", "e", "f"}},
	}

	results := m.MatchAll(context.Background(), recipes, []string{"tomato", "onion"}, pricer, SortPerfect)
	require.Len(t, results, 2)

	byID := map[string]Result{}
	for _, r := range results {
		byID[r.RecipeID] = r
	}

	require.NotNil(t, byID["small-gap"].EstimatedMissingCost)
	assert.InDelta(t, 14.50, *byID["small-gap"].EstimatedMissingCost, 1e-9)

	// Five effective missing is over the cap; cost stays null and the
	// pricer is never asked.
	assert.Nil(t, byID["big-gap"].EstimatedMissingCost)
	assert.Equal(t, 1, pricer.calls)
}

func TestMatchAllPricerFailureDegrades(t *testing.T) {
	m := NewMatcher(SubstringStrategy{}, nil)
	pricer := &fixedPricer{err: errors.New("catalog down")}

	results := m.MatchAll(context.Background(),
		[]Recipe{{ID: "r1", Ingredients: []string{"tomato", "basil"}}},
		[]string{"tomato"}, pricer, SortPerfect)

	require.Len(t, results, 1)
	assert.Nil(t, results[0].EstimatedMissingCost)
}

func TestMatchAllSkipsEmptyRecipes(t *testing.T) {
	m := NewMatcher(SubstringStrategy{}, nil)

	results := m.MatchAll(context.Background(),
		[]Recipe{{ID: "empty"}, {ID: "real", Ingredients: []string{"tomato"}}},
		[]string{"tomato"}, nil, SortPerfect)

	require.Len(t, results, 1)
	assert.Equal(t, "real", results[0].RecipeID)
}

func TestSortPolicies(t *testing.T) {
	cost := func(v float64) *float64 { return &v }
	base := func() []Result {
		return []Result{
			{RecipeID: "a", MatchRatio: 0.5, EffectiveMissing: []string{"x", "y"}, EstimatedMissingCost: cost(8)},
			{RecipeID: "b", MatchRatio: 0.9, EffectiveMissing: []string{"x", "y", "z"}, EstimatedMissingCost: nil},
			{RecipeID: "c", MatchRatio: 0.7, EffectiveMissing: []string{"x"}, EstimatedMissingCost: cost(3)},
			{RecipeID: "d", MatchRatio: 0.7, EffectiveMissing: []string{"x"}, EstimatedMissingCost: cost(3)},
		}
	}

	order := func(results []Result) []string {
		ids := make([]string, len(results))
		for i, r := range results {
			ids[i] = r.RecipeID
		}
		return ids
	}

	tests := []struct {
		policy SortPolicy
		want   []string
	}{
		{SortClosest, []string{"b", "c", "d", "a"}},
		{SortFewest, []string{"c", "d", "a", "b"}},
		{SortCheapest, []string{"c", "d", "a", "b"}},
		{SortPerfect, []string{"c", "d", "a", "b"}},
	}
	for _, tt := range tests {
		results := base()
		Sort(results, tt.policy)
		assert.Equal(t, tt.want, order(results), "policy %s", tt.policy)
	}
}

func TestParseSortPolicy(t *testing.T) {
	p, ok := ParseSortPolicy("")
	assert.True(t, ok)
	assert.Equal(t, SortPerfect, p)

	p, ok = ParseSortPolicy("CHEAPEST")
	assert.True(t, ok)
	assert.Equal(t, SortCheapest, p)

	_, ok = ParseSortPolicy("random")
	assert.False(t, ok)
}
