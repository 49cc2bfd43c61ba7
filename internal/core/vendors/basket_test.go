package vendors

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBudgetTier(t *testing.T) {
	tests := []struct {
		in      string
		want    BudgetTier
		wantErr bool
	}{
		{"economy", TierEconomy, false},
		{"Normal", TierNormal, false},
		{" PREMIUM ", TierPremium, false},
		{"", TierNormal, false},
		{"luxury", "", true},
	}
	for _, tt := range tests {
		got, err := ParseBudgetTier(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrUnknownTier, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestMockCatalogDeterministicAndTierOrdered(t *testing.T) {
	catalog := &MockCatalog{}
	ctx := context.Background()

	first, err := catalog.Search(ctx, "tomato", "", "v1", TierPremium)
	require.NoError(t, err)
	second, err := catalog.Search(ctx, "tomato", "", "v1", TierPremium)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	require.NotEmpty(t, first)
	assert.Equal(t, TierPremium, first[0].Tier)
}

func TestMockCatalogUnknownIngredient(t *testing.T) {
	catalog := &MockCatalog{Unknown: []string{"dragon"}}

	products, err := catalog.Search(context.Background(), "dragon fruit", "", "v1", TierNormal)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestBuildBasket(t *testing.T) {
	builder := NewBuilder(&MockCatalog{Unknown: []string{"saffron"}}, "v1", TierNormal, "RON")

	basket := builder.Build(context.Background(), []Request{
		{CanonicalName: "tomato"},
		{CanonicalName: "saffron", SubstitutionCandidates: []string{"turmeric"}},
		{CanonicalName: "onion"},
	})

	require.Len(t, basket.Entries, 3)
	assert.Equal(t, "RON", basket.Currency)

	tomato := basket.Entries[0]
	require.NotNil(t, tomato.Recommended)
	assert.Equal(t, TierNormal, tomato.Recommended.Tier)
	assert.NotEmpty(t, tomato.Options)

	saffron := basket.Entries[1]
	assert.True(t, saffron.Unmatched)
	assert.Nil(t, saffron.Recommended)
	assert.Equal(t, "turmeric", saffron.Substitution)

	want := basket.Entries[0].Recommended.PricePerUnit + basket.Entries[2].Recommended.PricePerUnit
	assert.InDelta(t, want, basket.EstimatedTotal, 0.005)
}

type failingCatalog struct{}

func (failingCatalog) Search(context.Context, string, string, string, BudgetTier) ([]Product, error) {
	return nil, errors.New("upstream down")
}

func TestBuildBasketCatalogFailureIsPartial(t *testing.T) {
	builder := NewBuilder(failingCatalog{}, "v1", TierNormal, "RON")

	basket := builder.Build(context.Background(), []Request{{CanonicalName: "tomato"}})

	require.Len(t, basket.Entries, 1)
	assert.True(t, basket.Entries[0].Unmatched)
	assert.Zero(t, basket.EstimatedTotal)
}

func TestEstimateCost(t *testing.T) {
	builder := NewBuilder(&MockCatalog{}, "v1", TierEconomy, "RON")

	cost, err := builder.EstimateCost(context.Background(), []string{"tomato", "onion"})
	require.NoError(t, err)
	require.NotNil(t, cost)
	assert.Greater(t, *cost, 0.0)
}
