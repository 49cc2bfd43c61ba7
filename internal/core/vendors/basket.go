package vendors

import (
	"context"
	"math"

	"ingredient-intelligence/internal/pkg/common"

	"go.uber.org/zap"
)

// Request is one basket line to resolve against the catalog. Category and
// SubstitutionCandidates come from the recognition normalizer when
// available; both are optional.
type Request struct {
	CanonicalName          string
	Category               string
	SubstitutionCandidates []string
}

// Entry is one resolved basket line. Recommended is nil and Unmatched true
// when the catalog had no candidates; Substitution then carries the
// normalizer's best-effort suggestion, if any.
type Entry struct {
	Ingredient   string    `json:"ingredient"`
	Recommended  *Product  `json:"recommended"`
	Options      []Product `json:"options"`
	Unmatched    bool      `json:"unmatched"`
	Substitution string    `json:"substitution,omitempty"`
}

// Basket is the priced result: EstimatedTotal sums the recommended product
// prices, rounded to 2 decimals.
type Basket struct {
	Entries        []Entry `json:"entries"`
	EstimatedTotal float64 `json:"estimated_total"`
	Currency       string  `json:"currency"`
}

// Builder resolves ingredient lists into priced baskets through a Catalog.
// It also satisfies the matcher's Pricer contract.
type Builder struct {
	catalog  Catalog
	vendorID string
	tier     BudgetTier
	currency string
}

// NewBuilder wires a basket builder. An empty tier falls back to normal.
func NewBuilder(catalog Catalog, vendorID string, tier BudgetTier, currency string) *Builder {
	if tier == "" {
		tier = TierNormal
	}
	return &Builder{
		catalog:  catalog,
		vendorID: vendorID,
		tier:     tier,
		currency: currency,
	}
}

// Build resolves each request independently: the first catalog candidate is
// the recommendation, the full list is exposed as pack-size options. A
// catalog failure or empty result for one ingredient marks that entry
// unmatched and the build continues; partial baskets are expected.
func (b *Builder) Build(ctx context.Context, requests []Request) Basket {
	basket := Basket{
		Entries:  make([]Entry, 0, len(requests)),
		Currency: b.currency,
	}

	var total float64
	for _, req := range requests {
		entry := Entry{Ingredient: req.CanonicalName}

		products, err := b.catalog.Search(ctx, req.CanonicalName, req.Category, b.vendorID, b.tier)
		if err != nil {
			common.LogWarn("vendor search failed, entry left unmatched",
				zap.String("ingredient", req.CanonicalName),
				zap.Error(err),
			)
			products = nil
		}

		if len(products) == 0 {
			entry.Unmatched = true
			if len(req.SubstitutionCandidates) > 0 {
				entry.Substitution = req.SubstitutionCandidates[0]
			}
		} else {
			recommended := products[0]
			entry.Recommended = &recommended
			entry.Options = products
			total += recommended.PricePerUnit
		}
		basket.Entries = append(basket.Entries, entry)
	}

	basket.EstimatedTotal = math.Round(total*100) / 100
	return basket
}

// EstimateCost prices a plain ingredient list, returning the basket total.
// Ingredients the catalog cannot match simply contribute nothing.
func (b *Builder) EstimateCost(ctx context.Context, ingredients []string) (*float64, error) {
	requests := make([]Request, 0, len(ingredients))
	for _, name := range ingredients {
		requests = append(requests, Request{CanonicalName: name})
	}
	basket := b.Build(ctx, requests)
	return &basket.EstimatedTotal, nil
}
