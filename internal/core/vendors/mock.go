package vendors

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"sort"
	"strings"
)

// MockCatalog is a deterministic in-process catalog for development and
// tests. Prices are derived from a hash of the ingredient name so the same
// query always yields the same basket, and tier ordering is stable:
// products matching the requested tier come first.
type MockCatalog struct {
	// Unknown drops any ingredient whose name contains one of these
	// fragments, simulating catalog gaps.
	Unknown []string
}

var _ Catalog = (*MockCatalog)(nil)

// Search synthesizes up to three products per ingredient, requested tier
// first. It never fails.
func (m *MockCatalog) Search(_ context.Context, canonicalName, category, vendorID string, tier BudgetTier) ([]Product, error) {
	name := strings.ToLower(strings.TrimSpace(canonicalName))
	if name == "" {
		return []Product{}, nil
	}
	for _, fragment := range m.Unknown {
		if fragment != "" && strings.Contains(name, strings.ToLower(fragment)) {
			return []Product{}, nil
		}
	}
	if vendorID == "" {
		vendorID = "mock-vendor"
	}

	base := basePrice(name)
	products := []Product{
		{Name: name + " (store brand)", PricePerUnit: round2(base * 0.8), VendorID: vendorID, Tier: TierEconomy},
		{Name: name, PricePerUnit: round2(base), VendorID: vendorID, Tier: TierNormal},
		{Name: name + " (organic)", PricePerUnit: round2(base * 1.6), VendorID: vendorID, Tier: TierPremium},
	}
	if category != "" {
		for i := range products {
			products[i].Name = fmt.Sprintf("%s [%s]", products[i].Name, category)
		}
	}

	// Requested tier first, then ascending price; SliceStable keeps the
	// synthesized order deterministic.
	sort.SliceStable(products, func(i, j int) bool {
		iMatch, jMatch := products[i].Tier == tier, products[j].Tier == tier
		if iMatch != jMatch {
			return iMatch
		}
		return products[i].PricePerUnit < products[j].PricePerUnit
	})
	return products, nil
}

// basePrice maps a name to a stable pseudo-price in the 2.00–12.00 range.
func basePrice(name string) float64 {
	sum := sha256.Sum256([]byte(name))
	n := binary.BigEndian.Uint32(sum[:4])
	return 2.0 + float64(n%1000)/100.0
}

func round2(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}
