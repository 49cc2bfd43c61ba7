package vendors

import "context"

// Product is a single catalog entry, read-only from this subsystem's point
// of view.
type Product struct {
	Name         string     `json:"name"`
	PricePerUnit float64    `json:"price_per_unit"`
	VendorID     string     `json:"vendor_id"`
	Tier         BudgetTier `json:"tier"`
}

// Catalog is the vendor product lookup contract. Implementations return
// candidates ordered best-for-tier first, and an empty slice (not an error)
// when nothing matches.
type Catalog interface {
	Search(ctx context.Context, canonicalName, category, vendorID string, tier BudgetTier) ([]Product, error)
}
