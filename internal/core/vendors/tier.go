package vendors

import (
	"fmt"
	"strings"
)

// BudgetTier is the coarse pricing preference used to bias product
// selection.
type BudgetTier string

const (
	TierEconomy BudgetTier = "economy"
	TierNormal  BudgetTier = "normal"
	TierPremium BudgetTier = "premium"
)

// ErrUnknownTier is wrapped by ParseBudgetTier for unrecognized labels.
var ErrUnknownTier = fmt.Errorf("unknown budget tier")

// ParseBudgetTier maps a label to a tier. The empty string selects the
// default (normal); any other unrecognized label is rejected rather than
// silently defaulted.
func ParseBudgetTier(s string) (BudgetTier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return TierNormal, nil
	case string(TierEconomy):
		return TierEconomy, nil
	case string(TierNormal):
		return TierNormal, nil
	case string(TierPremium):
		return TierPremium, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTier, s)
}
