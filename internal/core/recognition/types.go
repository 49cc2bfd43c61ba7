package recognition

import (
	"context"

	"ingredient-intelligence/internal/core/vendors"
	"ingredient-intelligence/internal/pkg/common"
)

// Output is a single recognition call's result.
type Output struct {
	Ingredients      []common.RecognisedIngredient `json:"ingredients"`
	ProcessingTimeMs int64                         `json:"processing_time_ms"`
}

// Normalised is the normalizer's verdict on one raw ingredient string.
type Normalised struct {
	Original               string   `json:"original"`
	CanonicalName          string   `json:"canonical_name"`
	Category               string   `json:"category"`
	SubstitutionCandidates []string `json:"substitution_candidates"`
}

// Recogniser is the external AI collaborator contract: photo recognition
// and ingredient normalization. Implementations are a remote service or a
// deterministic mock.
type Recogniser interface {
	Recognise(ctx context.Context, image []byte, contextHint string) (*Output, error)
	Normalise(ctx context.Context, raw []string, tier vendors.BudgetTier, vendorName string) ([]Normalised, error)
}
