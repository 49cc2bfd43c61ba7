package recognition

import (
	"context"

	"ingredient-intelligence/internal/core/ingredient"
	"ingredient-intelligence/internal/core/vendors"
	"ingredient-intelligence/internal/pkg/common"
)

// MockRecogniser is a deterministic Recogniser for development and tests:
// Recognise returns a fixed ingredient set, Normalise runs the in-process
// canonicalizer plus small category and substitution lookup tables.
type MockRecogniser struct {
	// Fixed holds the ingredients Recognise returns. Empty means a small
	// default set.
	Fixed []common.RecognisedIngredient
}

var _ Recogniser = (*MockRecogniser)(nil)

var defaultRecognised = []common.RecognisedIngredient{
	{Name: "tomato", CanonicalName: "tomato", Confidence: 0.92},
	{Name: "onion", CanonicalName: "onion", Confidence: 0.88},
	{Name: "garlic", CanonicalName: "garlic", Confidence: 0.75},
}

var categoryTable = map[string]string{
	"tomato":  "vegetables",
	"onion":   "vegetables",
	"garlic":  "vegetables",
	"pepper":  "vegetables",
	"potato":  "vegetables",
	"carrot":  "vegetables",
	"chicken": "meat",
	"beef":    "meat",
	"pork":    "meat",
	"egg":     "dairy-eggs",
	"milk":    "dairy-eggs",
	"butter":  "dairy-eggs",
	"cheese":  "dairy-eggs",
	"flour":   "baking",
	"sugar":   "baking",
	"rice":    "grains",
	"pasta":   "grains",
}

var substitutionTable = map[string][]string{
	"butter":  {"margarine", "olive oil"},
	"milk":    {"oat milk", "soy milk"},
	"cream":   {"coconut cream", "greek yogurt"},
	"egg":     {"applesauce", "flaxseed meal"},
	"chicken": {"tofu", "turkey"},
	"sugar":   {"honey", "maple syrup"},
}

func (m *MockRecogniser) Recognise(_ context.Context, image []byte, _ string) (*Output, error) {
	if len(image) == 0 {
		return nil, common.NewError(common.ErrCodeInvalidRequest, "empty image", nil)
	}
	out := defaultRecognised
	if len(m.Fixed) > 0 {
		out = m.Fixed
	}
	copied := make([]common.RecognisedIngredient, len(out))
	copy(copied, out)
	return &Output{Ingredients: copied, ProcessingTimeMs: 1}, nil
}

func (m *MockRecogniser) Normalise(_ context.Context, raw []string, _ vendors.BudgetTier, _ string) ([]Normalised, error) {
	results := make([]Normalised, 0, len(raw))
	for _, original := range raw {
		canonical := ingredient.Canonicalize(original)
		results = append(results, Normalised{
			Original:               original,
			CanonicalName:          canonical,
			Category:               categoryTable[canonical],
			SubstitutionCandidates: substitutionTable[canonical],
		})
	}
	return results, nil
}
