package session

import (
	"time"

	"ingredient-intelligence/internal/pkg/common"

	"github.com/google/uuid"
)

// Session accumulates the deduplicated set of ingredients recognised across
// one or more photo scans sharing a session id. Ingredients are keyed by
// canonical name.
type Session struct {
	ID          string                                 `json:"id"`
	Ingredients map[string]common.RecognisedIngredient `json:"ingredients"`
	ScansCount  int                                    `json:"scans_count"`
	CreatedAt   time.Time                              `json:"created_at"`
}

// NewID returns a fresh session id.
func NewID() string {
	return uuid.New().String()
}

// OverallConfidence is the arithmetic mean of the stored ingredient
// confidences, 0 for an empty session.
func (s *Session) OverallConfidence() float64 {
	if len(s.Ingredients) == 0 {
		return 0
	}
	var sum float64
	for _, ing := range s.Ingredients {
		sum += ing.Confidence
	}
	return sum / float64(len(s.Ingredients))
}

// Clone returns a deep copy so repositories can hand out snapshots without
// exposing their internal maps.
func (s *Session) Clone() *Session {
	cp := *s
	cp.Ingredients = make(map[string]common.RecognisedIngredient, len(s.Ingredients))
	for k, v := range s.Ingredients {
		cp.Ingredients[k] = v
	}
	return &cp
}

// mergeIngredients applies the confidence-wins merge rule in place. For an
// existing canonical name the higher-confidence entry is kept; on equal
// confidence the existing entry wins, which keeps repeated merges
// deterministic. The incoming SourceContext is adopted only when the
// retained entry has none.
func mergeIngredients(into map[string]common.RecognisedIngredient, items []common.RecognisedIngredient) {
	for _, item := range items {
		if item.CanonicalName == "" {
			continue
		}
		existing, ok := into[item.CanonicalName]
		if !ok {
			into[item.CanonicalName] = item
			continue
		}
		if item.Confidence > existing.Confidence {
			if item.SourceContext == "" {
				item.SourceContext = existing.SourceContext
			}
			into[item.CanonicalName] = item
			continue
		}
		if existing.SourceContext == "" && item.SourceContext != "" {
			existing.SourceContext = item.SourceContext
			into[item.CanonicalName] = existing
		}
	}
}
