package shopping

import (
	"context"
	"fmt"
	"sort"

	"ingredient-intelligence/internal/core/session"
	"ingredient-intelligence/internal/pkg/common"

	"go.uber.org/zap"
)

// Service ties a recognition session to a shopping list: it computes the
// reconciliation diff and applies the resulting patches.
type Service struct {
	sessions session.Repository
	lists    ListStore
}

func NewService(sessions session.Repository, lists ListStore) *Service {
	return &Service{sessions: sessions, lists: lists}
}

// AutoCheck loads the session's recognized ingredients, reconciles them
// against the list, and patches every matched-but-unchecked item. An
// unknown session id surfaces session.ErrSessionNotFound; a patch failure
// on one item is logged and the rest are still applied.
func (s *Service) AutoCheck(ctx context.Context, sessionID, listID string) (Diff, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return Diff{}, fmt.Errorf("load session %s: %w", sessionID, err)
	}

	items, err := s.lists.Items(ctx, listID)
	if err != nil {
		return Diff{}, fmt.Errorf("load shopping list %s: %w", listID, err)
	}

	// Map iteration order is random; sort so claiming is deterministic when
	// two ingredients could match the same item.
	ingredients := make([]common.RecognisedIngredient, 0, len(sess.Ingredients))
	for _, ing := range sess.Ingredients {
		ingredients = append(ingredients, ing)
	}
	sort.Slice(ingredients, func(i, j int) bool {
		return ingredients[i].CanonicalName < ingredients[j].CanonicalName
	})

	diff := Reconcile(ingredients, items)

	for _, patch := range diff.Patches {
		if err := s.lists.Patch(ctx, patch.ItemID, patch.Checked); err != nil {
			common.LogWarn("shopping list patch failed",
				zap.String("item_id", patch.ItemID),
				zap.Error(err),
			)
		}
	}

	common.LogInfo("shopping list reconciled",
		zap.String("session_id", sessionID),
		zap.String("list_id", listID),
		zap.Int("patched", len(diff.Patches)),
		zap.Int("unmatched", len(diff.UnmatchedIngredients)),
	)
	return diff, nil
}
