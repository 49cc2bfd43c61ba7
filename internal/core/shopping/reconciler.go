package shopping

import (
	"strings"
	"unicode"

	"ingredient-intelligence/internal/pkg/common"
)

// ListItem is one row of an existing shopping list.
type ListItem struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Checked bool   `json:"checked"`
}

// Patch is one instruction to mark a list item checked. Applying patches is
// the caller's side effect; the reconciler only computes the diff.
type Patch struct {
	ItemID  string `json:"item_id"`
	Checked bool   `json:"checked"`
}

// Diff is the reconciliation result: patches for matched-but-unchecked
// items, plus the recognized ingredients no list item matched.
type Diff struct {
	Patches              []Patch  `json:"patches"`
	UnmatchedIngredients []string `json:"unmatched_ingredients"`
}

// Reconcile matches recognized ingredients against list items. Both sides
// are normalized (lowercase, non-alphanumerics stripped, whitespace
// collapsed) and an item matches when the forms are equal or one contains
// the other. Already-checked items never re-match, and each item is claimed
// by at most one ingredient.
func Reconcile(ingredients []common.RecognisedIngredient, items []ListItem) Diff {
	diff := Diff{
		Patches:              []Patch{},
		UnmatchedIngredients: []string{},
	}

	claimed := make(map[string]struct{})

	for _, ing := range ingredients {
		item, ok := findMatch(ing, items, claimed)
		if !ok {
			diff.UnmatchedIngredients = append(diff.UnmatchedIngredients, ing.Name)
			continue
		}
		claimed[item.ID] = struct{}{}
		if !item.Checked {
			diff.Patches = append(diff.Patches, Patch{ItemID: item.ID, Checked: true})
		}
	}
	return diff
}

// findMatch tries the canonical name first, falling back to the raw
// recognized name. List items carry free-form display names and may have
// been typed in either form.
func findMatch(ing common.RecognisedIngredient, items []ListItem, claimed map[string]struct{}) (ListItem, bool) {
	for _, candidate := range []string{ing.CanonicalName, ing.Name} {
		normalized := normalize(candidate)
		if normalized == "" {
			continue
		}
		for _, item := range items {
			if _, taken := claimed[item.ID]; taken {
				continue
			}
			if item.Checked {
				continue
			}
			itemNorm := normalize(item.Name)
			if itemNorm == "" {
				continue
			}
			if itemNorm == normalized ||
				strings.Contains(itemNorm, normalized) ||
				strings.Contains(normalized, itemNorm) {
				return item, true
			}
		}
	}
	return ListItem{}, false
}

// normalize lowercases, replaces every non-alphanumeric rune with a space,
// and collapses runs of whitespace to a single space.
func normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
