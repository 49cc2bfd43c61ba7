package search

import (
	"sort"
	"strings"
)

// Scoring weights. These are product decisions tuned against the live
// corpus; keep them named so retuning never touches the algorithm.
const (
	weightTitle          = 12.0
	bonusExactTitle      = 30.0
	weightStructured     = 9.0
	weightSummary        = 4.0
	weightIngredientText = 3.0
	bonusPerToken        = 2.0
	weightExternalRank   = 2.0
)

// Document is the scorer's view of a recipe. Ingredients holds the
// structured canonical names; IngredientText is the free-form ingredient
// block. Rank is an optional precomputed external relevance rank, zero when
// absent.
type Document struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Summary        string   `json:"summary"`
	Ingredients    []string `json:"ingredients"`
	IngredientText string   `json:"ingredient_text"`
	Rank           float64  `json:"rank"`
}

// Hit is one scored result.
type Hit struct {
	ID    string  `json:"id"`
	Score float64 `json:"score"`
}

// Scorer ranks documents against a query using multilingual alias
// expansion and inverse document frequency weighting.
type Scorer struct {
	expand func(query string) []string
}

// NewScorer takes the query-expansion function, normally the
// canonicalizer's Expand. A nil expand falls back to whitespace splitting.
func NewScorer(expand func(string) []string) *Scorer {
	if expand == nil {
		expand = func(q string) []string {
			return strings.Fields(strings.ToLower(q))
		}
	}
	return &Scorer{expand: expand}
}

// Score ranks the corpus against the query. Token matches are weighted by
// field and by inverse document frequency; rare tokens dominate common
// ones. Documents scoring zero or below are dropped; results come back
// sorted by score descending, id ascending on ties, truncated to limit.
func (s *Scorer) Score(docs []Document, query string, limit int) []Hit {
	tokens := dedupe(s.expand(query))
	if len(tokens) == 0 {
		return []Hit{}
	}
	queryNorm := strings.ToLower(strings.TrimSpace(query))

	idf := documentFrequencies(docs, tokens)

	hits := make([]Hit, 0, len(docs))
	for _, doc := range docs {
		score := s.scoreDocument(doc, tokens, queryNorm, idf)
		if score <= 0 {
			continue
		}
		hits = append(hits, Hit{ID: doc.ID, Score: score})
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Score != hits[j].Score {
			return hits[i].Score > hits[j].Score
		}
		return hits[i].ID < hits[j].ID
	})

	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}
	return hits
}

func (s *Scorer) scoreDocument(doc Document, tokens []string, queryNorm string, idf map[string]float64) float64 {
	title := strings.ToLower(doc.Title)
	summary := strings.ToLower(doc.Summary)
	ingredientText := strings.ToLower(doc.IngredientText)

	structured := make([]string, len(doc.Ingredients))
	for i, ing := range doc.Ingredients {
		structured[i] = strings.ToLower(ing)
	}

	var score float64
	matchedTokens := 0

	for _, token := range tokens {
		weight := idf[token]
		matched := false

		if strings.Contains(title, token) {
			score += weightTitle * weight
			matched = true
		}
		for _, ing := range structured {
			if strings.Contains(ing, token) {
				score += weightStructured * weight
				matched = true
				break
			}
		}
		if strings.Contains(summary, token) {
			score += weightSummary * weight
			matched = true
		}
		if strings.Contains(ingredientText, token) {
			score += weightIngredientText * weight
			matched = true
		}

		if matched {
			matchedTokens++
		}
	}

	// Exact title equality is a strong unambiguous signal; flat bonus, not
	// idf-weighted.
	if queryNorm != "" && title == queryNorm {
		score += bonusExactTitle
	}

	score += bonusPerToken * float64(matchedTokens)

	if doc.Rank > 0 {
		score += weightExternalRank * doc.Rank
	}
	return score
}

// documentFrequencies computes idf(t) = 1 / max(1, df(t)) over the corpus,
// where a document "contains" a token when any searched field does.
func documentFrequencies(docs []Document, tokens []string) map[string]float64 {
	df := make(map[string]int, len(tokens))
	for _, doc := range docs {
		haystack := strings.ToLower(strings.Join(append([]string{doc.Title, doc.Summary, doc.IngredientText}, doc.Ingredients...), " "))
		for _, token := range tokens {
			if strings.Contains(haystack, token) {
				df[token]++
			}
		}
	}

	idf := make(map[string]float64, len(tokens))
	for _, token := range tokens {
		n := df[token]
		if n < 1 {
			n = 1
		}
		idf[token] = 1.0 / float64(n)
	}
	return idf
}

func dedupe(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
