package recommend

import (
	"fmt"
	"sort"
)

// Bucket weights and tuning constants. Product decisions; tune here, not in
// the scoring code.
const (
	weightSaved    = 0.4
	weightSimilar  = 0.3
	weightTrending = 0.3

	savedBase      = 0.7
	savedVoteShare = 0.3
	voteNorm       = 100.0

	longCookMinutes = 90
	longCookPenalty = 0.5
)

// Reason labels shown to users.
const (
	ReasonCookbook = "From your Cookbook"
	ReasonSimilar  = "Similar to your saves"
	ReasonTrending = "Trending"
)

// Candidate is one recipe under consideration. CookTimeMinutes zero means
// unknown.
type Candidate struct {
	ID              string `json:"id"`
	ApproachID      string `json:"approach_id"`
	ApproachName    string `json:"approach_name"`
	IsSaved         bool   `json:"is_saved"`
	NetVotes        int    `json:"net_votes"`
	RecentVotes     int    `json:"recent_votes"`
	CookTimeMinutes int    `json:"cook_time_minutes"`
}

// Recommendation is a ranked candidate with its winning score and reason.
type Recommendation struct {
	Candidate
	Score  float64 `json:"score"`
	Reason string  `json:"reason"`
}

// Rank scores candidates for the "Tonight" surface. Each candidate gets
// three independent bucket scores (saved, similar-approach, trending); the
// maximum wins and names the reason. Zero scores are dropped, duplicates by
// id are removed defensively, and the result is truncated to limit.
func Rank(candidates []Candidate, savedApproaches map[string]struct{}, limit int) []Recommendation {
	maxRecent := 1.0
	for _, c := range candidates {
		if float64(c.RecentVotes) > maxRecent {
			maxRecent = float64(c.RecentVotes)
		}
	}

	recs := make([]Recommendation, 0, len(candidates))
	seen := make(map[string]struct{}, len(candidates))

	for _, c := range candidates {
		if _, dup := seen[c.ID]; dup {
			continue
		}
		seen[c.ID] = struct{}{}

		score, reason := scoreCandidate(c, savedApproaches, maxRecent)
		if score <= 0 {
			continue
		}
		recs = append(recs, Recommendation{Candidate: c, Score: score, Reason: reason})
	}

	sort.Slice(recs, func(i, j int) bool {
		if recs[i].Score != recs[j].Score {
			return recs[i].Score > recs[j].Score
		}
		return recs[i].ID < recs[j].ID
	})

	if limit > 0 && len(recs) > limit {
		recs = recs[:limit]
	}
	return recs
}

// scoreCandidate computes the three bucket scores and returns the maximum
// with its reason. On exact ties the saved reason wins over similar, and
// similar over trending.
func scoreCandidate(c Candidate, savedApproaches map[string]struct{}, maxRecent float64) (float64, string) {
	penalty := cookTimePenalty(c.CookTimeMinutes)

	var saved, similar, trending float64

	if c.IsSaved {
		saved = weightSaved * (savedBase + savedVoteShare*normalize(float64(c.NetVotes), voteNorm)) * penalty
	}

	_, inSavedApproach := savedApproaches[c.ApproachID]
	if inSavedApproach && !c.IsSaved {
		similar = weightSimilar * normalize(float64(c.NetVotes), voteNorm) * penalty
	}

	if !c.IsSaved {
		trending = weightTrending * normalize(float64(c.RecentVotes), maxRecent) * penalty
	}

	switch {
	case saved >= similar && saved >= trending:
		if saved > 0 {
			return saved, ReasonCookbook
		}
	case similar >= trending:
		if similar > 0 {
			return similar, similarReason(c)
		}
	}
	if trending > 0 {
		return trending, ReasonTrending
	}

	// All buckets zero; pick the highest anyway so the caller's <=0 drop
	// sees a consistent value.
	return 0, ""
}

func similarReason(c Candidate) string {
	if c.ApproachName != "" {
		return fmt.Sprintf("Popular in %s", c.ApproachName)
	}
	return ReasonSimilar
}

// normalize clamps v/max to [0,1]. A non-positive max yields zero.
func normalize(v, max float64) float64 {
	if max <= 0 {
		return 0
	}
	n := v / max
	if n < 0 {
		return 0
	}
	if n > 1 {
		return 1
	}
	return n
}

// cookTimePenalty down-ranks long recipes without excluding them. Zero
// minutes means the cook time is unknown and carries no penalty.
func cookTimePenalty(minutes int) float64 {
	if minutes <= 0 || minutes <= longCookMinutes {
		return 1.0
	}
	return longCookPenalty
}

// TrendingFallback ranks by recent votes then net votes then id, fixed
// reason "Trending". Used when personalized ranking yields nothing; it
// always returns up to limit candidates regardless of score.
func TrendingFallback(candidates []Candidate, limit int) []Recommendation {
	sorted := make([]Candidate, len(candidates))
	copy(sorted, candidates)

	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].RecentVotes != sorted[j].RecentVotes {
			return sorted[i].RecentVotes > sorted[j].RecentVotes
		}
		if sorted[i].NetVotes != sorted[j].NetVotes {
			return sorted[i].NetVotes > sorted[j].NetVotes
		}
		return sorted[i].ID < sorted[j].ID
	})

	recs := make([]Recommendation, 0, len(sorted))
	seen := make(map[string]struct{}, len(sorted))
	for _, c := range sorted {
		if _, dup := seen[c.ID]; dup {
			continue
		}
		seen[c.ID] = struct{}{}
		recs = append(recs, Recommendation{Candidate: c, Reason: ReasonTrending})
		if limit > 0 && len(recs) == limit {
			break
		}
	}
	return recs
}
