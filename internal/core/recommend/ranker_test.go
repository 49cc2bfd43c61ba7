package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankSavedBucketWithCookTimePenalty(t *testing.T) {
	recs := Rank([]Candidate{
		{ID: "r1", IsSaved: true, NetVotes: 100, CookTimeMinutes: 120},
	}, nil, 10)

	require.Len(t, recs, 1)
	// 0.4 * (0.7 + 0.3*1.0) * 0.5
	assert.InDelta(t, 0.2, recs[0].Score, 1e-9)
	assert.Equal(t, ReasonCookbook, recs[0].Reason)
}

func TestRankSavedWithoutPenalty(t *testing.T) {
	recs := Rank([]Candidate{
		{ID: "r1", IsSaved: true, NetVotes: 50, CookTimeMinutes: 30},
	}, nil, 10)

	require.Len(t, recs, 1)
	assert.InDelta(t, 0.4*(0.7+0.3*0.5), recs[0].Score, 1e-9)
}

func TestRankSimilarBucket(t *testing.T) {
	saved := map[string]struct{}{"italian": {}}

	recs := Rank([]Candidate{
		{ID: "r1", ApproachID: "italian", ApproachName: "Italian Classics", NetVotes: 60, CookTimeMinutes: 45},
	}, saved, 10)

	require.Len(t, recs, 1)
	assert.Equal(t, "Popular in Italian Classics", recs[0].Reason)
	assert.InDelta(t, 0.3*0.6, recs[0].Score, 1e-9)
}

func TestRankSimilarWithoutApproachName(t *testing.T) {
	saved := map[string]struct{}{"a1": {}}

	recs := Rank([]Candidate{
		{ID: "r1", ApproachID: "a1", NetVotes: 200},
	}, saved, 10)

	require.Len(t, recs, 1)
	assert.Equal(t, ReasonSimilar, recs[0].Reason)
	// NetVotes normalization clamps at 1.
	assert.InDelta(t, 0.3, recs[0].Score, 1e-9)
}

func TestRankTrendingBucket(t *testing.T) {
	recs := Rank([]Candidate{
		{ID: "hot", RecentVotes: 40},
		{ID: "warm", RecentVotes: 10},
	}, nil, 10)

	require.Len(t, recs, 2)
	assert.Equal(t, "hot", recs[0].ID)
	assert.Equal(t, ReasonTrending, recs[0].Reason)
	// Recent votes normalize against the in-set maximum.
	assert.InDelta(t, 0.3, recs[0].Score, 1e-9)
	assert.InDelta(t, 0.3*0.25, recs[1].Score, 1e-9)
}

func TestRankOutputBounds(t *testing.T) {
	candidates := []Candidate{
		{ID: "a", IsSaved: true, NetVotes: 10},
		{ID: "b", RecentVotes: 5},
		{ID: "c", RecentVotes: 3},
		{ID: "c", RecentVotes: 99}, // duplicate id, dropped
		{ID: "d"},                  // all buckets zero, dropped
	}

	recs := Rank(candidates, nil, 2)

	assert.LessOrEqual(t, len(recs), 2)
	seen := map[string]struct{}{}
	for _, r := range recs {
		assert.Greater(t, r.Score, 0.0)
		_, dup := seen[r.ID]
		assert.False(t, dup)
		seen[r.ID] = struct{}{}
	}
}

func TestRankSavedNotDoubleCountedAsTrending(t *testing.T) {
	// A saved recipe with huge recent votes must win through the saved
	// bucket, not trending.
	recs := Rank([]Candidate{
		{ID: "r1", IsSaved: true, NetVotes: 0, RecentVotes: 1000},
	}, nil, 10)

	require.Len(t, recs, 1)
	assert.Equal(t, ReasonCookbook, recs[0].Reason)
	assert.InDelta(t, 0.4*0.7, recs[0].Score, 1e-9)
}

func TestTrendingFallback(t *testing.T) {
	candidates := []Candidate{
		{ID: "a", RecentVotes: 0, NetVotes: 0},
		{ID: "b", RecentVotes: 5, NetVotes: 1},
		{ID: "c", RecentVotes: 5, NetVotes: 9},
	}

	recs := TrendingFallback(candidates, 2)

	require.Len(t, recs, 2)
	assert.Equal(t, "c", recs[0].ID)
	assert.Equal(t, "b", recs[1].ID)
	for _, r := range recs {
		assert.Equal(t, ReasonTrending, r.Reason)
	}

	// Zero-signal candidates are still returned up to the limit.
	all := TrendingFallback(candidates[:1], 5)
	require.Len(t, all, 1)
	assert.Equal(t, "a", all[0].ID)
}

func TestTrendingFallbackDuplicatesDoNotShrinkLimit(t *testing.T) {
	candidates := []Candidate{
		{ID: "a", RecentVotes: 9},
		{ID: "a", RecentVotes: 9},
		{ID: "b", RecentVotes: 5},
		{ID: "c", RecentVotes: 1},
	}

	recs := TrendingFallback(candidates, 2)

	require.Len(t, recs, 2)
	assert.Equal(t, "a", recs[0].ID)
	assert.Equal(t, "b", recs[1].ID)
}
