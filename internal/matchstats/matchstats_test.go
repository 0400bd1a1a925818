// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package matchstats

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/leaderboard/pkg/types"
)

func samplePapers() []types.Paper {
	return []types.Paper{
		{ID: "ai-1", Title: "Masking Mandates and ILI", Source: types.SourceAI},
		{ID: "ai-2", Title: "Heat Waves and ER Visits", Source: types.SourceAI},
		{ID: "hu-1", Title: "Measles Outbreak Dynamics", Source: types.SourceHuman},
	}
}

// --- win rate ---

func TestWinRate(t *testing.T) {
	tests := []struct {
		ai, human int
		want      float64
	}{
		{3, 1, 75.0},
		{0, 0, 0},
		{0, 5, 0},
		{5, 0, 100},
		{1, 2, 100.0 / 3},
		{-3, 1, 0},
		{4, -1, 100},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d-%d", tt.ai, tt.human), func(t *testing.T) {
			got := WinRate(tt.ai, tt.human)
			assert.False(t, math.IsNaN(got))
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestWinRateAlwaysInRange(t *testing.T) {
	for ai := 0; ai <= 30; ai++ {
		for human := 0; human <= 30; human++ {
			got := WinRate(ai, human)
			require.False(t, math.IsNaN(got))
			require.GreaterOrEqual(t, got, 0.0)
			require.LessOrEqual(t, got, 100.0)
		}
	}
}

// --- compute ---

func TestCompute(t *testing.T) {
	summary := types.MatchSummary{
		LastUpdated:  "2026-02-14T09:30:00+00:00",
		TotalMatches: 1240,
		AIVsHuman:    types.HeadToHead{AIWins: 3, HumanWins: 1, Ties: 2},
	}

	got := Compute(samplePapers(), summary, nil)
	assert.Equal(t, Stats{
		TotalPapers:      3,
		TotalMatches:     1240,
		AIWinRatePercent: 75.0,
		LastUpdatedLabel: "Feb 14, 2026",
	}, got)
}

func TestComputeEmptySummary(t *testing.T) {
	got := Compute(nil, types.MatchSummary{}, nil)
	assert.Equal(t, 0.0, got.AIWinRatePercent)
	assert.Equal(t, UnknownDate, got.LastUpdatedLabel)
}

// --- dates ---

func TestDateLabel(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"rfc3339 with offset", "2026-01-05T23:10:00+00:00", "Jan 5, 2026"},
		{"rfc3339 zulu with fraction", "2026-03-01T08:00:00.123Z", "Mar 1, 2026"},
		{"no zone", "2026-07-04T12:00:00", "Jul 4, 2026"},
		{"date only", "2025-12-31", "Dec 31, 2025"},
		{"empty", "", UnknownDate},
		{"garbage", "not a date", UnknownDate},
		{"out of range", "2026-13-45", UnknownDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DateLabel(tt.raw, time.UTC))
		})
	}
}

func TestDateLabelLocation(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	assert.Equal(t, "Jan 4, 2026", DateLabel("2026-01-05T02:00:00Z", loc))
}

func TestFormatLabels(t *testing.T) {
	assert.Equal(t, "12,345", FormatCount(12345))
	assert.Equal(t, "7", FormatCount(7))
	assert.Equal(t, "75.0%", FormatRate(75))
	assert.Equal(t, "0.0%", FormatRate(0))
}

// --- recent matches ---

func TestResolve(t *testing.T) {
	recent := []types.Match{
		{PaperA: "ai-1", PaperB: "hu-1", Winner: types.WinnerA, Date: "2026-02-10T10:00:00Z"},
		{PaperA: "ai-2", PaperB: "hu-1", Winner: types.WinnerB, Date: "bad"},
		{PaperA: "ai-1", PaperB: "hu-1", Winner: types.WinnerTie, Date: "2026-02-08"},
	}

	got := Resolve(samplePapers(), recent, time.UTC)
	assert.Equal(t, []ResolvedMatch{
		{TitleA: "Masking Mandates and ILI", TitleB: "Measles Outbreak Dynamics", WinnerLabel: "Masking Mandates and ILI", DateLabel: "Feb 10, 2026"},
		{TitleA: "Heat Waves and ER Visits", TitleB: "Measles Outbreak Dynamics", WinnerLabel: "Measles Outbreak Dynamics", DateLabel: UnknownDate},
		{TitleA: "Masking Mandates and ILI", TitleB: "Measles Outbreak Dynamics", WinnerLabel: TieLabel, DateLabel: "Feb 8, 2026"},
	}, got)
}

func TestResolveDropsUnknownPapers(t *testing.T) {
	recent := []types.Match{
		{PaperA: "ai-1", PaperB: "removed", Winner: types.WinnerA},
		{PaperA: "gone", PaperB: "hu-1", Winner: types.WinnerB},
		{PaperA: "ai-2", PaperB: "hu-1", Winner: types.WinnerA},
	}

	got := Resolve(samplePapers(), recent, nil)
	require.Len(t, got, 1)
	assert.Equal(t, "Heat Waves and ER Visits", got[0].TitleA)
}

func TestResolveUnknownWinnerIsTie(t *testing.T) {
	recent := []types.Match{{PaperA: "ai-1", PaperB: "hu-1", Winner: "draw?"}}
	got := Resolve(samplePapers(), recent, nil)
	require.Len(t, got, 1)
	assert.Equal(t, TieLabel, got[0].WinnerLabel)
}

func TestResolveEmpty(t *testing.T) {
	got := Resolve(samplePapers(), nil, nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

// --- summarize ---

func TestSummarize(t *testing.T) {
	var log []types.Match
	for i := 0; i < 25; i++ {
		winner := types.WinnerA
		switch i % 3 {
		case 1:
			winner = types.WinnerB
		case 2:
			winner = types.WinnerTie
		}
		log = append(log, types.Match{
			PaperA: "ai-1",
			PaperB: "hu-1",
			Winner: winner,
			Date:   fmt.Sprintf("2026-02-%02dT00:00:00Z", i+1),
		})
	}
	now := time.Date(2026, 2, 26, 12, 0, 0, 0, time.UTC)

	got := Summarize(samplePapers(), log, 20, now)

	assert.Equal(t, 25, got.TotalMatches)
	assert.Equal(t, types.HeadToHead{AIWins: 9, HumanWins: 8, Ties: 8}, got.AIVsHuman)
	assert.Equal(t, "2026-02-26T12:00:00Z", got.LastUpdated)
	require.Len(t, got.RecentMatches, 20)
	assert.Equal(t, "2026-02-25T00:00:00Z", got.RecentMatches[0].Date)
	assert.Equal(t, "2026-02-06T00:00:00Z", got.RecentMatches[19].Date)
}

func TestSummarizeCreditsWinnerSource(t *testing.T) {
	log := []types.Match{
		// Human paper listed first and winning: a human win.
		{PaperA: "hu-1", PaperB: "ai-2", Winner: types.WinnerA},
		// Unknown winner id falls back to position.
		{PaperA: "missing", PaperB: "hu-1", Winner: types.WinnerA},
		{PaperA: "ai-1", PaperB: "missing", Winner: types.WinnerB},
	}

	got := Summarize(samplePapers(), log, 0, time.Unix(0, 0))
	assert.Equal(t, types.HeadToHead{AIWins: 1, HumanWins: 2}, got.AIVsHuman)
	assert.Len(t, got.RecentMatches, 3)
}

func TestSummarizeEmptyLog(t *testing.T) {
	got := Summarize(samplePapers(), nil, 20, time.Unix(0, 0))
	assert.Equal(t, 0, got.TotalMatches)
	assert.Empty(t, got.RecentMatches)
	assert.Equal(t, 0.0, WinRate(got.AIVsHuman.AIWins, got.AIVsHuman.HumanWins))
}
