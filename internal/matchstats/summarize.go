// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package matchstats

import (
	"time"

	"github.com/pdiddy/leaderboard/pkg/types"
)

// DefaultRecentLimit is the number of matches kept in a summary's
// recent-activity list.
const DefaultRecentLimit = 20

// Summarize reduces a full match log (oldest first) into the published
// MatchSummary: AI and human wins, ties, the newest limit matches in
// newest-first order, and now as the last-updated time.
//
// A decided match counts for the source of the winning paper. When the
// winner is not in papers, the tournament convention applies: paperA is
// the AI entrant and paperB the human benchmark.
func Summarize(papers []types.Paper, log []types.Match, limit int, now time.Time) types.MatchSummary {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	idx := Index(papers)

	var h2h types.HeadToHead
	for _, m := range log {
		switch winnerSource(m, idx) {
		case types.SourceAI:
			h2h.AIWins++
		case types.SourceHuman:
			h2h.HumanWins++
		default:
			h2h.Ties++
		}
	}

	start := len(log) - limit
	if start < 0 {
		start = 0
	}
	recent := make([]types.Match, 0, len(log)-start)
	for i := len(log) - 1; i >= start; i-- {
		recent = append(recent, log[i])
	}

	return types.MatchSummary{
		LastUpdated:   now.UTC().Format(time.RFC3339),
		TotalMatches:  len(log),
		AIVsHuman:     h2h,
		RecentMatches: recent,
	}
}

// winnerSource returns the source credited with the win, or "" for a tie.
func winnerSource(m types.Match, idx map[string]types.Paper) types.Source {
	var id string
	var fallback types.Source
	switch m.Winner {
	case types.WinnerA:
		id, fallback = m.PaperA, types.SourceAI
	case types.WinnerB:
		id, fallback = m.PaperB, types.SourceHuman
	default:
		return ""
	}
	if p, ok := idx[id]; ok {
		return p.Source
	}
	return fallback
}
