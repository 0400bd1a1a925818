// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package matchstats

import (
	"time"

	"github.com/pdiddy/leaderboard/pkg/types"
)

// ResolvedMatch is a recent match with paper ids replaced by titles.
type ResolvedMatch struct {
	TitleA      string `json:"titleA" yaml:"title_a"`
	TitleB      string `json:"titleB" yaml:"title_b"`
	WinnerLabel string `json:"winnerLabel" yaml:"winner_label"`
	DateLabel   string `json:"dateLabel" yaml:"date_label"`
}

// Index maps paper ids to papers.
func Index(papers []types.Paper) map[string]types.Paper {
	idx := make(map[string]types.Paper, len(papers))
	for _, p := range papers {
		idx[p.ID] = p
	}
	return idx
}

// Resolve maps recent matches to display entries, keeping their order.
// A match whose paperA or paperB is not in papers is omitted: match
// history may reference papers removed in a later data revision.
func Resolve(papers []types.Paper, recent []types.Match, loc *time.Location) []ResolvedMatch {
	idx := Index(papers)

	out := make([]ResolvedMatch, 0, len(recent))
	for _, m := range recent {
		a, okA := idx[m.PaperA]
		b, okB := idx[m.PaperB]
		if !okA || !okB {
			continue
		}
		out = append(out, ResolvedMatch{
			TitleA:      a.Title,
			TitleB:      b.Title,
			WinnerLabel: winnerLabel(m.Winner, a, b),
			DateLabel:   DateLabel(m.Date, loc),
		})
	}
	return out
}

// winnerLabel treats any value other than paperA or paperB as a tie, the
// same default the tournament log uses for a missing winner.
func winnerLabel(w types.Winner, a, b types.Paper) string {
	switch w {
	case types.WinnerA:
		return a.Title
	case types.WinnerB:
		return b.Title
	default:
		return TieLabel
	}
}
