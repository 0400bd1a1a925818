// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package leaderboard composes ranking, filtering and match statistics for
// one loaded data set, and tracks the user's filter selection across a
// browsing session.
package leaderboard

import (
	"time"

	"github.com/pdiddy/leaderboard/internal/matchstats"
	"github.com/pdiddy/leaderboard/internal/rank"
	"github.com/pdiddy/leaderboard/pkg/types"
)

// Options controls presentation of a Board.
type Options struct {
	// TopN is the length of the top AI papers list (default 3).
	TopN int

	// Location is used for date labels (default UTC).
	Location *time.Location
}

// Board is the computed leaderboard for one snapshot. The rank table and
// statistics are built once in New; View re-runs only filtering and
// projection. A Board is read-only and safe for concurrent use.
type Board struct {
	snapshot types.Snapshot
	table    *rank.Table
	stats    matchstats.Stats
	recent   []matchstats.ResolvedMatch
	opts     Options
}

// New ranks the full paper collection and aggregates match statistics.
func New(snap types.Snapshot, opts Options) *Board {
	if opts.TopN <= 0 {
		opts.TopN = rank.DefaultTopN
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &Board{
		snapshot: snap,
		table:    rank.NewTable(snap.Papers),
		stats:    matchstats.Compute(snap.Papers, snap.Summary, opts.Location),
		recent:   matchstats.Resolve(snap.Papers, snap.Summary.RecentMatches, opts.Location),
		opts:     opts,
	}
}

// View filters the collection by sel and projects rows carrying their
// global rank.
func (b *Board) View(sel rank.Selection) rank.View {
	return rank.Project(rank.Filter(b.snapshot.Papers, sel), b.table)
}

// TopAI returns the best AI papers.
func (b *Board) TopAI() rank.View {
	return rank.TopAI(b.snapshot.Papers, b.table, b.opts.TopN)
}

// Stats returns the headline statistics.
func (b *Board) Stats() matchstats.Stats {
	return b.stats
}

// Recent returns recent matches with unresolvable entries removed.
func (b *Board) Recent() []matchstats.ResolvedMatch {
	return b.recent
}

// Tracks returns the distinct track names for the track selector.
func (b *Board) Tracks() []string {
	return rank.Tracks(b.snapshot.Papers)
}

// Rank returns the global rank of a paper.
func (b *Board) Rank(id string) (int, bool) {
	return b.table.Rank(id)
}

// Report bundles everything a display needs for one selection.
type Report struct {
	Selection rank.Selection             `json:"selection" yaml:"selection"`
	Stats     matchstats.Stats           `json:"stats" yaml:"stats"`
	TopAI     rank.View                  `json:"topAi" yaml:"top_ai"`
	Board     rank.View                  `json:"board" yaml:"board"`
	Recent    []matchstats.ResolvedMatch `json:"recentMatches" yaml:"recent_matches"`
}

// Report builds the full display bundle for sel.
func (b *Board) Report(sel rank.Selection) Report {
	return Report{
		Selection: sel,
		Stats:     b.Stats(),
		TopAI:     b.TopAI(),
		Board:     b.View(sel),
		Recent:    b.Recent(),
	}
}
