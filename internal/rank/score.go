// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rank orders papers by conservative skill score, filters them by
// user selection, and projects filtered rows while keeping each paper's
// global rank.
//
// Ranks are computed once per data load over the full collection (Table)
// and carried through filtering as data; they are never derived from a
// filtered position.
package rank

import (
	"sort"

	"github.com/pdiddy/leaderboard/pkg/types"
)

// sigmaPenalty is the number of standard deviations subtracted from mu.
const sigmaPenalty = 3

// ConservativeScore returns the lower confidence bound mu - 3*sigma. A paper
// with an uncertain estimate ranks below an equally rated paper with a
// tighter one.
func ConservativeScore(p types.Paper) float64 {
	return p.Mu - sigmaPenalty*p.Sigma
}

// sortByScore stable-sorts papers by conservative score, highest first.
// Equal scores keep their input order.
func sortByScore(papers []types.Paper) {
	sort.SliceStable(papers, func(i, j int) bool {
		return ConservativeScore(papers[i]) > ConservativeScore(papers[j])
	})
}
