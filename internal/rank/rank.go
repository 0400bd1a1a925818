// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rank

import "github.com/pdiddy/leaderboard/pkg/types"

// Table is the global ranking of a full paper collection. It is immutable
// once built and safe for concurrent reads.
type Table struct {
	ordered []types.Paper
	ranks   map[string]int
}

// NewTable sorts a copy of papers by conservative score (stable on ties)
// and assigns 1-based ranks. papers must be the full, unfiltered collection.
func NewTable(papers []types.Paper) *Table {
	ordered := make([]types.Paper, len(papers))
	copy(ordered, papers)
	sortByScore(ordered)

	ranks := make(map[string]int, len(ordered))
	for i, p := range ordered {
		ranks[p.ID] = i + 1
	}
	return &Table{ordered: ordered, ranks: ranks}
}

// Ordered returns the full collection in rank order. The caller must not
// modify the returned slice.
func (t *Table) Ordered() []types.Paper {
	return t.ordered
}

// Rank returns the global rank of the paper with the given id.
func (t *Table) Rank(id string) (int, bool) {
	r, ok := t.ranks[id]
	return r, ok
}

// Len returns the number of ranked papers.
func (t *Table) Len() int {
	return len(t.ordered)
}
