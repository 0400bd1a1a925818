// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rank

import (
	"fmt"
	"math"
	"strconv"

	"github.com/pdiddy/leaderboard/pkg/types"
)

const (
	// NoAdvisorLabel is shown when a paper has no advisor verdicts.
	NoAdvisorLabel = "-"
	// PeerReviewLabel replaces the reviewer summary for human papers.
	PeerReviewLabel = "peer"
	// DefaultRecommendation is used when an AI paper has no recommendation.
	DefaultRecommendation = "n/a"
	// DefaultTopN is the length of the top AI papers list.
	DefaultTopN = 3
)

// Row is one projected leaderboard line.
type Row struct {
	// Rank is the paper's global rank over the full collection. For TopAI
	// views it is the position within the top list.
	Rank int `json:"rank" yaml:"rank"`

	// Position is the 1-based index within this view.
	Position int `json:"position" yaml:"position"`

	// GlobalRank always carries the rank over the full collection.
	GlobalRank int `json:"globalRank" yaml:"global_rank"`

	Paper             types.Paper `json:"paper" yaml:"paper"`
	ConservativeScore float64     `json:"conservativeScore" yaml:"conservative_score"`
	AdvisorSummary    string      `json:"advisorSummary" yaml:"advisor_summary"`
	ReviewerSummary   string      `json:"reviewerSummary" yaml:"reviewer_summary"`
}

// View is an ordered set of rows. A view with no rows is a valid result,
// not an error; callers render a "no matches" placeholder for it.
type View struct {
	Rows []Row `json:"rows" yaml:"rows"`
}

// Empty reports whether the view has no rows.
func (v View) Empty() bool {
	return len(v.Rows) == 0
}

// Project turns filtered papers into rows carrying their global rank from
// t. filtered must already be in display order (see Filter).
func Project(filtered []types.Paper, t *Table) View {
	rows := make([]Row, 0, len(filtered))
	for i, p := range filtered {
		global, _ := t.Rank(p.ID)
		rows = append(rows, newRow(p, global, i+1, global))
	}
	return View{Rows: rows}
}

// TopAI returns the n highest scoring AI papers (n <= 0 uses DefaultTopN).
// Ties keep collection order; no secondary key is applied.
func TopAI(papers []types.Paper, t *Table, n int) View {
	if n <= 0 {
		n = DefaultTopN
	}
	top := Filter(papers, Selection{Source: string(types.SourceAI), Track: All})
	if len(top) > n {
		top = top[:n]
	}

	rows := make([]Row, 0, len(top))
	for i, p := range top {
		global, _ := t.Rank(p.ID)
		rows = append(rows, newRow(p, i+1, i+1, global))
	}
	return View{Rows: rows}
}

func newRow(p types.Paper, rank, position, global int) Row {
	return Row{
		Rank:              rank,
		Position:          position,
		GlobalRank:        global,
		Paper:             p,
		ConservativeScore: ConservativeScore(p),
		AdvisorSummary:    AdvisorSummary(p),
		ReviewerSummary:   ReviewerSummary(p),
	}
}

// AdvisorSummary renders "passes/total (score)" when the paper has advisor
// verdicts, otherwise NoAdvisorLabel.
func AdvisorSummary(p types.Paper) string {
	if p.AdvisorTotal <= 0 {
		return NoAdvisorLabel
	}
	return fmt.Sprintf("%d/%d (%s)", p.AdvisorPasses, p.AdvisorTotal, Fixed(p.AdvisorScore, 0))
}

// ReviewerSummary renders "score | recommendation" for AI papers. Reviewer
// scoring only exists on the AI track, so human papers get PeerReviewLabel.
func ReviewerSummary(p types.Paper) string {
	if p.Source != types.SourceAI {
		return PeerReviewLabel
	}
	rec := p.ReviewRecommendation
	if rec == "" {
		rec = DefaultRecommendation
	}
	return Fixed(p.ReviewerScore, 0) + " | " + rec
}

// Fixed formats x with the given number of decimals, rounding halves away
// from zero.
func Fixed(x float64, decimals int) string {
	scale := math.Pow(10, float64(decimals))
	r := math.Round(x*scale) / scale
	if r == 0 {
		r = 0 // drop negative zero
	}
	return strconv.FormatFloat(r, 'f', decimals, 64)
}
