// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the leaderboard.
// Paper, Match and MatchSummary mirror the published papers.json and
// matches.json files; Snapshot groups one atomically loaded data set.
package types

// Source identifies who authored a paper.
type Source string

const (
	SourceAI    Source = "ai"
	SourceHuman Source = "human"
)

// Label returns the display label for the source ("AI" or "Human").
func (s Source) Label() string {
	if s == SourceAI {
		return "AI"
	}
	return "Human"
}

// Paper is one entry of the leaderboard. Rating fields (Mu, Sigma, Elo)
// arrive pre-computed from the tournament backend.
type Paper struct {
	// ID is an opaque identifier, stable across data loads.
	ID string `json:"id" yaml:"id"`

	// Source is either "ai" or "human".
	Source Source `json:"source" yaml:"source"`

	// Track is the free-form research category used for grouping and filtering.
	Track string `json:"track" yaml:"track"`

	Title  string `json:"title" yaml:"title"`
	Method string `json:"method" yaml:"method"`
	Venue  string `json:"venue" yaml:"venue"`
	Year   int    `json:"year" yaml:"year"`

	// Mu is the mean of the estimated skill distribution.
	Mu float64 `json:"mu" yaml:"mu"`

	// Sigma is the standard deviation of the skill distribution (>= 0).
	Sigma float64 `json:"sigma" yaml:"sigma"`

	// Elo is an auxiliary rating. Display only; never used for ranking.
	Elo int `json:"elo" yaml:"elo"`

	MatchesPlayed int `json:"matchesPlayed" yaml:"matches_played"`

	// AdvisorTotal and AdvisorPasses count advisor verdicts (passes <= total).
	// AdvisorScore is meaningful only when AdvisorTotal > 0.
	AdvisorTotal  int     `json:"advisorTotal" yaml:"advisor_total"`
	AdvisorPasses int     `json:"advisorPasses" yaml:"advisor_passes"`
	AdvisorScore  float64 `json:"advisorScore" yaml:"advisor_score"`

	// ReviewerScore and ReviewRecommendation are meaningful only for AI papers.
	ReviewerScore        float64 `json:"reviewerScore" yaml:"reviewer_score"`
	ReviewRecommendation string  `json:"reviewRecommendation" yaml:"review_recommendation"`

	Reviewed bool `json:"reviewed" yaml:"reviewed"`

	PaperURL       string   `json:"paperUrl,omitempty" yaml:"paper_url,omitempty"`
	Status         string   `json:"status,omitempty" yaml:"status,omitempty"`
	IntegrityFlags []string `json:"integrityFlags,omitempty" yaml:"integrity_flags,omitempty"`
}

// Winner records the outcome of a match.
type Winner string

const (
	WinnerA   Winner = "paperA"
	WinnerB   Winner = "paperB"
	WinnerTie Winner = "tie"
)

// Match is one entry of the append-only match log.
type Match struct {
	PaperA string `json:"paperA" yaml:"paper_a"`
	PaperB string `json:"paperB" yaml:"paper_b"`
	Winner Winner `json:"winner" yaml:"winner"`

	// Date is kept as the raw timestamp string; it may be empty or invalid.
	Date string `json:"date" yaml:"date"`

	JudgeModel        string `json:"judgeModel,omitempty" yaml:"judge_model,omitempty"`
	SwappedConsistent bool   `json:"swappedConsistent,omitempty" yaml:"swapped_consistent,omitempty"`
	RationaleShort    string `json:"rationaleShort,omitempty" yaml:"rationale_short,omitempty"`
}

// HeadToHead counts AI-versus-human match outcomes.
type HeadToHead struct {
	AIWins    int `json:"aiWins" yaml:"ai_wins"`
	HumanWins int `json:"humanWins" yaml:"human_wins"`
	Ties      int `json:"ties" yaml:"ties"`
}

// MatchSummary is the aggregate published alongside the paper collection.
// RecentMatches is already ordered (newest first) by whoever produced it.
type MatchSummary struct {
	LastUpdated   string     `json:"lastUpdated" yaml:"last_updated"`
	TotalMatches  int        `json:"totalMatches" yaml:"total_matches"`
	DailyMatches  int        `json:"dailyMatches,omitempty" yaml:"daily_matches,omitempty"`
	AIVsHuman     HeadToHead `json:"aiVsHuman" yaml:"ai_vs_human"`
	RecentMatches []Match    `json:"recentMatches" yaml:"recent_matches"`
}

// Snapshot is one complete data load: both collections or nothing.
type Snapshot struct {
	Papers  []Paper      `json:"papers" yaml:"papers"`
	Summary MatchSummary `json:"summary" yaml:"summary"`
}
