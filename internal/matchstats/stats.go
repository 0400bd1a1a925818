// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package matchstats reduces a match summary into display statistics:
// AI win rate, totals, and the recent-activity view with paper references
// resolved to titles.
//
// Nothing here fails. Missing dates render as UnknownDate, a zero win-rate
// denominator yields 0, and matches that reference unknown papers are
// dropped as stale data.
package matchstats

import (
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/pdiddy/leaderboard/pkg/types"
)

const (
	// UnknownDate is shown for missing or unparseable timestamps.
	UnknownDate = "-"
	// TieLabel is the winner label of a drawn match.
	TieLabel = "Tie"

	dateLayout = "Jan 2, 2006"
)

// Stats is the headline statistics bundle.
type Stats struct {
	TotalPapers      int     `json:"totalPapers" yaml:"total_papers"`
	TotalMatches     int     `json:"totalMatches" yaml:"total_matches"`
	AIWinRatePercent float64 `json:"aiWinRatePercent" yaml:"ai_win_rate_percent"`
	LastUpdatedLabel string  `json:"lastUpdatedLabel" yaml:"last_updated_label"`
}

// WinRate returns aiWins / (aiWins + humanWins) * 100 clamped to [0, 100].
// With no decided matches the rate is 0.
func WinRate(aiWins, humanWins int) float64 {
	denominator := aiWins + humanWins
	if denominator <= 0 {
		return 0
	}
	rate := float64(aiWins) / float64(denominator) * 100
	return math.Min(100, math.Max(0, rate))
}

// Compute builds the statistics bundle for one data load. Dates are
// rendered in loc (nil means UTC).
func Compute(papers []types.Paper, summary types.MatchSummary, loc *time.Location) Stats {
	return Stats{
		TotalPapers:      len(papers),
		TotalMatches:     summary.TotalMatches,
		AIWinRatePercent: WinRate(summary.AIVsHuman.AIWins, summary.AIVsHuman.HumanWins),
		LastUpdatedLabel: DateLabel(summary.LastUpdated, loc),
	}
}

// acceptedLayouts lists the timestamp formats DateLabel understands.
var acceptedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// ParseDate parses a raw timestamp. Timestamps without a zone are UTC.
func ParseDate(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range acceptedLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DateLabel renders raw as "Jan 2, 2006" in loc, or UnknownDate.
func DateLabel(raw string, loc *time.Location) string {
	t, ok := ParseDate(raw)
	if !ok {
		return UnknownDate
	}
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(dateLayout)
}

// FormatCount groups thousands the en-US way ("12,345").
func FormatCount(n int) string {
	return message.NewPrinter(language.AmericanEnglish).Sprintf("%d", n)
}

// FormatRate renders a percentage with one decimal ("75.0%").
func FormatRate(pct float64) string {
	return message.NewPrinter(language.AmericanEnglish).Sprintf("%.1f%%", pct)
}
