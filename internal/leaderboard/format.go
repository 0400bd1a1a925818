// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package leaderboard

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/leaderboard/internal/matchstats"
	"github.com/pdiddy/leaderboard/internal/rank"
)

const (
	noMatchesText = "No papers match your filter criteria."
	noAIText      = "No AI papers available yet."
	noRecentText  = "No recent matches logged."
)

// FormatTable writes the leaderboard rows as a table to w.
func FormatTable(v rank.View, w io.Writer) {
	if v.Empty() {
		fmt.Fprintln(w, noMatchesText)
		return
	}

	fmt.Fprintf(w, "%-4s  %-44s  %-5s  %-18s  %5s  %5s  %6s  %5s  %4s  %-12s  %-20s  %s\n",
		"Rank", "Title", "Src", "Track", "Mu", "Sigma", "Cons.", "Elo", "Mtch", "Advisor", "Reviewer", "Reviewed")
	fmt.Fprintln(w, strings.Repeat("-", 160))

	for _, r := range v.Rows {
		p := r.Paper
		reviewed := "No"
		if p.Reviewed {
			reviewed = "Yes"
		}
		fmt.Fprintf(w, "%-4d  %-44s  %-5s  %-18s  %5s  %5s  %6s  %5d  %4d  %-12s  %-20s  %s\n",
			r.Rank, truncate(p.Title, 44), p.Source.Label(), truncate(p.Track, 18),
			rank.Fixed(p.Mu, 1), rank.Fixed(p.Sigma, 1), rank.Fixed(r.ConservativeScore, 1),
			p.Elo, p.MatchesPlayed, r.AdvisorSummary, truncate(r.ReviewerSummary, 20), reviewed)
	}

	fmt.Fprintf(w, "\n%d papers\n", len(v.Rows))
}

// FormatTop writes the top AI papers list to w.
func FormatTop(v rank.View, w io.Writer) {
	if v.Empty() {
		fmt.Fprintln(w, noAIText)
		return
	}
	for _, r := range v.Rows {
		p := r.Paper
		fmt.Fprintf(w, "#%d %s\n", r.Rank, p.Title)
		fmt.Fprintf(w, "   %s | %s | Cons. %s | Elo %d\n",
			p.Track, p.Method, rank.Fixed(r.ConservativeScore, 1), p.Elo)
	}
}

// FormatStats writes the headline statistics to w.
func FormatStats(s matchstats.Stats, w io.Writer) {
	fmt.Fprintf(w, "Papers:        %s\n", matchstats.FormatCount(s.TotalPapers))
	fmt.Fprintf(w, "Matches:       %s\n", matchstats.FormatCount(s.TotalMatches))
	fmt.Fprintf(w, "AI win rate:   %s\n", matchstats.FormatRate(s.AIWinRatePercent))
	fmt.Fprintf(w, "Last updated:  %s\n", s.LastUpdatedLabel)
}

// FormatRecent writes resolved recent matches to w.
func FormatRecent(recent []matchstats.ResolvedMatch, w io.Writer) {
	if len(recent) == 0 {
		fmt.Fprintln(w, noRecentText)
		return
	}
	for _, m := range recent {
		fmt.Fprintf(w, "%s vs %s\n", m.TitleA, m.TitleB)
		fmt.Fprintf(w, "   Winner: %s | %s\n", m.WinnerLabel, m.DateLabel)
	}
}

// FormatTracks writes one track name per line.
func FormatTracks(tracks []string, w io.Writer) {
	for _, t := range tracks {
		fmt.Fprintln(w, t)
	}
}

// FormatReport writes every section of r as text.
func FormatReport(r Report, w io.Writer) {
	fmt.Fprintln(w, "== Stats")
	FormatStats(r.Stats, w)
	fmt.Fprintln(w, "\n== Top AI papers")
	FormatTop(r.TopAI, w)
	fmt.Fprintln(w, "\n== Leaderboard")
	FormatTable(r.Board, w)
	fmt.Fprintln(w, "\n== Recent matches")
	FormatRecent(r.Recent, w)
}

// FormatJSON writes v as indented JSON to w.
func FormatJSON(v any, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// truncate shortens s to at most max runes.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	r := []rune(s)
	return string(r[:max-3]) + "..."
}
