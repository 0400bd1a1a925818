// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package leaderboard

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/leaderboard/internal/rank"
	"github.com/pdiddy/leaderboard/pkg/types"
)

// --- test helpers ---

func sampleSnapshot() types.Snapshot {
	return types.Snapshot{
		Papers: []types.Paper{
			{ID: "1", Mu: 30, Sigma: 2, Source: types.SourceAI, Track: "NLP", Title: "X", Method: "M", Venue: "V",
				Elo: 1610, MatchesPlayed: 12, AdvisorTotal: 4, AdvisorPasses: 3, AdvisorScore: 80, ReviewerScore: 74, ReviewRecommendation: "accept"},
			{ID: "2", Mu: 28, Sigma: 1, Source: types.SourceHuman, Track: "NLP", Title: "Y", Method: "N", Venue: "W",
				Elo: 1580, MatchesPlayed: 20, Reviewed: true},
			{ID: "3", Mu: 26, Sigma: 3, Source: types.SourceAI, Track: "Vaccines", Title: "Z", Method: "DiD", Venue: "arXiv"},
		},
		Summary: types.MatchSummary{
			LastUpdated:  "2026-02-14T09:30:00Z",
			TotalMatches: 4,
			AIVsHuman:    types.HeadToHead{AIWins: 3, HumanWins: 1},
			RecentMatches: []types.Match{
				{PaperA: "1", PaperB: "2", Winner: types.WinnerA, Date: "2026-02-14T09:00:00Z"},
				{PaperA: "1", PaperB: "gone", Winner: types.WinnerB, Date: "2026-02-13T09:00:00Z"},
				{PaperA: "3", PaperB: "2", Winner: types.WinnerTie},
			},
		},
	}
}

type fakeLoader struct {
	snap  types.Snapshot
	err   error
	calls int
}

func (f *fakeLoader) Load(context.Context) (types.Snapshot, error) {
	f.calls++
	return f.snap, f.err
}

// --- board tests ---

func TestBoardScenario(t *testing.T) {
	b := New(sampleSnapshot(), Options{})

	all := b.View(rank.DefaultSelection())
	require.Len(t, all.Rows, 3)
	assert.Equal(t, "2", all.Rows[0].Paper.ID)
	assert.Equal(t, 1, all.Rows[0].Rank)
	assert.Equal(t, "1", all.Rows[1].Paper.ID)
	assert.Equal(t, 2, all.Rows[1].Rank)

	ai := b.View(rank.Selection{Source: "ai", Track: rank.All})
	require.Len(t, ai.Rows, 2)
	assert.Equal(t, "1", ai.Rows[0].Paper.ID)
	assert.Equal(t, 2, ai.Rows[0].Rank)
	assert.Equal(t, 3, ai.Rows[1].Rank)
}

func TestBoardStatsAndRecent(t *testing.T) {
	b := New(sampleSnapshot(), Options{})

	stats := b.Stats()
	assert.Equal(t, 3, stats.TotalPapers)
	assert.Equal(t, 4, stats.TotalMatches)
	assert.InDelta(t, 75.0, stats.AIWinRatePercent, 1e-9)
	assert.Equal(t, "Feb 14, 2026", stats.LastUpdatedLabel)

	recent := b.Recent()
	require.Len(t, recent, 2)
	assert.Equal(t, "X", recent[0].WinnerLabel)
	assert.Equal(t, "Tie", recent[1].WinnerLabel)
	assert.Equal(t, "-", recent[1].DateLabel)
}

func TestBoardTopAIAndTracks(t *testing.T) {
	b := New(sampleSnapshot(), Options{TopN: 1})

	top := b.TopAI()
	require.Len(t, top.Rows, 1)
	assert.Equal(t, "1", top.Rows[0].Paper.ID)
	assert.Equal(t, 1, top.Rows[0].Rank)
	assert.Equal(t, 2, top.Rows[0].GlobalRank)

	assert.Equal(t, []string{"NLP", "Vaccines"}, b.Tracks())
}

func TestBoardReport(t *testing.T) {
	b := New(sampleSnapshot(), Options{})
	r := b.Report(rank.Selection{Track: "Vaccines"})

	require.Len(t, r.Board.Rows, 1)
	assert.Equal(t, 3, r.Board.Rows[0].Rank)
	assert.Len(t, r.TopAI.Rows, 2)
	assert.Len(t, r.Recent, 2)
}

// --- session tests ---

func TestSessionTransitions(t *testing.T) {
	s := NewSession(New(sampleSnapshot(), Options{}), Options{})
	assert.Equal(t, rank.DefaultSelection(), s.Selection())
	assert.Len(t, s.View().Rows, 3)

	v, err := s.SetSource("ai")
	require.NoError(t, err)
	assert.Len(t, v.Rows, 2)

	v = s.SetTrack("NLP")
	require.Len(t, v.Rows, 1)
	assert.Equal(t, 2, v.Rows[0].Rank)

	v = s.SetSearch("nothing")
	assert.True(t, v.Empty())

	v = s.SetSearch("")
	assert.Len(t, v.Rows, 1)

	v = s.SetTrack("")
	assert.Len(t, v.Rows, 2)
	assert.Equal(t, rank.Selection{Source: "ai", Track: rank.All}, s.Selection())
}

func TestSessionRejectsBadSource(t *testing.T) {
	s := NewSession(New(sampleSnapshot(), Options{}), Options{})
	_, err := s.SetSource("robots")
	require.ErrorIs(t, err, rank.ErrInvalidSource)
	assert.Equal(t, rank.All, s.Selection().Source)
}

func TestSessionReload(t *testing.T) {
	loader := &fakeLoader{snap: sampleSnapshot()}
	s, err := Open(context.Background(), loader, Options{})
	require.NoError(t, err)
	s.SetTrack("NLP")

	next := sampleSnapshot()
	next.Papers = append(next.Papers, types.Paper{ID: "4", Mu: 40, Sigma: 1, Source: types.SourceAI, Track: "NLP", Title: "New"})
	loader.snap = next

	require.NoError(t, s.Reload(context.Background(), loader))
	v := s.View()
	require.Len(t, v.Rows, 3)
	assert.Equal(t, "4", v.Rows[0].Paper.ID)
	assert.Equal(t, 1, v.Rows[0].Rank)
	assert.Equal(t, "NLP", s.Selection().Track)
	assert.Equal(t, 2, loader.calls)
}

func TestSessionReloadFailureKeepsBoard(t *testing.T) {
	loader := &fakeLoader{snap: sampleSnapshot()}
	s, err := Open(context.Background(), loader, Options{})
	require.NoError(t, err)
	before := s.Board()

	loader.err = errors.New("boom")
	err = s.Reload(context.Background(), loader)
	require.Error(t, err)
	assert.Same(t, before, s.Board())
}

func TestOpenFailure(t *testing.T) {
	_, err := Open(context.Background(), &fakeLoader{err: errors.New("offline")}, Options{})
	require.Error(t, err)
}

// --- format tests ---

func TestFormatTable(t *testing.T) {
	b := New(sampleSnapshot(), Options{})

	var buf bytes.Buffer
	FormatTable(b.View(rank.DefaultSelection()), &buf)
	out := buf.String()

	assert.Contains(t, out, "Rank")
	assert.Contains(t, out, "3/4 (80)")
	assert.Contains(t, out, "74 | accept")
	assert.Contains(t, out, "peer")
	assert.Contains(t, out, "24.0")
	assert.Contains(t, out, "3 papers")

	buf.Reset()
	FormatTable(b.View(rank.Selection{Search: "zzz"}), &buf)
	assert.Equal(t, noMatchesText+"\n", buf.String())
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short ascii", "Alpha", 10, "Alpha"},
		{"long ascii", "Alphabetical", 8, "Alpha..."},
		{"multibyte fits", "Épidémie", 8, "Épidémie"},
		{"multibyte cut", strings.Repeat("É", 49), 44, strings.Repeat("É", 41) + "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, tt.max)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestFormatTableMultibyteTitle(t *testing.T) {
	snap := sampleSnapshot()
	snap.Papers[0].Title = strings.Repeat("É", 49)
	snap.Papers[0].Track = strings.Repeat("疫", 30)
	b := New(snap, Options{})

	var buf bytes.Buffer
	FormatTable(b.View(rank.DefaultSelection()), &buf)
	assert.True(t, utf8.Valid(buf.Bytes()))
	assert.Contains(t, buf.String(), strings.Repeat("É", 41)+"...")
}

func TestFormatTopStatsRecent(t *testing.T) {
	b := New(sampleSnapshot(), Options{})

	var buf bytes.Buffer
	FormatTop(b.TopAI(), &buf)
	assert.True(t, strings.HasPrefix(buf.String(), "#1 X\n"))
	assert.Contains(t, buf.String(), "Cons. 24.0 | Elo 1610")

	buf.Reset()
	FormatStats(b.Stats(), &buf)
	assert.Contains(t, buf.String(), "75.0%")
	assert.Contains(t, buf.String(), "Feb 14, 2026")

	buf.Reset()
	FormatRecent(b.Recent(), &buf)
	assert.Contains(t, buf.String(), "X vs Y")
	assert.NotContains(t, buf.String(), "gone")

	buf.Reset()
	FormatRecent(nil, &buf)
	assert.Equal(t, noRecentText+"\n", buf.String())

	buf.Reset()
	FormatTop(rank.View{}, &buf)
	assert.Equal(t, noAIText+"\n", buf.String())
}

func TestFormatJSON(t *testing.T) {
	b := New(sampleSnapshot(), Options{})

	var buf bytes.Buffer
	require.NoError(t, FormatJSON(b.Report(rank.DefaultSelection()), &buf))

	var decoded Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Board.Rows, 3)
	assert.Equal(t, 1, decoded.Board.Rows[0].Rank)
	assert.InDelta(t, 75.0, decoded.Stats.AIWinRatePercent, 1e-9)
}
