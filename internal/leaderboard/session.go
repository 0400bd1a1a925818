// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package leaderboard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pdiddy/leaderboard/internal/rank"
	"github.com/pdiddy/leaderboard/pkg/types"
)

// Loader produces a complete snapshot or an error; there is no partial load.
type Loader interface {
	Load(ctx context.Context) (types.Snapshot, error)
}

// Session holds the current filter selection over a Board. The selection
// changes only through SetSource, SetTrack and SetSearch, each of which
// re-runs filtering against the rank table frozen at the last load.
// A Session is not safe for concurrent use.
type Session struct {
	board *Board
	sel   rank.Selection
	opts  Options
}

// NewSession starts a session over board with the default selection.
func NewSession(board *Board, opts Options) *Session {
	return &Session{board: board, sel: rank.DefaultSelection(), opts: opts}
}

// Open loads a snapshot and starts a session over it.
func Open(ctx context.Context, l Loader, opts Options) (*Session, error) {
	snap, err := l.Load(ctx)
	if err != nil {
		return nil, err
	}
	return NewSession(New(snap, opts), opts), nil
}

// Board returns the board for the current load.
func (s *Session) Board() *Board { return s.board }

// Selection returns the current filter selection.
func (s *Session) Selection() rank.Selection { return s.sel }

// View returns the rows for the current selection.
func (s *Session) View() rank.View {
	return s.board.View(s.sel)
}

// SetSource changes the source filter ("all", "ai" or "human").
func (s *Session) SetSource(source string) (rank.View, error) {
	v, err := rank.ParseSource(source)
	if err != nil {
		return rank.View{}, err
	}
	s.sel.Source = v
	slog.Debug("selection changed", "source", s.sel.Source)
	return s.View(), nil
}

// SetTrack changes the track filter. An empty track means all tracks.
func (s *Session) SetTrack(track string) rank.View {
	if track == "" {
		track = rank.All
	}
	s.sel.Track = track
	slog.Debug("selection changed", "track", s.sel.Track)
	return s.View()
}

// SetSearch changes the search text.
func (s *Session) SetSearch(term string) rank.View {
	s.sel.Search = term
	slog.Debug("selection changed", "search", s.sel.Search)
	return s.View()
}

// Reload replaces the board with a freshly loaded snapshot. The selection
// is kept. On error the previous board stays in place.
func (s *Session) Reload(ctx context.Context, l Loader) error {
	snap, err := l.Load(ctx)
	if err != nil {
		return fmt.Errorf("reloading: %w", err)
	}
	s.board = New(snap, s.opts)
	slog.Debug("board reloaded", "papers", len(snap.Papers))
	return nil
}
