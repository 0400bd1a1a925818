// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package source loads leaderboard snapshots from published data: a local
// directory, a remote host, or an arena database. Every load is all or
// nothing; the two collections are fetched concurrently and joined before
// the snapshot is returned.
package source

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/leaderboard/internal/store"
	"github.com/pdiddy/leaderboard/pkg/types"
)

// ErrLoad marks any failure to produce a complete snapshot.
var ErrLoad = errors.New("could not load leaderboard data")

// Source produces a complete snapshot or an error wrapping ErrLoad.
type Source interface {
	Name() string
	Load(ctx context.Context) (types.Snapshot, error)
}

// fetchFunc returns the raw bytes of one published file.
type fetchFunc func(ctx context.Context, name string) ([]byte, error)

// loadPublished fetches papers.json and matches.json concurrently and
// decodes both. Either failure aborts the load.
func loadPublished(ctx context.Context, name string, fetch fetchFunc) (types.Snapshot, error) {
	var snap types.Snapshot

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		data, err := fetch(gctx, store.PapersFile)
		if err != nil {
			return err
		}
		snap.Papers, err = types.DecodePapers(data)
		return err
	})
	g.Go(func() error {
		data, err := fetch(gctx, store.MatchesFile)
		if err != nil {
			return err
		}
		snap.Summary, err = types.DecodeSummary(data)
		return err
	})

	if err := g.Wait(); err != nil {
		slog.Debug("load failed", "source", name, "error", err)
		return types.Snapshot{}, fmt.Errorf("%w: %s: %w", ErrLoad, name, err)
	}

	slog.Debug("snapshot loaded", "source", name,
		"papers", len(snap.Papers), "recent", len(snap.Summary.RecentMatches))
	return snap, nil
}
