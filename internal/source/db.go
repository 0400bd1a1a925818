// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"context"
	"fmt"
	"time"

	"github.com/pdiddy/leaderboard/internal/store"
	"github.com/pdiddy/leaderboard/pkg/types"
)

// DBSource reads a snapshot from an arena database. The match summary is
// computed from the full log at load time.
type DBSource struct {
	store       *store.Store
	recentLimit int
	now         func() time.Time
}

// NewDBSource returns a source over st keeping recentLimit recent matches.
func NewDBSource(st *store.Store, recentLimit int) *DBSource {
	return &DBSource{store: st, recentLimit: recentLimit, now: time.Now}
}

// Name identifies the source in logs and errors.
func (d *DBSource) Name() string { return "db " + d.store.Path() }

// Load reads the collection and summarizes the match log.
func (d *DBSource) Load(ctx context.Context) (types.Snapshot, error) {
	snap, err := d.store.Snapshot(ctx, d.recentLimit, d.now())
	if err != nil {
		return types.Snapshot{}, fmt.Errorf("%w: %s: %w", ErrLoad, d.Name(), err)
	}
	return snap, nil
}
