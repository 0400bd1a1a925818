// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"fmt"

	"github.com/pdiddy/leaderboard/internal/store"
	"github.com/pdiddy/leaderboard/pkg/types"
)

var (
	_ Source = (*DirSource)(nil)
	_ Source = (*HTTPSource)(nil)
	_ Source = (*DBSource)(nil)
)

// FromConfig picks the configured source in priority order: arena
// database, data URL, data directory. The returned close function
// releases the database when one was opened.
func FromConfig(cfg types.LeaderboardConfig, token string) (Source, func() error, error) {
	noop := func() error { return nil }

	switch {
	case cfg.DBPath != "":
		st, err := store.NewStore(cfg.DBPath)
		if err != nil {
			return nil, noop, fmt.Errorf("%w: %w", ErrLoad, err)
		}
		return NewDBSource(st, cfg.RecentLimit), st.Close, nil

	case cfg.DataURL != "":
		src, err := NewHTTPSource(cfg.DataURL, cfg.HTTPConfig, token)
		if err != nil {
			return nil, noop, fmt.Errorf("%w: %w", ErrLoad, err)
		}
		return src, noop, nil

	default:
		return NewDirSource(cfg.DataDir), noop, nil
	}
}
