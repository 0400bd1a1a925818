// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/pdiddy/leaderboard/internal/leaderboard"
	"github.com/pdiddy/leaderboard/internal/source"
	"github.com/pdiddy/leaderboard/pkg/types"
)

// boardOptions derives presentation options from the configuration.
func boardOptions(c types.LeaderboardConfig) leaderboard.Options {
	loc, _ := c.Location()
	return leaderboard.Options{TopN: c.TopN, Location: loc}
}

// openSource opens the configured data source. Callers must invoke the
// returned close function.
func openSource() (source.Source, func() error, error) {
	return source.FromConfig(cfg, loadedSecrets.Token())
}

// loadBoard loads one snapshot from the configured source and builds the
// board over it.
func loadBoard(ctx context.Context) (*leaderboard.Board, error) {
	src, closeFn, err := openSource()
	if err != nil {
		return nil, err
	}
	defer closeFn()

	snap, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}
	return leaderboard.New(snap, boardOptions(cfg)), nil
}

// addJSONFlag registers the shared --json output flag.
func addJSONFlag(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "output as JSON")
}

func jsonOutput(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("json")
	return v
}
