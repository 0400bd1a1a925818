// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/leaderboard/internal/leaderboard"
)

var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Show the best AI papers",
	Long: `Top lists the highest-ranked AI papers (three by default, see top_n)
with their track, method, conservative score and Elo.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		board, err := loadBoard(cmd.Context())
		if err != nil {
			return err
		}
		if jsonOutput(cmd) {
			return leaderboard.FormatJSON(board.TopAI(), cmd.OutOrStdout())
		}
		leaderboard.FormatTop(board.TopAI(), cmd.OutOrStdout())
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show paper and match totals and the AI win rate",
	RunE: func(cmd *cobra.Command, args []string) error {
		board, err := loadBoard(cmd.Context())
		if err != nil {
			return err
		}
		if jsonOutput(cmd) {
			return leaderboard.FormatJSON(board.Stats(), cmd.OutOrStdout())
		}
		leaderboard.FormatStats(board.Stats(), cmd.OutOrStdout())
		return nil
	},
}

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show recent matches",
	Long: `Recent lists the latest matches, newest first, with paper titles and the
winner. Matches that reference papers missing from the collection are
omitted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		board, err := loadBoard(cmd.Context())
		if err != nil {
			return err
		}
		if jsonOutput(cmd) {
			return leaderboard.FormatJSON(board.Recent(), cmd.OutOrStdout())
		}
		leaderboard.FormatRecent(board.Recent(), cmd.OutOrStdout())
		return nil
	},
}

var tracksCmd = &cobra.Command{
	Use:   "tracks",
	Short: "List the distinct research tracks",
	RunE: func(cmd *cobra.Command, args []string) error {
		board, err := loadBoard(cmd.Context())
		if err != nil {
			return err
		}
		if jsonOutput(cmd) {
			return leaderboard.FormatJSON(board.Tracks(), cmd.OutOrStdout())
		}
		leaderboard.FormatTracks(board.Tracks(), cmd.OutOrStdout())
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{topCmd, statsCmd, recentCmd, tracksCmd} {
		addJSONFlag(c)
		rootCmd.AddCommand(c)
	}
}
