// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/leaderboard/internal/leaderboard"
	"github.com/pdiddy/leaderboard/internal/rank"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Show the ranked leaderboard",
	Long: `Board ranks every paper by conservative score and prints the rows that
match the filters. Rows keep their global rank, so a filtered board shows
where each paper stands in the full collection.

Use --all to include statistics, the top AI papers and recent matches.`,
	RunE: runBoard,
}

func init() {
	boardCmd.Flags().String("source", rank.All, "filter by source: all, ai, human")
	boardCmd.Flags().String("track", rank.All, "filter by track (exact name)")
	boardCmd.Flags().String("search", "", "case-insensitive search over title, method and venue")
	boardCmd.Flags().Bool("all", false, "include stats, top AI papers and recent matches")
	addJSONFlag(boardCmd)

	rootCmd.AddCommand(boardCmd)
}

func runBoard(cmd *cobra.Command, args []string) error {
	sel, err := selectionFromFlags(cmd)
	if err != nil {
		return err
	}

	board, err := loadBoard(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	all, _ := cmd.Flags().GetBool("all")
	switch {
	case jsonOutput(cmd) && all:
		return leaderboard.FormatJSON(board.Report(sel), out)
	case jsonOutput(cmd):
		return leaderboard.FormatJSON(board.View(sel), out)
	case all:
		leaderboard.FormatReport(board.Report(sel), out)
	default:
		leaderboard.FormatTable(board.View(sel), out)
	}
	return nil
}

func selectionFromFlags(cmd *cobra.Command) (rank.Selection, error) {
	src, _ := cmd.Flags().GetString("source")
	track, _ := cmd.Flags().GetString("track")
	search, _ := cmd.Flags().GetString("search")

	source, err := rank.ParseSource(src)
	if err != nil {
		return rank.Selection{}, err
	}
	if track == "" {
		track = rank.All
	}
	return rank.Selection{Source: source, Track: track, Search: search}, nil
}
