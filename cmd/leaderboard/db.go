// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/leaderboard/internal/matchstats"
	"github.com/pdiddy/leaderboard/internal/store"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Manage the arena database (import, export, summary)",
	Long: `DB manages a local SQLite arena database holding the full paper collection
and match log. Import published data into it, publish papers.json and
matches.json from it, or export it to YAML. Set the database with --db or
LEADERBOARD_DB.`,
}

// --- import subcommand ---

var dbImportCmd = &cobra.Command{
	Use:   "import [dir]",
	Short: "Import papers.json and matches.json into the database",
	Long: `Import reads papers.json and matches.json from dir (default: data_dir)
and merges them into the database. Existing papers are updated in place;
matches already logged are skipped, so imports can be repeated.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDBImport,
}

func runDBImport(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	dir := cfg.DataDir
	if len(args) > 0 {
		dir = args[0]
	}

	summary, err := st.ImportDir(cmd.Context(), dir, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\nprocessed %d records\n", summary.Total())
	return nil
}

// --- export subcommand ---

var dbExportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Publish web data or export the database to YAML",
	Long: `Export with --format web (default) writes papers.json, sorted by
conservative score, and the matches.json summary into path (default:
data_dir). With --format yaml it writes the full collection and match log
to path (default: arena.yaml).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDBExport,
}

func runDBExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	daily, _ := cmd.Flags().GetInt("daily-matches")

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	out := cmd.OutOrStdout()
	switch format {
	case "web", "":
		dir := cfg.DataDir
		if len(args) > 0 {
			dir = args[0]
		}
		opts := store.ExportOptions{RecentLimit: cfg.RecentLimit, DailyMatches: daily, Now: time.Now()}
		if err := st.ExportWeb(cmd.Context(), dir, opts); err != nil {
			return err
		}
		fmt.Fprintf(out, "Published %s and %s to %s\n", store.PapersFile, store.MatchesFile, dir)
	case "yaml":
		path := "arena.yaml"
		if len(args) > 0 {
			path = args[0]
		}
		if err := st.ExportYAML(cmd.Context(), path); err != nil {
			return err
		}
		fmt.Fprintf(out, "Exported to %s\n", path)
	default:
		return fmt.Errorf("unsupported format %q: use web or yaml", format)
	}
	return nil
}

// --- summary subcommand ---

var dbSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show database row counts and head-to-head results",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		counts, err := st.Counts(cmd.Context())
		if err != nil {
			return err
		}
		h2h, err := st.HeadToHead(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Database:      %s\n", st.Path())
		fmt.Fprintf(out, "Papers:        %s (%s AI, %s human)\n", matchstats.FormatCount(counts.Papers()),
			matchstats.FormatCount(counts.AIPapers), matchstats.FormatCount(counts.HumanPapers))
		fmt.Fprintf(out, "Matches:       %s\n", matchstats.FormatCount(counts.Matches))
		fmt.Fprintf(out, "AI wins:       %s\n", matchstats.FormatCount(h2h.AIWins))
		fmt.Fprintf(out, "Human wins:    %s\n", matchstats.FormatCount(h2h.HumanWins))
		fmt.Fprintf(out, "Ties:          %s\n", matchstats.FormatCount(h2h.Ties))
		fmt.Fprintf(out, "AI win rate:   %s\n", matchstats.FormatRate(matchstats.WinRate(h2h.AIWins, h2h.HumanWins)))
		return nil
	},
}

// --- shared helpers ---

func openStore() (*store.Store, error) {
	if cfg.DBPath == "" {
		return nil, fmt.Errorf("no arena database configured: set --db or LEADERBOARD_DB")
	}
	return store.NewStore(cfg.DBPath)
}

func init() {
	dbExportCmd.Flags().String("format", "web", "export format: web or yaml")
	dbExportCmd.Flags().Int("daily-matches", 50, "daily match quota recorded in matches.json")

	dbCmd.AddCommand(dbImportCmd)
	dbCmd.AddCommand(dbExportCmd)
	dbCmd.AddCommand(dbSummaryCmd)

	rootCmd.AddCommand(dbCmd)
}
