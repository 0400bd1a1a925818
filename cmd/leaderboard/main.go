// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the leaderboard CLI. It loads the
// published paper collection and match summary, then ranks, filters and
// summarizes them for display.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/leaderboard/internal/secrets"
	"github.com/pdiddy/leaderboard/internal/source"
	"github.com/pdiddy/leaderboard/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadFailureText is the only message shown when data cannot be loaded.
const loadFailureText = "Could not load leaderboard data. Check data files."

var (
	// cfg is the validated configuration, set before any command runs.
	cfg types.LeaderboardConfig

	// loadedSecrets holds key files loaded from the secrets directory.
	loadedSecrets secrets.Secrets
)

// rootCmd is the base command for the leaderboard CLI.
var rootCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Rank AI-generated and human-authored papers by conservative rating",
	Long: `leaderboard reads the published papers.json and matches.json produced by
the tournament backend, ranks every paper by its conservative score
(mu - 3*sigma), and shows the board, the top AI papers, head-to-head
statistics and recent matches.

Data comes from an arena database (--db), a remote host (--data-url), or a
local directory (--data-dir), in that order of priority.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		setupLogging(verbose)

		c, err := loadConfig()
		if err != nil {
			return err
		}
		cfg = c

		s, err := secrets.Load(cfg.SecretsDir)
		if err != nil {
			return err
		}
		loadedSecrets = s
		slog.Debug("secrets loaded", "dir", cfg.SecretsDir, "count", len(s))
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	defaults := types.DefaultLeaderboardConfig()
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./leaderboard.yaml or ~/.config/leaderboard/leaderboard.yaml)")
	flags.BoolP("verbose", "v", false, "log diagnostics to stderr")
	flags.String("data-dir", defaults.DataDir, "directory holding papers.json and matches.json")
	flags.String("data-url", "", "base URL serving papers.json and matches.json")
	flags.String("db", "", "arena SQLite database")
	flags.String("timezone", defaults.Timezone, "IANA time zone for date labels")

	_ = viper.BindPFlag("data_dir", flags.Lookup("data-dir"))
	_ = viper.BindPFlag("data_url", flags.Lookup("data-url"))
	_ = viper.BindPFlag("db", flags.Lookup("db"))
	_ = viper.BindPFlag("timezone", flags.Lookup("timezone"))
}

func initConfig() {
	setConfigDefaults(viper.GetViper())

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("leaderboard")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "leaderboard"))
		}
	}

	viper.SetEnvPrefix("LEADERBOARD")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		slog.Debug("using config file", "path", viper.ConfigFileUsed())
	}
}

// setConfigDefaults registers every configuration key so that environment
// variables are honored even when no config file sets them.
func setConfigDefaults(v *viper.Viper) {
	d := types.DefaultLeaderboardConfig()
	v.SetDefault("timeout", d.Timeout)
	v.SetDefault("user_agent", d.UserAgent)
	v.SetDefault("requests_per_second", d.RequestsPerSecond)
	v.SetDefault("max_retries", d.MaxRetries)
	v.SetDefault("cache_ttl", d.CacheTTL)
	v.SetDefault("data_dir", d.DataDir)
	v.SetDefault("data_url", d.DataURL)
	v.SetDefault("db", d.DBPath)
	v.SetDefault("top_n", d.TopN)
	v.SetDefault("recent_limit", d.RecentLimit)
	v.SetDefault("timezone", d.Timezone)
	v.SetDefault("secrets_dir", d.SecretsDir)
}

// loadConfig decodes the merged viper settings and validates them.
func loadConfig() (types.LeaderboardConfig, error) {
	return decodeConfig(viper.GetViper())
}

func decodeConfig(v *viper.Viper) (types.LeaderboardConfig, error) {
	c := types.DefaultLeaderboardConfig()
	if err := v.Unmarshal(&c); err != nil {
		return types.LeaderboardConfig{}, fmt.Errorf("decoding configuration: %w", err)
	}
	if err := c.Validate(); err != nil {
		return types.LeaderboardConfig{}, err
	}
	return c, nil
}

func setupLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, source.ErrLoad) {
			fmt.Fprintln(os.Stderr, loadFailureText)
			slog.Debug("load failed", "error", err)
		} else {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		stop()
		os.Exit(1)
	}
}
