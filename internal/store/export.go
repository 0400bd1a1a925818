// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/leaderboard/internal/matchstats"
	"github.com/pdiddy/leaderboard/internal/rank"
	"github.com/pdiddy/leaderboard/pkg/types"
)

// Published file names.
const (
	PapersFile  = "papers.json"
	MatchesFile = "matches.json"
)

// ImportSummary holds counts from an import run.
type ImportSummary struct {
	AddedPapers      int
	UpdatedPapers    int
	AddedMatches     int
	DuplicateMatches int
}

// Total returns the number of records processed.
func (s ImportSummary) Total() int {
	return s.AddedPapers + s.UpdatedPapers + s.AddedMatches + s.DuplicateMatches
}

// ImportDir loads papers.json and matches.json from dir into the store.
// papers.json is required. matches.json may be a bare match log or a
// published summary; a missing file imports no matches.
func (s *Store) ImportDir(ctx context.Context, dir string, w io.Writer) (ImportSummary, error) {
	var summary ImportSummary

	data, err := os.ReadFile(filepath.Join(dir, PapersFile))
	if err != nil {
		return summary, fmt.Errorf("reading %s: %w", PapersFile, err)
	}
	papers, err := types.DecodePapers(data)
	if err != nil {
		return summary, err
	}

	var log []types.Match
	data, err = os.ReadFile(filepath.Join(dir, MatchesFile))
	switch {
	case err == nil:
		if log, err = types.DecodeMatchLog(data); err != nil {
			return summary, err
		}
	case os.IsNotExist(err):
		fmt.Fprintf(w, "no %s in %s, importing papers only\n", MatchesFile, dir)
	default:
		return summary, fmt.Errorf("reading %s: %w", MatchesFile, err)
	}

	summary.AddedPapers, summary.UpdatedPapers, err = s.UpsertPapers(ctx, papers)
	if err != nil {
		return summary, err
	}
	fmt.Fprintf(w, "papers  %d added, %d updated\n", summary.AddedPapers, summary.UpdatedPapers)

	summary.AddedMatches, err = s.AppendMatches(ctx, log)
	if err != nil {
		return summary, err
	}
	summary.DuplicateMatches = len(log) - summary.AddedMatches
	fmt.Fprintf(w, "matches %d added, %d already logged\n", summary.AddedMatches, summary.DuplicateMatches)

	slog.Debug("import finished", "dir", dir, "papers", len(papers), "matches", len(log))
	return summary, nil
}

// ExportOptions controls how published files are produced.
type ExportOptions struct {
	// RecentLimit bounds recentMatches (default 20).
	RecentLimit int

	// DailyMatches is copied into matches.json as the tournament's daily quota.
	DailyMatches int

	// Now stamps lastUpdated (default time.Now).
	Now time.Time
}

// ExportWeb writes papers.json, ordered by conservative score, and the
// matches.json summary into dir.
func (s *Store) ExportWeb(ctx context.Context, dir string, opts ExportOptions) error {
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}

	snap, err := s.Snapshot(ctx, opts.RecentLimit, opts.Now)
	if err != nil {
		return fmt.Errorf("reading snapshot for export: %w", err)
	}
	snap.Summary.DailyMatches = opts.DailyMatches

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating export directory: %w", err)
	}

	ordered := rank.NewTable(snap.Papers).Ordered()
	if err := writeJSON(filepath.Join(dir, PapersFile), ordered); err != nil {
		return err
	}
	return writeJSON(filepath.Join(dir, MatchesFile), snap.Summary)
}

// ExportYAML writes the full collection and match log to path.
func (s *Store) ExportYAML(ctx context.Context, path string) error {
	papers, err := s.Papers(ctx)
	if err != nil {
		return fmt.Errorf("querying for export: %w", err)
	}
	log, err := s.Matches(ctx)
	if err != nil {
		return fmt.Errorf("querying for export: %w", err)
	}

	doc := struct {
		Papers  []types.Paper `yaml:"papers"`
		Matches []types.Match `yaml:"matches"`
	}{papers, log}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// HeadToHead returns AI and human win counts over the whole match log.
func (s *Store) HeadToHead(ctx context.Context) (types.HeadToHead, error) {
	snap, err := s.Snapshot(ctx, matchstats.DefaultRecentLimit, time.Now())
	if err != nil {
		return types.HeadToHead{}, err
	}
	return snap.Summary.AIVsHuman, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
