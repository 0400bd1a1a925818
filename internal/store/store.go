// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store keeps the arena's full paper collection and match log in
// SQLite. It is the local source of truth from which the published
// papers.json and matches.json files are produced, and it can serve a
// Snapshot directly.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/leaderboard/internal/matchstats"
	"github.com/pdiddy/leaderboard/pkg/types"
)

// Store manages the arena SQLite database.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens or creates the database at path, creating the parent
// directory and schema when missing.
func NewStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string { return s.path }

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS papers (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			source TEXT NOT NULL,
			track TEXT,
			title TEXT,
			method TEXT,
			venue TEXT,
			year INTEGER,
			mu REAL NOT NULL,
			sigma REAL NOT NULL,
			elo INTEGER,
			matches_played INTEGER,
			advisor_total INTEGER,
			advisor_passes INTEGER,
			advisor_score REAL,
			reviewer_score REAL,
			review_recommendation TEXT,
			reviewed INTEGER,
			paper_url TEXT,
			status TEXT,
			integrity_flags TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS matches (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			paper_a TEXT NOT NULL,
			paper_b TEXT NOT NULL,
			winner TEXT NOT NULL,
			date TEXT,
			judge_model TEXT,
			swapped_consistent INTEGER,
			rationale_short TEXT,
			match_key TEXT
		)`,
		`DROP INDEX IF EXISTS idx_matches_pair_date`,
		`CREATE INDEX IF NOT EXISTS idx_papers_source ON papers(source)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	if err := s.ensureColumn("matches", "match_key", "TEXT"); err != nil {
		return err
	}
	// NULL keys are distinct, so undated matches are never collapsed.
	if _, err := s.db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_matches_key ON matches(match_key)`); err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// ensureColumn adds column to table when a database created by an older
// schema lacks it.
func (s *Store) ensureColumn(table, column, decl string) error {
	rows, err := s.db.Query(fmt.Sprintf(`PRAGMA table_info(%s)`, table))
	if err != nil {
		return fmt.Errorf("inspecting %s: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid, notNull, pk int
			name, typ        string
			dflt             sql.NullString
		)
		if err := rows.Scan(&cid, &name, &typ, &notNull, &dflt, &pk); err != nil {
			return fmt.Errorf("inspecting %s: %w", table, err)
		}
		if name == column {
			return nil
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("inspecting %s: %w", table, err)
	}

	if _, err := s.db.Exec(fmt.Sprintf(`ALTER TABLE %s ADD COLUMN %s %s`, table, column, decl)); err != nil {
		return fmt.Errorf("adding %s.%s: %w", table, column, err)
	}
	return nil
}

// matchKey identifies a match for re-import deduplication. Only a match
// stamped with a time of day is keyed; dateless and date-only matches
// may be genuine rematches and get a NULL key.
func matchKey(m types.Match) any {
	if len(m.Date) <= len(time.DateOnly) {
		return nil
	}
	t, ok := matchstats.ParseDate(m.Date)
	if !ok {
		return nil
	}
	return m.PaperA + "|" + m.PaperB + "|" + t.UTC().Format(time.RFC3339Nano)
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// UpsertPapers inserts new papers and updates existing ones by id. An
// updated paper keeps its original position in the collection.
func (s *Store) UpsertPapers(ctx context.Context, papers []types.Paper) (added, updated int, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO papers (id, source, track, title, method, venue, year, mu, sigma, elo,
			matches_played, advisor_total, advisor_passes, advisor_score, reviewer_score,
			review_recommendation, reviewed, paper_url, status, integrity_flags)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			source=excluded.source, track=excluded.track, title=excluded.title,
			method=excluded.method, venue=excluded.venue, year=excluded.year,
			mu=excluded.mu, sigma=excluded.sigma, elo=excluded.elo,
			matches_played=excluded.matches_played, advisor_total=excluded.advisor_total,
			advisor_passes=excluded.advisor_passes, advisor_score=excluded.advisor_score,
			reviewer_score=excluded.reviewer_score,
			review_recommendation=excluded.review_recommendation, reviewed=excluded.reviewed,
			paper_url=excluded.paper_url, status=excluded.status,
			integrity_flags=excluded.integrity_flags`)
	if err != nil {
		return 0, 0, fmt.Errorf("preparing upsert: %w", err)
	}
	defer stmt.Close()

	for _, p := range papers {
		var exists int
		if err := tx.QueryRowContext(ctx,
			`SELECT count(*) FROM papers WHERE id = ?`, p.ID,
		).Scan(&exists); err != nil {
			return 0, 0, fmt.Errorf("checking paper %s: %w", p.ID, err)
		}

		flags, err := json.Marshal(p.IntegrityFlags)
		if err != nil {
			return 0, 0, fmt.Errorf("encoding flags for paper %s: %w", p.ID, err)
		}
		if _, err := stmt.ExecContext(ctx,
			p.ID, string(p.Source), p.Track, p.Title, p.Method, p.Venue, p.Year,
			p.Mu, p.Sigma, p.Elo, p.MatchesPlayed,
			p.AdvisorTotal, p.AdvisorPasses, p.AdvisorScore, p.ReviewerScore,
			p.ReviewRecommendation, p.Reviewed, p.PaperURL, p.Status, string(flags),
		); err != nil {
			return 0, 0, fmt.Errorf("upserting paper %s: %w", p.ID, err)
		}

		if exists > 0 {
			updated++
		} else {
			added++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, fmt.Errorf("committing papers: %w", err)
	}
	return added, updated, nil
}

// AppendMatches appends matches to the log. A match already logged for
// the same pair at the same timestamp is skipped; matches without a time
// of day are always appended. It returns the number appended.
func (s *Store) AppendMatches(ctx context.Context, matches []types.Match) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR IGNORE INTO matches (paper_a, paper_b, winner, date, judge_model, swapped_consistent, rationale_short, match_key)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	appended := 0
	for _, m := range matches {
		res, err := stmt.ExecContext(ctx,
			m.PaperA, m.PaperB, string(m.Winner), nullable(m.Date),
			m.JudgeModel, m.SwappedConsistent, m.RationaleShort, matchKey(m))
		if err != nil {
			return 0, fmt.Errorf("inserting match %s vs %s: %w", m.PaperA, m.PaperB, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			appended++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing matches: %w", err)
	}
	return appended, nil
}

// Papers returns the full collection in insertion order.
func (s *Store) Papers(ctx context.Context) ([]types.Paper, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source, COALESCE(track, ''), COALESCE(title, ''), COALESCE(method, ''),
			COALESCE(venue, ''), COALESCE(year, 0), mu, sigma, COALESCE(elo, 0),
			COALESCE(matches_played, 0), COALESCE(advisor_total, 0), COALESCE(advisor_passes, 0),
			COALESCE(advisor_score, 0), COALESCE(reviewer_score, 0),
			COALESCE(review_recommendation, ''), COALESCE(reviewed, 0),
			COALESCE(paper_url, ''), COALESCE(status, ''), COALESCE(integrity_flags, '')
		 FROM papers ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("querying papers: %w", err)
	}
	defer rows.Close()

	papers := []types.Paper{}
	for rows.Next() {
		var p types.Paper
		var source, flags string
		if err := rows.Scan(&p.ID, &source, &p.Track, &p.Title, &p.Method, &p.Venue, &p.Year,
			&p.Mu, &p.Sigma, &p.Elo, &p.MatchesPlayed, &p.AdvisorTotal, &p.AdvisorPasses,
			&p.AdvisorScore, &p.ReviewerScore, &p.ReviewRecommendation, &p.Reviewed,
			&p.PaperURL, &p.Status, &flags); err != nil {
			return nil, fmt.Errorf("scanning paper: %w", err)
		}
		p.Source = types.Source(source)
		if flags != "" {
			if err := json.Unmarshal([]byte(flags), &p.IntegrityFlags); err != nil {
				return nil, fmt.Errorf("decoding flags for paper %s: %w", p.ID, err)
			}
		}
		papers = append(papers, p)
	}
	return papers, rows.Err()
}

// Matches returns the full match log, oldest first.
func (s *Store) Matches(ctx context.Context) ([]types.Match, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT paper_a, paper_b, winner, COALESCE(date, ''), COALESCE(judge_model, ''),
			COALESCE(swapped_consistent, 0), COALESCE(rationale_short, '')
		 FROM matches ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("querying matches: %w", err)
	}
	defer rows.Close()

	matches := []types.Match{}
	for rows.Next() {
		var m types.Match
		var winner string
		if err := rows.Scan(&m.PaperA, &m.PaperB, &winner, &m.Date, &m.JudgeModel,
			&m.SwappedConsistent, &m.RationaleShort); err != nil {
			return nil, fmt.Errorf("scanning match: %w", err)
		}
		m.Winner = types.Winner(winner)
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

// Snapshot reads both collections and summarizes the match log, keeping
// the newest limit matches as recent activity.
func (s *Store) Snapshot(ctx context.Context, limit int, now time.Time) (types.Snapshot, error) {
	papers, err := s.Papers(ctx)
	if err != nil {
		return types.Snapshot{}, err
	}
	log, err := s.Matches(ctx)
	if err != nil {
		return types.Snapshot{}, err
	}
	return types.Snapshot{
		Papers:  papers,
		Summary: matchstats.Summarize(papers, log, limit, now),
	}, nil
}

// Summary holds row counts for the store.
type Summary struct {
	AIPapers    int `json:"aiPapers" yaml:"ai_papers"`
	HumanPapers int `json:"humanPapers" yaml:"human_papers"`
	Matches     int `json:"matches" yaml:"matches"`
}

// Papers returns the total paper count.
func (s Summary) Papers() int {
	return s.AIPapers + s.HumanPapers
}

// Counts reports how many papers and matches the store holds.
func (s *Store) Counts(ctx context.Context) (Summary, error) {
	var sum Summary
	if err := s.db.QueryRowContext(ctx,
		`SELECT
			COALESCE(SUM(CASE WHEN source = 'ai' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN source = 'ai' THEN 0 ELSE 1 END), 0)
		 FROM papers`,
	).Scan(&sum.AIPapers, &sum.HumanPapers); err != nil {
		return Summary{}, fmt.Errorf("counting papers: %w", err)
	}
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM matches`).Scan(&sum.Matches); err != nil {
		return Summary{}, fmt.Errorf("counting matches: %w", err)
	}
	return sum, nil
}
