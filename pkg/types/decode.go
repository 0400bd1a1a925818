// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Rating defaults for a paper that has not played yet.
const (
	DefaultMu    = 25.0
	DefaultSigma = 8.333
	DefaultElo   = 1500
)

var (
	// ErrMissingID is returned for a paper record without an id.
	ErrMissingID = errors.New("paper has no id")

	// ErrDuplicateID is returned when two paper records share an id.
	ErrDuplicateID = errors.New("duplicate paper id")
)

// DecodePapers parses the papers.json collection. Rating fields missing
// from a record take the defaults above; a record without an id, or
// reusing an earlier record's id, is an error. Empty input yields an empty collection.
func DecodePapers(data []byte) ([]Paper, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []Paper{}, nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing papers: %w", err)
	}

	papers := make([]Paper, 0, len(raw))
	seen := make(map[string]int, len(raw))
	for i, r := range raw {
		p := Paper{Mu: DefaultMu, Sigma: DefaultSigma, Elo: DefaultElo}
		if err := json.Unmarshal(r, &p); err != nil {
			return nil, fmt.Errorf("parsing paper %d: %w", i, err)
		}
		if p.ID == "" {
			return nil, fmt.Errorf("paper %d: %w", i, ErrMissingID)
		}
		if first, ok := seen[p.ID]; ok {
			return nil, fmt.Errorf("paper %d: %w %q (first at %d)", i, ErrDuplicateID, p.ID, first)
		}
		seen[p.ID] = i
		papers = append(papers, p)
	}
	return papers, nil
}

// DecodeSummary parses the matches.json summary object. Empty input yields
// a zero summary.
func DecodeSummary(data []byte) (MatchSummary, error) {
	var s MatchSummary
	if len(bytes.TrimSpace(data)) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return MatchSummary{}, fmt.Errorf("parsing match summary: %w", err)
	}
	return s, nil
}

// DecodeMatchLog parses a match log in either of its two shapes: a bare
// array (oldest first) or a published summary object, whose newest-first
// recent matches are returned oldest first.
func DecodeMatchLog(data []byte) ([]Match, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var log []Match
		if err := json.Unmarshal(trimmed, &log); err != nil {
			return nil, fmt.Errorf("parsing match log: %w", err)
		}
		return log, nil
	}

	s, err := DecodeSummary(trimmed)
	if err != nil {
		return nil, err
	}
	log := make([]Match, 0, len(s.RecentMatches))
	for i := len(s.RecentMatches) - 1; i >= 0; i-- {
		log = append(log, s.RecentMatches[i])
	}
	return log, nil
}
