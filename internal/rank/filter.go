// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rank

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/pdiddy/leaderboard/pkg/types"
)

// All disables the source or track predicate of a Selection.
const All = "all"

// ErrInvalidSource is returned by ParseSource for unknown source values.
var ErrInvalidSource = errors.New("invalid source")

// Selection is the user's current filter choice. Empty Source and Track
// behave like All, so the zero value passes every paper.
type Selection struct {
	// Source is "all", "ai" or "human".
	Source string `json:"source" yaml:"source"`

	// Track is "all" or an exact track name.
	Track string `json:"track" yaml:"track"`

	// Search is matched case-insensitively against title, method and venue.
	Search string `json:"search" yaml:"search"`
}

// DefaultSelection passes every paper.
func DefaultSelection() Selection {
	return Selection{Source: All, Track: All}
}

// ParseSource normalizes a user-supplied source selection. An empty value
// means All.
func ParseSource(s string) (string, error) {
	switch v := strings.ToLower(strings.TrimSpace(s)); v {
	case "", All:
		return All, nil
	case string(types.SourceAI), string(types.SourceHuman):
		return v, nil
	default:
		return "", fmt.Errorf("%w %q: use all, ai or human", ErrInvalidSource, s)
	}
}

// Filter returns the papers matching sel, sorted by conservative score
// with input order kept on ties. Source and track match exactly; an empty
// or whitespace-only search passes everything. papers is not modified.
func Filter(papers []types.Paper, sel Selection) []types.Paper {
	term := fold(strings.TrimSpace(sel.Search))

	out := make([]types.Paper, 0, len(papers))
	for _, p := range papers {
		if !matchAll(sel.Source) && string(p.Source) != sel.Source {
			continue
		}
		if !matchAll(sel.Track) && p.Track != sel.Track {
			continue
		}
		if term != "" && !strings.Contains(fold(searchBlob(p)), term) {
			continue
		}
		out = append(out, p)
	}

	sortByScore(out)
	return out
}

func matchAll(v string) bool {
	return v == "" || v == All
}

// searchBlob joins the searchable fields in a fixed order.
func searchBlob(p types.Paper) string {
	return p.Title + " " + p.Method + " " + p.Venue
}

// folder is stateless and safe for concurrent use.
var folder = cases.Fold()

// fold applies Unicode case folding.
func fold(s string) string {
	if s == "" {
		return s
	}
	return folder.String(s)
}

// Tracks returns the distinct track names of papers in sorted order.
func Tracks(papers []types.Paper) []string {
	seen := make(map[string]bool)
	var tracks []string
	for _, p := range papers {
		if seen[p.Track] {
			continue
		}
		seen[p.Track] = true
		tracks = append(tracks, p.Track)
	}
	sort.Strings(tracks)
	return tracks
}
