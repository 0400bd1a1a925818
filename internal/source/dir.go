// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdiddy/leaderboard/pkg/types"
)

// DirSource reads published files from a local directory.
type DirSource struct {
	dir string
}

// NewDirSource returns a source reading dir/papers.json and dir/matches.json.
func NewDirSource(dir string) *DirSource {
	return &DirSource{dir: dir}
}

// Name identifies the source in logs and errors.
func (d *DirSource) Name() string { return "dir " + d.dir }

// Load reads and decodes both files.
func (d *DirSource) Load(ctx context.Context) (types.Snapshot, error) {
	return loadPublished(ctx, d.Name(), func(ctx context.Context, name string) ([]byte, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := os.ReadFile(filepath.Join(d.dir, name))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		return data, nil
	})
}
