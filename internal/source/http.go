// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	gocache "github.com/patrickmn/go-cache"

	"github.com/pdiddy/leaderboard/internal/httputil"
	"github.com/pdiddy/leaderboard/pkg/types"
)

// HTTPSource fetches published files from a base URL. Successful bodies
// are reused for the cache TTL, so repeated loads inside that window do
// not hit the network.
type HTTPSource struct {
	base   string
	token  string
	client *httputil.Client
	cache  *gocache.Cache
}

// NewHTTPSource returns a source fetching <base>/papers.json and
// <base>/matches.json. A zero cfg.CacheTTL disables caching. token, when
// set, is sent as a bearer credential.
func NewHTTPSource(base string, cfg types.HTTPConfig, token string) (*HTTPSource, error) {
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid data url %q", base)
	}

	var c *gocache.Cache
	if cfg.CacheTTL > 0 {
		c = gocache.New(cfg.CacheTTL, 2*cfg.CacheTTL)
	}
	return &HTTPSource{
		base:   strings.TrimRight(base, "/"),
		token:  token,
		client: httputil.NewClient(cfg),
		cache:  c,
	}, nil
}

// WithClient replaces the HTTP client.
func (h *HTTPSource) WithClient(c *httputil.Client) *HTTPSource {
	h.client = c
	return h
}

// Name identifies the source in logs and errors.
func (h *HTTPSource) Name() string { return "url " + h.base }

// Load fetches and decodes both files.
func (h *HTTPSource) Load(ctx context.Context) (types.Snapshot, error) {
	return loadPublished(ctx, h.Name(), h.fetch)
}

// Flush drops cached bodies so the next Load refetches.
func (h *HTTPSource) Flush() {
	if h.cache != nil {
		h.cache.Flush()
	}
}

func (h *HTTPSource) fetch(ctx context.Context, name string) ([]byte, error) {
	u := h.base + "/" + name
	if h.cache != nil {
		if v, ok := h.cache.Get(u); ok {
			return v.([]byte), nil
		}
	}

	body, err := h.client.Get(ctx, u, h.token)
	if err != nil {
		return nil, err
	}

	if h.cache != nil {
		h.cache.Set(u, body, gocache.DefaultExpiration)
	}
	return body, nil
}
