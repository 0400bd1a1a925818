// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// HTTPConfig holds settings for fetching published data over HTTP.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout" validate:"gte=0"`

	// UserAgent is the User-Agent header sent with HTTP requests.
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`

	// RequestsPerSecond caps the request rate. Zero disables limiting.
	RequestsPerSecond float64 `json:"requests_per_second" yaml:"requests_per_second" mapstructure:"requests_per_second" validate:"gte=0"`

	// MaxRetries is the number of retries on 429/503 responses (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries" validate:"gte=0,lte=10"`

	// CacheTTL is how long fetched files are reused before refetching.
	CacheTTL time.Duration `json:"cache_ttl" yaml:"cache_ttl" mapstructure:"cache_ttl" validate:"gte=0"`
}

// LeaderboardConfig holds settings for loading and presenting the leaderboard.
// Exactly one data source is used, in priority order DBPath, DataURL, DataDir.
type LeaderboardConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// DataDir holds papers.json and matches.json (default "data").
	DataDir string `json:"data_dir" yaml:"data_dir" mapstructure:"data_dir"`

	// DataURL is a base URL serving papers.json and matches.json.
	DataURL string `json:"data_url,omitempty" yaml:"data_url,omitempty" mapstructure:"data_url" validate:"omitempty,url"`

	// DBPath is a SQLite arena database.
	DBPath string `json:"db,omitempty" yaml:"db,omitempty" mapstructure:"db"`

	// TopN is the length of the top AI papers list (default 3).
	TopN int `json:"top_n" yaml:"top_n" mapstructure:"top_n" validate:"gte=1,lte=100"`

	// RecentLimit bounds recentMatches when summarizing a full match log (default 20).
	RecentLimit int `json:"recent_limit" yaml:"recent_limit" mapstructure:"recent_limit" validate:"gte=1,lte=1000"`

	// Timezone is the IANA zone used for date labels (default "UTC").
	Timezone string `json:"timezone" yaml:"timezone" mapstructure:"timezone"`

	// SecretsDir holds key files such as leaderboard-token.
	SecretsDir string `json:"secrets_dir" yaml:"secrets_dir" mapstructure:"secrets_dir"`
}

// DefaultLeaderboardConfig returns the configuration used when nothing is set.
func DefaultLeaderboardConfig() LeaderboardConfig {
	return LeaderboardConfig{
		HTTPConfig: HTTPConfig{
			Timeout:           30 * time.Second,
			UserAgent:         "leaderboard/0.1",
			RequestsPerSecond: 2,
			MaxRetries:        5,
			CacheTTL:          5 * time.Minute,
		},
		DataDir:     "data",
		TopN:        3,
		RecentLimit: 20,
		Timezone:    "UTC",
		SecretsDir:  ".secrets/",
	}
}

// Validate checks field constraints and that Timezone names a known zone.
func (c LeaderboardConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves Timezone, defaulting to UTC when empty.
func (c LeaderboardConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
