// Package config loads irscan settings from TOML.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/mpyw/implicitctor/internal/report"
)

//go:embed default_config.toml
var embeddedConfigData []byte

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("invalid config")

// Config holds irscan settings.
type Config struct {
	Pass    string `toml:"pass"`
	Marker  string `toml:"marker"`
	Jobs    int    `toml:"jobs"`
	Format  string `toml:"format"`
	Verbose bool   `toml:"verbose"`
}

// Default returns the embedded default configuration.
func Default() (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(embeddedConfigData, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse embedded config: %w", err)
	}
	return &cfg, nil
}

// Load reads path on top of the defaults. Keys missing from the file keep
// their default values; unknown keys are rejected.
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: %s: unknown key %q", ErrInvalid, path, undecoded[0].String())
	}

	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Pass == "" {
		return fmt.Errorf("%w: pass must not be empty", ErrInvalid)
	}
	if c.Jobs < 0 {
		return fmt.Errorf("%w: jobs must not be negative, got %d", ErrInvalid, c.Jobs)
	}
	if !slices.Contains(report.Formats(), c.Format) {
		return fmt.Errorf("%w: unknown format %q", ErrInvalid, c.Format)
	}
	return nil
}
