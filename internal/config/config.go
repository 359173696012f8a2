// Package config loads and saves ccline configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all ccline configuration.
type Config struct {
	Render     RenderConfig     `toml:"render"`
	Context    ContextConfig    `toml:"context"`
	Thresholds ThresholdsConfig `toml:"thresholds"`
	Cache      CacheConfig      `toml:"cache"`
}

// RenderConfig selects the output style and color theme.
type RenderConfig struct {
	Style string `toml:"style"`
	Theme string `toml:"theme"`
}

// ContextConfig holds model context window sizes in tokens.
type ContextConfig struct {
	OpusWindow    int64 `toml:"opus_window"`
	DefaultWindow int64 `toml:"default_window"`
}

// ThresholdsConfig holds product constants that track external model
// behavior and may need adjusting over time.
type ThresholdsConfig struct {
	CostMediumUSD  float64 `toml:"cost_medium_usd"`
	CostHighUSD    float64 `toml:"cost_high_usd"`
	FastAPIRatio   float64 `toml:"fast_api_ratio"`
	NormalAPIRatio float64 `toml:"normal_api_ratio"`
}

// CacheConfig controls the transcript token-estimate cache.
type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path,omitempty"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Render: RenderConfig{
			Style: "segments",
			Theme: "flexoki-dark",
		},
		Context: ContextConfig{
			OpusWindow:    200_000,
			DefaultWindow: 100_000,
		},
		Thresholds: ThresholdsConfig{
			CostMediumUSD:  0.05,
			CostHighUSD:    0.10,
			FastAPIRatio:   0.10,
			NormalAPIRatio: 0.30,
		},
		Cache: CacheConfig{
			Enabled: true,
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "ccline")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "ccline")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// ActiveStyle returns the style name from env var or config, in that order.
// The --style flag is resolved by the command layer before this is consulted.
func ActiveStyle(cfg Config) string {
	if s := os.Getenv("CCLINE_STYLE"); s != "" {
		return s
	}
	return cfg.Render.Style
}

// CachePath returns the estimate cache location, honoring a config override.
func CachePath(cfg Config) string {
	if cfg.Cache.Path != "" {
		return cfg.Cache.Path
	}
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "ccline", "estimates.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cache", "ccline", "estimates.db")
}
