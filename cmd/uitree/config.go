package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/phanxgames/uitree"
)

// Config holds the settings shared by every subcommand.
type Config struct {
	// ReShow is the tree's default retrigger policy.
	ReShow bool `koanf:"reshow"`
	// Debug enables build-time structure warnings.
	Debug bool `koanf:"debug"`
	// FPS is the simulated frame rate; each frame advances the tree by 1/FPS.
	FPS int `koanf:"fps"`
	// MaxFrames bounds a simulation run.
	MaxFrames int `koanf:"max_frames"`
}

// DefaultConfig returns the settings used when no file or env override is set.
func DefaultConfig() *Config {
	return &Config{
		ReShow:    true,
		FPS:       60,
		MaxFrames: 3600,
	}
}

// LoadConfig reads configuration from the given YAML file, then overlays
// environment variable overrides (UITREE_*). A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// UITREE_MAX_FRAMES -> max_frames, etc.
	if err := k.Load(env.Provider("UITREE_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "UITREE_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	if c.MaxFrames <= 0 {
		return fmt.Errorf("max_frames must be positive, got %d", c.MaxFrames)
	}
	return nil
}

// DT returns the seconds advanced per simulated frame.
func (c *Config) DT() float32 {
	return 1 / float32(c.FPS)
}

// TreeConfig converts c into the library's tree configuration.
func (c *Config) TreeConfig() uitree.TreeConfig {
	return uitree.TreeConfig{
		ReShowHide: c.ReShow,
		Debug:      c.Debug,
	}
}
