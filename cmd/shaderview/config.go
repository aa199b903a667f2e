package main

import (
	"fmt"
	"os"

	"github.com/bloeys/nshader/engine"
	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Title  string `toml:"title"`
	Width  int32  `toml:"width"`
	Height int32  `toml:"height"`
	VSync  bool   `toml:"vsync"`

	// Profile is "core" or "compatibility"
	Profile string `toml:"profile"`

	AssetDirs []string `toml:"asset_dirs"`
	Manifest  string   `toml:"manifest"`
	Program   string   `toml:"program"`
}

func DefaultConfig() Config {
	return Config{
		Title:     "shaderview",
		Width:     1280,
		Height:    720,
		VSync:     true,
		Profile:   "compatibility",
		AssetDirs: []string{"./assets"},
		Manifest:  "./assets/shaders.toml",
		Program:   "basic",
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig. An empty path just returns the defaults.
func LoadConfig(path string) (Config, error) {

	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config '%s': %w", path, err)
	}

	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Config{}, fmt.Errorf("invalid window size %dx%d", cfg.Width, cfg.Height)
	}

	if _, err := cfg.GlProfile(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) GlProfile() (engine.GlProfile, error) {

	switch c.Profile {
	case "", "compatibility":
		return engine.GlProfile_Compatibility, nil
	case "core":
		return engine.GlProfile_Core, nil

	default:
		return 0, fmt.Errorf("unknown GL profile '%s'. Must be 'core' or 'compatibility'", c.Profile)
	}
}
