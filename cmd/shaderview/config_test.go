package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bloeys/nshader/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig(t *testing.T) {

	p := filepath.Join(t.TempDir(), "shaderview.toml")
	require.NoError(t, os.WriteFile(p, []byte(`
title = "test"
width = 640
profile = "core"
asset_dirs = ["a", "b"]
program = "tinted"
`), 0o644))

	cfg, err := LoadConfig(p)
	require.NoError(t, err)
	assert.Equal(t, "test", cfg.Title)
	assert.Equal(t, int32(640), cfg.Width)
	assert.Equal(t, int32(720), cfg.Height, "unset values keep their default")
	assert.Equal(t, []string{"a", "b"}, cfg.AssetDirs)
	assert.Equal(t, "tinted", cfg.Program)

	profile, err := cfg.GlProfile()
	require.NoError(t, err)
	assert.Equal(t, engine.GlProfile_Core, profile)
}

func TestLoadConfigInvalid(t *testing.T) {

	dir := t.TempDir()
	for name, content := range map[string]string{
		"size.toml":    "width = 0",
		"profile.toml": `profile = "es"`,
		"syntax.toml":  "width = ",
	} {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))

		_, err := LoadConfig(p)
		assert.Error(t, err, name)
	}

	_, err := LoadConfig(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}
