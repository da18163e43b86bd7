package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uitree.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fps: 30\nreshow: false\ndebug: true\n"), 0o644))
	t.Setenv("UITREE_MAX_FRAMES", "120")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.FPS)
	assert.False(t, cfg.ReShow)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 120, cfg.MaxFrames)
	assert.InDelta(t, 1.0/30, cfg.DT(), 1e-6)

	tc := cfg.TreeConfig()
	assert.False(t, tc.ReShowHide)
	assert.True(t, tc.Debug)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uitree.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fps: 30\n"), 0o644))
	t.Setenv("UITREE_FPS", "144")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 144, cfg.FPS)
}

func TestLoadConfigBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uitree.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fps: [\n"), 0o644))

	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "reading config")
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FPS = 0
	assert.ErrorContains(t, cfg.Validate(), "fps must be positive")

	cfg = DefaultConfig()
	cfg.MaxFrames = -1
	assert.ErrorContains(t, cfg.Validate(), "max_frames must be positive")
}
