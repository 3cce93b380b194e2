package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "advent", cfg.Name)
	assert.Equal(t, "inputs", cfg.Inputs.Dir)
	assert.Equal(t, 5, cfg.Solver.Workers)
	assert.Equal(t, 60, cfg.Solver.BaseSeconds)
	assert.Equal(t, 0, cfg.Solver.CycleCap)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad(t *testing.T) {
	t.Run("missing file returns defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig().Inputs.Dir, cfg.Inputs.Dir)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "advent.yaml")
		data := "inputs:\n  dir: /data/puzzles\nsolver:\n  cycle_cap: 1000\n"
		require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "/data/puzzles", cfg.Inputs.Dir)
		assert.Equal(t, 1000, cfg.Solver.CycleCap)
		// Untouched keys keep defaults.
		assert.Equal(t, 5, cfg.Solver.Workers)
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "advent.yaml")
		require.NoError(t, os.WriteFile(path, []byte("inputs: ["), 0o644))

		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestEnvOverrides(t *testing.T) {
	t.Run("ADVENT_INPUTS overrides dir", func(t *testing.T) {
		t.Setenv("ADVENT_INPUTS", "/tmp/in")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "/tmp/in", cfg.Inputs.Dir)
	})

	t.Run("ADVENT_LOG_LEVEL overrides level", func(t *testing.T) {
		t.Setenv("ADVENT_LOG_LEVEL", "debug")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "debug", cfg.Logging.Level)
	})

	t.Run("ADVENT_CYCLE_CAP must be numeric", func(t *testing.T) {
		t.Setenv("ADVENT_CYCLE_CAP", "many")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, 0, cfg.Solver.CycleCap)

		t.Setenv("ADVENT_CYCLE_CAP", "500")
		cfg.applyEnvOverrides()
		assert.Equal(t, 500, cfg.Solver.CycleCap)
	})
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "advent.yaml")

	cfg := DefaultConfig()
	cfg.Inputs.Dir = "elsewhere"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "elsewhere", loaded.Inputs.Dir)
}
