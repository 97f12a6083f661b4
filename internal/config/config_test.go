package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sandbox.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadWithoutPathReturnsDefaults(t *testing.T) {
	t.Setenv("SANDBOX_CONFIG", "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
world:
  seed: 1234
  unused_chunk_limit: 8
simulation:
  tick_ms: 20
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(1234), cfg.World.Seed)
	assert.Equal(t, 8, cfg.World.UnusedChunkLimit)
	assert.Equal(t, 20, cfg.Simulation.TickMillis)
	// не заданные поля сохраняют значения по умолчанию
	assert.Equal(t, "perlin", cfg.World.Generator)
	assert.Equal(t, 15, cfg.World.Decoration.Tree)
}

func TestLoadFromEnv(t *testing.T) {
	path := writeConfig(t, "world:\n  generator: flat\n")
	t.Setenv("SANDBOX_CONFIG", path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "flat", cfg.World.Generator)
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := writeConfig(t, `
world:
  generator: voxel
simulation:
  spawn_chance: 2
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "world.generator")
	assert.Contains(t, err.Error(), "spawn_chance")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestMetricsPortFallback(t *testing.T) {
	m := MetricsConfig{}

	t.Setenv("SANDBOX_METRICS_PORT", "")
	assert.Equal(t, 2112, m.GetPort())

	t.Setenv("SANDBOX_METRICS_PORT", "9100")
	assert.Equal(t, 9100, m.GetPort())

	m.Port = 8000
	assert.Equal(t, 8000, m.GetPort())
}
