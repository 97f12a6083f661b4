package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annel0/tilecraft/internal/logging"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sandbox.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestRunClosesLogsWhenWorldFails(t *testing.T) {
	logDir := t.TempDir()
	path := writeConfig(t, `
world:
  view: {half_width: 4, half_height: 4}
  noise: {amplitude: 1, bias: -1000}
simulation:
  player_start_radius: 2
logging:
  level: error
  dir: `+logDir+`
`)

	err := run(options{configPath: path, noMetrics: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "создание мира")
	assert.Empty(t, logging.GetLoggerManager().ListComponents(), "логгеры компонентов закрыты")
}

func TestRunRejectsMissingConfig(t *testing.T) {
	err := run(options{configPath: filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)
}
