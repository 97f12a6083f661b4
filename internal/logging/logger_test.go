package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DEBUG, ParseLevel("debug"))
	assert.Equal(t, WARN, ParseLevel(" warning "))
	assert.Equal(t, ERROR, ParseLevel("ERROR"))
	assert.Equal(t, INFO, ParseLevel("bogus"))
}

func TestWriterLoggerFiltersLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger("world", &buf, WARN)

	l.Info("скрыто %d", 1)
	l.Warn("чанк %d", 7)

	out := buf.String()
	assert.NotContains(t, out, "скрыто")
	assert.Contains(t, out, "[WARN] [world] чанк 7")
	assert.False(t, l.Enabled(DEBUG))
	assert.True(t, l.Enabled(ERROR))
}

func TestNewLoggerWritesFile(t *testing.T) {
	dir := t.TempDir()
	Configure(dir, ERROR, DEBUG)
	defer Configure("", INFO, DEBUG)

	l, err := NewLogger("engine")
	require.NoError(t, err)
	l.Debug("tick %d", 42)
	require.NoError(t, l.Close())

	files, err := filepath.Glob(filepath.Join(dir, "engine_*.log"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), "[DEBUG] [engine] tick 42")
}

func TestManagerCachesComponentLoggers(t *testing.T) {
	m := &LoggerManager{loggers: make(map[string]*Logger)}

	a := m.MustGetLogger("game")
	b := m.MustGetLogger("game")
	assert.Same(t, a, b)
	assert.ElementsMatch(t, []string{"game"}, m.ListComponents())

	require.NoError(t, m.SetLogLevel("game", ERROR, ERROR))
	assert.False(t, a.Enabled(WARN))
	assert.Error(t, m.SetLogLevel("missing", INFO, INFO))
	require.NoError(t, m.CloseAll())
	assert.Empty(t, m.ListComponents())
}

func TestSetAllLevels(t *testing.T) {
	m := &LoggerManager{loggers: make(map[string]*Logger)}
	world := m.MustGetLogger("world")
	entity := m.MustGetLogger("entity")

	m.SetAllLevels(TRACE, TRACE)
	assert.True(t, world.Enabled(TRACE))
	assert.True(t, entity.Enabled(TRACE))
	assert.Equal(t, []string{"entity", "world"}, m.ListComponents())
}
