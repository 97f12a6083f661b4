package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annel0/tilecraft/internal/vec"
)

func TestRecenterSoftFollow(t *testing.T) {
	m, err := NewChunkManager(treesAt(), 0)
	require.NoError(t, err)
	bounds := vec.Vec2{X: 20, Y: 20}

	m.Update(vec.Vec2{X: 25, Y: 0}, bounds)
	// 25 - 20/3 = 19: камера догоняет, но не прыгает на игрока
	assert.Equal(t, vec.Vec2{X: 19, Y: 0}, m.Offset())

	m.Update(vec.Vec2{X: 22, Y: 4}, bounds)
	assert.Equal(t, vec.Vec2{X: 19, Y: 0}, m.Offset(), "внутри трети окна камера стоит")

	m.Update(vec.Vec2{X: 0, Y: -30}, bounds)
	assert.Equal(t, vec.Vec2{X: 6, Y: -24}, m.Offset())
}

func TestRectFloorsNegative(t *testing.T) {
	m, err := NewChunkManager(treesAt(), 0)
	require.NoError(t, err)

	m.Update(vec.Vec2{}, vec.Vec2{X: 20, Y: 20})
	lo, hi := m.Rect()
	assert.Equal(t, vec.Vec2{X: -2, Y: -2}, lo)
	assert.Equal(t, vec.Vec2{X: 1, Y: 1}, hi)
	assert.Equal(t, 16, m.LoadedCount())

	for x := -2; x <= 1; x++ {
		for y := -2; y <= 1; y++ {
			_, ok := m.Chunk(vec.Vec2{X: x, Y: y})
			assert.True(t, ok, "%d,%d", x, y)
		}
	}
}

func TestUnloadedChunksMoveToPool(t *testing.T) {
	m, err := NewChunkManager(treesAt(), 0)
	require.NoError(t, err)
	obs := &recordingObserver{}
	m.SetObserver(obs)
	bounds := vec.Vec2{X: 20, Y: 20}

	m.Update(vec.Vec2{}, bounds)
	require.Equal(t, 16, obs.generated)

	m.Update(vec.Vec2{X: 1000, Y: 0}, bounds)
	assert.Equal(t, 16, m.UnusedCount())
	assert.Equal(t, 16, obs.unloaded)
	assert.Equal(t, 16, m.LoadedCount())

	// каждая координата живёт ровно в одном наборе
	for x := -2; x <= 1; x++ {
		for y := -2; y <= 1; y++ {
			coords := vec.Vec2{X: x, Y: y}
			_, loaded := m.Chunk(coords)
			assert.False(t, loaded)
			assert.True(t, m.unused.Contains(coords))
		}
	}
}

func TestChunkReuseKeepsEdits(t *testing.T) {
	tree := vec.Vec2{X: 3, Y: 3}
	w, obs := newTestWorld(t, treesAt(tree), 0)
	bounds := vec.Vec2{X: 20, Y: 20}

	w.UpdateChunks(vec.Vec2{}, bounds)
	original, ok := w.Chunks().Chunk(vec.Vec2{})
	require.True(t, ok)
	require.NotNil(t, w.BlockAt(tree))
	require.True(t, w.DestroyBlock(tree))

	w.UpdateChunks(vec.Vec2{X: 1000, Y: 0}, bounds)
	_, ok = w.Chunks().Chunk(vec.Vec2{})
	require.False(t, ok)

	w.UpdateChunks(vec.Vec2{}, bounds)
	back, ok := w.Chunks().Chunk(vec.Vec2{})
	require.True(t, ok)
	assert.Same(t, original, back)
	assert.Nil(t, w.BlockAt(tree), "разрушенный блок не восстанавливается")
	assert.Positive(t, obs.reclaimed)
}

func TestPoolEvictionRegenerates(t *testing.T) {
	// чанк (-1,-1) выгружается первым и вытесняется из пула на одно место
	tree := vec.Vec2{X: -3, Y: -3}
	coords := vec.Vec2{X: -1, Y: -1}
	w, obs := newTestWorld(t, treesAt(tree), 1)
	bounds := vec.Vec2{X: 8, Y: 8}

	w.UpdateChunks(vec.Vec2{}, bounds)
	require.True(t, w.DestroyBlock(tree))
	original, _ := w.Chunks().Chunk(coords)

	w.UpdateChunks(vec.Vec2{X: 1000, Y: 1000}, bounds)
	assert.Equal(t, 1, w.Chunks().UnusedCount())
	assert.Positive(t, obs.evicted)

	w.UpdateChunks(vec.Vec2{}, bounds)
	back, ok := w.Chunks().Chunk(coords)
	require.True(t, ok)
	assert.NotSame(t, original, back)
	assert.NotNil(t, w.BlockAt(tree), "вытесненный чанк генерируется заново")
}

func TestUnloadedLookupDefaults(t *testing.T) {
	w, _ := newTestWorld(t, &FlatGenerator{Terrain: Water}, 0)
	far := vec.Vec2{X: -5000, Y: 5000}

	assert.Equal(t, Grass, w.TileAt(far))
	assert.Nil(t, w.BlockAt(far))
	assert.False(t, w.DestroyBlock(far))

	w.UpdateChunks(vec.Vec2{}, vec.Vec2{X: 10, Y: 10})
	assert.Equal(t, Water, w.TileAt(vec.Vec2{X: -3, Y: 4}))
}

func TestOverviewListsBothPools(t *testing.T) {
	m, err := NewChunkManager(&FlatGenerator{Terrain: Stone}, 0)
	require.NoError(t, err)
	bounds := vec.Vec2{X: 20, Y: 20}
	m.Update(vec.Vec2{}, bounds)
	m.Update(vec.Vec2{X: 1000, Y: 0}, bounds)

	overview := m.Overview()
	require.Len(t, overview, 32)
	loaded := 0
	for i, s := range overview {
		assert.Equal(t, Stone, s.Terrain)
		if s.Loaded {
			loaded++
			_, ok := m.Chunk(s.Coords)
			assert.True(t, ok)
		}
		if i > 0 {
			assert.True(t, lessCoords(overview[i-1].Coords, s.Coords))
		}
	}
	assert.Equal(t, 16, loaded)
	assert.Equal(t, vec.Vec2{X: -2, Y: -2}, overview[0].Coords)
	assert.False(t, overview[0].Loaded)
}
