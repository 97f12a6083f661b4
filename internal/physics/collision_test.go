package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annel0/tilecraft/internal/vec"
)

type grid struct {
	water, blocks, entities map[vec.Vec2]bool
}

func newGrid() *grid {
	return &grid{water: map[vec.Vec2]bool{}, blocks: map[vec.Vec2]bool{}, entities: map[vec.Vec2]bool{}}
}

func (g *grid) Walkable(p vec.Vec2) bool { return !g.water[p] }
func (g *grid) HasBlock(p vec.Vec2) bool { return g.blocks[p] }
func (g *grid) Occupied(p vec.Vec2) bool { return g.entities[p] }

func TestProbe(t *testing.T) {
	g := newGrid()
	p := vec.Vec2{X: 1, Y: 1}
	assert.Equal(t, Free, Probe(p, g))

	g.water[p] = true
	assert.Equal(t, BlockedByTerrain, Probe(p, g))
	g.blocks[p] = true
	assert.Equal(t, BlockedByBlock, Probe(p, g))
	g.entities[p] = true
	assert.Equal(t, BlockedByEntity, Probe(p, g))
	assert.False(t, CanMoveToPosition(p, g))
}

func TestNearestFree(t *testing.T) {
	g := newGrid()
	for x := -2; x <= 2; x++ {
		for y := -2; y <= 2; y++ {
			g.water[vec.Vec2{X: x, Y: y}] = true
		}
	}

	got, ok := NearestFree(vec.Vec2{}, 5, g)
	require.True(t, ok)
	dx, dy := got.AbsDelta(vec.Vec2{})
	assert.Equal(t, 3, max(dx, dy))

	_, ok = NearestFree(vec.Vec2{}, 2, g)
	assert.False(t, ok)
}

func TestRingCoversPerimeter(t *testing.T) {
	points := ring(vec.Vec2{X: 10, Y: -4}, 2)
	assert.Len(t, points, 16)

	seen := map[vec.Vec2]bool{}
	for _, p := range points {
		dx, dy := p.AbsDelta(vec.Vec2{X: 10, Y: -4})
		assert.Equal(t, 2, max(dx, dy))
		seen[p] = true
	}
	assert.Len(t, seen, 16)
}
