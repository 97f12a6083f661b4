package world

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/annel0/tilecraft/internal/vec"
	"github.com/annel0/tilecraft/internal/world/block"
	"github.com/annel0/tilecraft/internal/world/entity"
)

type recordingObserver struct {
	generated, reclaimed, unloaded, evicted int
	destroyed                               []block.Kind
	spawned, removed                        int
}

func (o *recordingObserver) EntitySpawned(entity.Kind)   { o.spawned++ }
func (o *recordingObserver) EntityRemoved(entity.Kind)   { o.removed++ }
func (o *recordingObserver) ChunkGenerated()             { o.generated++ }
func (o *recordingObserver) ChunkReclaimed()             { o.reclaimed++ }
func (o *recordingObserver) ChunkUnloaded()              { o.unloaded++ }
func (o *recordingObserver) ChunkEvicted()               { o.evicted++ }
func (o *recordingObserver) BlockDestroyed(k block.Kind) { o.destroyed = append(o.destroyed, k) }

// treesAt ставит деревья в указанные мировые клетки
func treesAt(cells ...vec.Vec2) *FlatGenerator {
	set := make(map[vec.Vec2]bool, len(cells))
	for _, c := range cells {
		set[c] = true
	}
	return &FlatGenerator{
		Terrain: Grass,
		Place: func(pos vec.Vec2) (block.Kind, bool) {
			return block.Tree, set[pos]
		},
	}
}

func newTestWorld(t *testing.T, gen Generator, limit int) (*World, *recordingObserver) {
	t.Helper()
	obs := &recordingObserver{}
	w, err := New(gen, Options{UnusedChunkLimit: limit, Seed: 1, Observer: obs})
	require.NoError(t, err)
	return w, obs
}

type stillPlayer struct {
	pos  vec.Vec2
	hurt int
}

func (p *stillPlayer) Position() vec.Vec2 { return p.pos }
func (p *stillPlayer) Hurt(amount uint8)  { p.hurt += int(amount) }
