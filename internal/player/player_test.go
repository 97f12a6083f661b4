package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annel0/tilecraft/internal/inventory"
	"github.com/annel0/tilecraft/internal/item"
	"github.com/annel0/tilecraft/internal/vec"
	"github.com/annel0/tilecraft/internal/world"
	"github.com/annel0/tilecraft/internal/world/block"
	"github.com/annel0/tilecraft/internal/world/entity"
)

// newWorld создаёт травяной мир с блоками в заданных клетках
func newWorld(t *testing.T, blocks map[vec.Vec2]block.Kind) *world.World {
	t.Helper()
	gen := &world.FlatGenerator{
		Terrain: world.Grass,
		Place: func(pos vec.Vec2) (block.Kind, bool) {
			k, ok := blocks[pos]
			return k, ok
		},
	}
	w, err := world.New(gen, world.Options{Seed: 1})
	require.NoError(t, err)
	w.UpdateChunks(vec.Vec2{}, vec.Vec2{X: 20, Y: 20})
	return w
}

func equip(t *testing.T, p *Player, kind item.Kind) {
	t.Helper()
	p.Inventory().Add(item.New(kind, 1))
	for i, it := range p.Inventory().Items() {
		if it.Kind == kind {
			require.True(t, p.Equip(i))
			return
		}
	}
	t.Fatalf("%s не найден", kind)
}

func TestNewPlayer(t *testing.T) {
	p := New(vec.Vec2{X: 1, Y: 2})
	assert.Equal(t, uint8(MaxLife), p.Life())
	assert.Equal(t, 1.0, p.LifeRatio())
	assert.Equal(t, item.Hand, p.Equipped().Kind)
	assert.Equal(t, 1, p.Inventory().Len())
}

func TestRockHarvestedFifteenTimes(t *testing.T) {
	rock := vec.Vec2{X: 0, Y: 1}
	w := newWorld(t, map[vec.Vec2]block.Kind{rock: block.Rock})
	p := New(vec.Vec2{})
	p.Turn(vec.Up)
	equip(t, p, item.Pickaxe)

	for i := 1; i <= 15; i++ {
		res := p.Interact(w)
		require.Equal(t, Collected, res.Outcome, "удар %d", i)
		assert.Equal(t, item.Item{Kind: item.Stone, Quantity: 1}, res.Item)
		assert.Equal(t, i == 15, res.Destroyed, "удар %d", i)
	}

	assert.Equal(t, 15, p.Inventory().TotalQuantity(item.Stone))
	assert.Nil(t, w.BlockAt(rock))
	assert.True(t, w.IsAvailable(rock))

	// блока больше нет — кирка просто машет
	assert.Equal(t, Used, p.Interact(w).Outcome)
}

func TestIncompatibleToolChangesNothing(t *testing.T) {
	tree := vec.Vec2{X: 1, Y: 0}
	w := newWorld(t, map[vec.Vec2]block.Kind{tree: block.Tree})
	p := New(vec.Vec2{})
	p.Turn(vec.Right)

	res := p.Interact(w)
	assert.Equal(t, IncompatibleTool, res.Outcome)
	assert.Equal(t, block.Tree, res.Block)
	assert.Equal(t, uint8(5), w.BlockAt(tree).Life())
	assert.Equal(t, 1, p.Inventory().Len())

	equip(t, p, item.Axe)
	res = p.Interact(w)
	assert.Equal(t, Collected, res.Outcome)
	assert.Equal(t, 2, p.Inventory().TotalQuantity(item.Wood))
	assert.Equal(t, uint8(4), w.BlockAt(tree).Life())
}

func TestGrassTuftAcceptsHand(t *testing.T) {
	tuft := vec.Vec2{X: 0, Y: -1}
	w := newWorld(t, map[vec.Vec2]block.Kind{tuft: block.GrassTuft})
	p := New(vec.Vec2{})

	res := p.Interact(w)
	assert.Equal(t, Collected, res.Outcome)
	assert.True(t, res.Destroyed)
	assert.Equal(t, 2, p.Inventory().TotalQuantity(item.Grass))
}

func TestHitEntityAhead(t *testing.T) {
	w := newWorld(t, nil)
	crawler := entity.NewCrawler(vec.Vec2{X: 0, Y: -1})
	w.Spawn(crawler)
	p := New(vec.Vec2{})
	equip(t, p, item.Sword)

	assert.Equal(t, Hit, p.Interact(w).Outcome)
	assert.True(t, crawler.IsDead())
}

func TestUseSpawnsSwing(t *testing.T) {
	w := newWorld(t, nil)
	p := New(vec.Vec2{})
	p.Turn(vec.Left)
	equip(t, p, item.Axe)

	res := p.Interact(w)
	require.Equal(t, Used, res.Outcome)
	require.NotNil(t, res.Spawned)
	assert.Equal(t, entity.KindSwing, res.Spawned.Kind())
	assert.Equal(t, vec.Vec2{X: -1, Y: 0}, res.Spawned.Position())
	assert.Equal(t, 1, w.Entities().Len())
}

func TestHandDoesNothingOnEmptyCell(t *testing.T) {
	w := newWorld(t, nil)
	p := New(vec.Vec2{})

	res := p.Interact(w)
	assert.Equal(t, Nothing, res.Outcome)
	assert.Nil(t, res.Spawned)
	assert.Zero(t, w.Entities().Len())
}

func TestBowConsumesArrows(t *testing.T) {
	w := newWorld(t, nil)
	p := New(vec.Vec2{})
	p.Turn(vec.Up)
	p.Inventory().Add(item.Item{Kind: item.Arrow, Quantity: 1})
	equip(t, p, item.Bow)

	res := p.Interact(w)
	require.Equal(t, Used, res.Outcome)
	assert.Equal(t, entity.KindArrow, res.Spawned.Kind())
	assert.False(t, p.Inventory().Has(item.Arrow))
	assert.Equal(t, item.Bow, p.Equipped().Kind, "лук остаётся в руках после удаления стопки стрел")

	assert.Equal(t, NoAmmo, p.Interact(w).Outcome)
	assert.Equal(t, 1, w.Entities().Len())
}

func TestStep(t *testing.T) {
	tree := vec.Vec2{X: 2, Y: 0}
	w := newWorld(t, map[vec.Vec2]block.Kind{tree: block.Tree})
	p := New(vec.Vec2{})
	p.Turn(vec.Right)

	assert.True(t, p.Step(w))
	assert.Equal(t, vec.Vec2{X: 1, Y: 0}, p.Position())
	assert.False(t, p.Step(w), "дерево")
	assert.Equal(t, vec.Vec2{X: 1, Y: 0}, p.Position())
}

func TestBumpingHarmfulCreatureHurts(t *testing.T) {
	w := newWorld(t, nil)
	w.Spawn(entity.NewCrawler(vec.Vec2{X: 0, Y: -1}))
	w.Spawn(entity.NewOvis(vec.Vec2{X: 1, Y: 0}))
	p := New(vec.Vec2{})

	assert.False(t, p.Step(w))
	assert.Equal(t, uint8(MaxLife-8), p.Life())

	for i := 0; i < immunityTicks; i++ {
		p.Tick(w)
	}
	p.Turn(vec.Right)
	assert.False(t, p.Step(w))
	assert.Equal(t, uint8(MaxLife-8), p.Life(), "овца не ранит")
}

func TestWalkingIntoFireBurns(t *testing.T) {
	w := newWorld(t, nil)
	w.Spawn(entity.NewFire(vec.Vec2{X: 1, Y: 0}, vec.Right))
	p := New(vec.Vec2{})
	p.Turn(vec.Right)

	require.True(t, p.Step(w), "пламя не преграждает путь")
	w.Tick(p)
	assert.Less(t, p.Life(), uint8(MaxLife))
}

func TestMovingFlagLastsOneTick(t *testing.T) {
	w := newWorld(t, nil)
	p := New(vec.Vec2{})

	p.Face(vec.Right)
	assert.True(t, p.IsMoving())
	p.Tick(w)
	assert.Equal(t, vec.Vec2{X: 1, Y: 0}, p.Position())
	assert.False(t, p.IsMoving())

	p.Tick(w)
	assert.Equal(t, vec.Vec2{X: 1, Y: 0}, p.Position())
}

func TestHurtImmunityWindow(t *testing.T) {
	w := newWorld(t, nil)
	p := New(vec.Vec2{})

	p.Hurt(10)
	p.Hurt(10)
	assert.Equal(t, uint8(90), p.Life())

	for i := 0; i < immunityTicks; i++ {
		p.Tick(w)
	}
	p.Hurt(200)
	assert.True(t, p.IsDead())

	p.Heal(255)
	assert.Equal(t, uint8(MaxLife), p.Life())
}

func TestCraftKeepsEquipped(t *testing.T) {
	p := New(vec.Vec2{})
	p.Inventory().Add(item.New(item.Stone, 5))
	p.Inventory().Add(item.New(item.Stick, 5))
	equip(t, p, item.Axe)
	require.Equal(t, 3, p.EquippedIndex())

	require.NoError(t, p.Craft(item.Pickaxe))
	assert.Equal(t, item.Axe, p.Equipped().Kind)
	assert.Equal(t, 1, p.Inventory().TotalQuantity(item.Pickaxe))

	assert.ErrorIs(t, p.Craft(item.Pickaxe), inventory.ErrNotEnough)
	assert.ErrorIs(t, p.Craft(item.Wood), ErrUnknownRecipe)
}

func TestNextItemWraps(t *testing.T) {
	p := New(vec.Vec2{})
	p.Inventory().Add(item.New(item.Axe, 1))

	p.NextItem()
	assert.Equal(t, item.Axe, p.Equipped().Kind)
	p.NextItem()
	assert.Equal(t, item.Hand, p.Equipped().Kind)
	assert.False(t, p.Equip(5))
}
