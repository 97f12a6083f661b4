package world

import (
	"math/rand"

	"github.com/annel0/tilecraft/internal/logging"
	"github.com/annel0/tilecraft/internal/util"
	"github.com/annel0/tilecraft/internal/vec"
	"github.com/annel0/tilecraft/internal/world/block"
	_ "github.com/annel0/tilecraft/internal/world/block/implementations"
)

// Generator создаёт чанк по его координатам
type Generator interface {
	Generate(coords vec.Vec2) *Chunk
}

// Decoration - вероятности украшений в виде "1 из N"; 0 отключает правило
type Decoration struct {
	Tree      int
	Stones    int
	Sticks    int
	GrassTuft int
	CoalOre   int
	IronOre   int
	GoldOre   int
}

// DefaultDecoration возвращает классические вероятности украшений
func DefaultDecoration() Decoration {
	return Decoration{
		Tree:      15,
		Stones:    100,
		Sticks:    100,
		GrassTuft: 30,
		CoalOre:   20,
		IronOre:   40,
		GoldOre:   80,
	}
}

// rule - правило украшения: вид блока и шанс "1 из N"
type rule struct {
	kind  block.Kind
	oneIn int
}

// grassRules проверяются по порядку, побеждает первое сработавшее
func (d Decoration) grassRules() []rule {
	return []rule{
		{block.Tree, d.Tree},
		{block.Stones, d.Stones},
		{block.Sticks, d.Sticks},
		{block.GrassTuft, d.GrassTuft},
	}
}

// oreRules заменяют скалу рудой
func (d Decoration) oreRules() []rule {
	return []rule{
		{block.GoldOre, d.GoldOre},
		{block.IronOre, d.IronOre},
		{block.CoalOre, d.CoalOre},
	}
}

func roll(rng *rand.Rand, rules []rule) (block.Kind, bool) {
	for _, r := range rules {
		if r.oneIn > 0 && rng.Intn(r.oneIn) == 0 {
			return r.kind, true
		}
	}
	return 0, false
}

// chunkRand создаёт детерминированный генератор случайных чисел для чанка
func chunkRand(seed int64, coords vec.Vec2) *rand.Rand {
	chunkSeed := seed ^ int64(coords.X)*73856093 ^ int64(coords.Y)*19349663
	return rand.New(rand.NewSource(chunkSeed))
}

// PerlinGenerator генерирует ландшафт по шуму Перлина
type PerlinGenerator struct {
	sampler    *util.Sampler
	bands      Bands
	decoration Decoration
	logger     *logging.Logger
}

// NewPerlinGenerator создаёт генератор мира
func NewPerlinGenerator(sampler *util.Sampler, bands Bands, decoration Decoration) *PerlinGenerator {
	return &PerlinGenerator{
		sampler:    sampler,
		bands:      bands,
		decoration: decoration,
		logger:     logging.GetWorldLogger(),
	}
}

// Generate заполняет чанк ландшафтом и украшениями. Результат зависит
// только от сида и координат.
func (g *PerlinGenerator) Generate(coords vec.Vec2) *Chunk {
	chunk := NewChunk(coords)
	rng := chunkRand(g.sampler.Seed(), coords)

	chunk.ForEach(func(pos vec.Vec2, cell *Cell) {
		band := g.bands.Classify(g.sampler.Sample(float64(pos.X), float64(pos.Y)))
		cell.Terrain = band.Terrain()

		switch band {
		case BandRock:
			kind, ok := roll(rng, g.decoration.oreRules())
			if !ok {
				kind = block.Rock
			}
			cell.Block = block.MustNew(kind, rng)
		case BandDecorated:
			if kind, ok := roll(rng, g.decoration.grassRules()); ok {
				cell.Block = block.MustNew(kind, rng)
			}
		}
	})

	if g.logger.Enabled(logging.TRACE) {
		g.logger.Trace("чанк %v: %d блоков, преобладает %s", coords, chunk.BlockCount(), chunk.AverageTerrain())
	}
	return chunk
}

// FlatGenerator - плоский мир одного ландшафта; Place решает, какой блок
// поставить в мировую клетку.
type FlatGenerator struct {
	Terrain Terrain
	Place   func(pos vec.Vec2) (block.Kind, bool)
	Seed    int64
}

// Generate создаёт плоский чанк
func (g *FlatGenerator) Generate(coords vec.Vec2) *Chunk {
	chunk := NewChunk(coords)
	rng := chunkRand(g.Seed, coords)

	chunk.ForEach(func(pos vec.Vec2, cell *Cell) {
		cell.Terrain = g.Terrain
		if g.Place == nil {
			return
		}
		if kind, ok := g.Place(pos); ok {
			cell.Block = block.MustNew(kind, rng)
		}
	})
	return chunk
}
