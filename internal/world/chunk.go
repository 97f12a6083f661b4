package world

import (
	"github.com/annel0/tilecraft/internal/vec"
	"github.com/annel0/tilecraft/internal/world/block"
)

// ChunkCells - количество клеток в чанке
const ChunkCells = vec.ChunkSize * vec.ChunkSize

// Cell - клетка чанка: ландшафт и необязательный блок
type Cell struct {
	Terrain Terrain
	Block   *block.Block
}

// Chunk представляет участок мира размером 16x16 клеток
type Chunk struct {
	Coords vec.Vec2 // X - столбец, Y - строка чанка
	cells  [ChunkCells]Cell
}

// NewChunk создаёт чанк, заполненный травой без блоков
func NewChunk(coords vec.Vec2) *Chunk {
	c := &Chunk{Coords: coords}
	for i := range c.cells {
		c.cells[i].Terrain = Grass
	}
	return c
}

// index переводит локальные координаты в индекс i*16+j; координаты
// заворачиваются в диапазон чанка
func index(local vec.Vec2) int {
	local = local.LocalInChunk()
	return local.X*vec.ChunkSize + local.Y
}

// Cell возвращает клетку по локальным координатам
func (c *Chunk) Cell(local vec.Vec2) *Cell {
	return &c.cells[index(local)]
}

// Origin возвращает мировые координаты клетки (0, 0) чанка
func (c *Chunk) Origin() vec.Vec2 {
	return vec.FromChunk(c.Coords, vec.Vec2{})
}

// Contains проверяет, принадлежит ли мировая клетка чанку
func (c *Chunk) Contains(pos vec.Vec2) bool {
	return pos.ToChunkCoords() == c.Coords
}

// BlockCount возвращает количество неразрушенных блоков
func (c *Chunk) BlockCount() int {
	n := 0
	for i := range c.cells {
		if c.cells[i].Block != nil {
			n++
		}
	}
	return n
}

// AverageTerrain возвращает самый частый ландшафт чанка;
// при равенстве побеждает меньший в порядке объявления.
func (c *Chunk) AverageTerrain() Terrain {
	var counts [terrainCount]int
	for i := range c.cells {
		counts[c.cells[i].Terrain]++
	}
	best := DeepWater
	for t := DeepWater; t < terrainCount; t++ {
		if counts[t] > counts[best] {
			best = t
		}
	}
	return best
}

// ForEach обходит клетки чанка с мировыми координатами
func (c *Chunk) ForEach(fn func(pos vec.Vec2, cell *Cell)) {
	for x := 0; x < vec.ChunkSize; x++ {
		for y := 0; y < vec.ChunkSize; y++ {
			local := vec.Vec2{X: x, Y: y}
			fn(vec.FromChunk(c.Coords, local), &c.cells[index(local)])
		}
	}
}
