package vec

import (
	"fmt"
	"math"
)

// ChunkShift - log2 размера чанка (16 = 1<<4)
const ChunkShift = 4

// ChunkSize - сторона чанка в клетках
const ChunkSize = 1 << ChunkShift

// Vec2 представляет 2D координаты
type Vec2 struct {
	X, Y int
}

// String возвращает строковое представление вектора
func (v Vec2) String() string {
	return fmt.Sprintf("(%d, %d)", v.X, v.Y)
}

// Add складывает два вектора
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub вычитает вектор
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// ToChunkCoords преобразует глобальные координаты в координаты чанка.
// Арифметический сдвиг округляет к минус бесконечности, поэтому
// отрицательные координаты попадают в правильный чанк (-1 -> -1, а не 0).
func (v Vec2) ToChunkCoords() Vec2 {
	return Vec2{X: v.X >> ChunkShift, Y: v.Y >> ChunkShift}
}

// LocalInChunk возвращает локальные координаты внутри чанка (всегда 0..15)
func (v Vec2) LocalInChunk() Vec2 {
	return Vec2{X: v.X & (ChunkSize - 1), Y: v.Y & (ChunkSize - 1)}
}

// FromChunk собирает глобальные координаты из координат чанка и локальной клетки
func FromChunk(chunk, local Vec2) Vec2 {
	return Vec2{X: chunk.X<<ChunkShift + local.X, Y: chunk.Y<<ChunkShift + local.Y}
}

// DistanceTo вычисляет расстояние до другой точки
func (v Vec2) DistanceTo(other Vec2) float64 {
	dx := float64(v.X - other.X)
	dy := float64(v.Y - other.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// AbsDelta возвращает модули разностей по осям
func (v Vec2) AbsDelta(other Vec2) (int, int) {
	return abs(v.X - other.X), abs(v.Y - other.Y)
}

// IsAdjacent возвращает true, если точки соседние по одной оси (ровно на 1 клетку)
func (v Vec2) IsAdjacent(other Vec2) bool {
	dx, dy := v.AbsDelta(other)
	return dx+dy == 1
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
