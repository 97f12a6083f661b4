package physics

import (
	"github.com/annel0/tilecraft/internal/vec"
)

// Occupancy - источник сведений о клетке для проверки проходимости
type Occupancy interface {
	// Walkable: ландшафт допускает стояние (не вода)
	Walkable(pos vec.Vec2) bool
	// HasBlock: в клетке стоит блок
	HasBlock(pos vec.Vec2) bool
	// Occupied: клетку занимает сущность
	Occupied(pos vec.Vec2) bool
}

// Reason объясняет, почему клетка недоступна
type Reason uint8

const (
	Free Reason = iota
	BlockedByTerrain
	BlockedByBlock
	BlockedByEntity
)

// String возвращает строковое представление причины
func (r Reason) String() string {
	switch r {
	case Free:
		return "free"
	case BlockedByTerrain:
		return "terrain"
	case BlockedByBlock:
		return "block"
	case BlockedByEntity:
		return "entity"
	default:
		return "unknown"
	}
}

// Probe проверяет клетку: сначала сущность, затем блок, затем ландшафт
func Probe(pos vec.Vec2, o Occupancy) Reason {
	if o.Occupied(pos) {
		return BlockedByEntity
	}
	if o.HasBlock(pos) {
		return BlockedByBlock
	}
	if !o.Walkable(pos) {
		return BlockedByTerrain
	}
	return Free
}

// CanMoveToPosition проверяет, свободна ли клетка
func CanMoveToPosition(pos vec.Vec2, o Occupancy) bool {
	return Probe(pos, o) == Free
}

// NearestFree ищет ближайшую свободную клетку, обходя квадратные кольца
// вокруг from с радиусом до maxRadius включительно.
func NearestFree(from vec.Vec2, maxRadius int, o Occupancy) (vec.Vec2, bool) {
	if CanMoveToPosition(from, o) {
		return from, true
	}
	for r := 1; r <= maxRadius; r++ {
		for _, p := range ring(from, r) {
			if CanMoveToPosition(p, o) {
				return p, true
			}
		}
	}
	return from, false
}

// ring возвращает клетки периметра квадрата радиуса r в порядке обхода
func ring(c vec.Vec2, r int) []vec.Vec2 {
	points := make([]vec.Vec2, 0, 8*r)
	for x := c.X - r; x <= c.X+r; x++ {
		points = append(points, vec.Vec2{X: x, Y: c.Y - r}, vec.Vec2{X: x, Y: c.Y + r})
	}
	for y := c.Y - r + 1; y <= c.Y+r-1; y++ {
		points = append(points, vec.Vec2{X: c.X - r, Y: y}, vec.Vec2{X: c.X + r, Y: y})
	}
	return points
}
