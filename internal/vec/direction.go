package vec

// Direction - направление взгляда сущности.
// Ось Y направлена вверх: Up увеличивает Y.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions перечисляет все направления в порядке объявления
var Directions = [4]Direction{Up, Down, Left, Right}

// String возвращает строковое представление направления
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Delta возвращает единичный шаг в направлении
func (d Direction) Delta() Vec2 {
	switch d {
	case Up:
		return Vec2{X: 0, Y: 1}
	case Down:
		return Vec2{X: 0, Y: -1}
	case Left:
		return Vec2{X: -1, Y: 0}
	default:
		return Vec2{X: 1, Y: 0}
	}
}

// Step возвращает клетку, соседнюю с pos в направлении d
func (d Direction) Step(pos Vec2) Vec2 {
	return pos.Add(d.Delta())
}

// Lateral возвращает два перпендикулярных направления
func (d Direction) Lateral() (Direction, Direction) {
	if d == Up || d == Down {
		return Left, Right
	}
	return Down, Up
}

// Towards выбирает направление шага от from к to: сначала ось с большим
// расхождением, при равенстве — ось Y.
func Towards(from, to Vec2) Direction {
	dx, dy := from.AbsDelta(to)
	if dx > dy {
		if to.X < from.X {
			return Left
		}
		return Right
	}
	if to.Y < from.Y {
		return Down
	}
	return Up
}
