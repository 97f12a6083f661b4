package world

import (
	"github.com/annel0/tilecraft/internal/vec"
	"github.com/annel0/tilecraft/internal/world/entity"
)

// Spawner с вероятностью Chance за тик выпускает существо на краю окна
// камеры, пока их меньше MaxCreatures.
type Spawner struct {
	Chance       float64
	MaxCreatures int
}

// Update пытается породить одно существо; возвращает его при успехе
func (s Spawner) Update(w *World, player, halfExtent vec.Vec2) (entity.Entity, bool) {
	if s.MaxCreatures <= 0 || halfExtent.X <= 0 || halfExtent.Y <= 0 {
		return nil, false
	}
	rng := w.Rand()
	if rng.Float64() >= s.Chance {
		return nil, false
	}
	if w.Entities().Count(func(e entity.Entity) bool { return entity.IsCreature(e.Kind()) }) >= s.MaxCreatures {
		return nil, false
	}

	pos := rimPoint(rng.Intn(perimeter(halfExtent)), w.Chunks().Offset(), halfExtent)
	if pos == player || !w.CanPlace(pos) {
		return nil, false
	}

	e := entity.RandomCreature(rng, pos)
	w.Spawn(e)
	w.logger.Debug("появился %s в %v", e.Kind(), pos)
	return e, true
}

func perimeter(half vec.Vec2) int {
	return 4*half.X + 4*half.Y
}

// rimPoint отображает n из [0, perimeter) на клетку границы прямоугольника
// [center-half, center+half]
func rimPoint(n int, center, half vec.Vec2) vec.Vec2 {
	w, h := 2*half.X, 2*half.Y
	lo := center.Sub(half)
	switch {
	case n < w:
		return vec.Vec2{X: lo.X + n, Y: lo.Y}
	case n < w+h:
		return vec.Vec2{X: lo.X + w, Y: lo.Y + n - w}
	case n < 2*w+h:
		return vec.Vec2{X: lo.X + w - (n - w - h), Y: lo.Y + h}
	default:
		return vec.Vec2{X: lo.X, Y: lo.Y + h - (n - 2*w - h)}
	}
}
