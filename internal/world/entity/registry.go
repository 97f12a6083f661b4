package entity

import (
	"math/rand"

	"github.com/annel0/tilecraft/internal/vec"
)

// spawnWeight - вес вида при случайном появлении
type spawnWeight struct {
	kind   Kind
	weight int
	build  func(vec.Vec2) Entity
}

var spawnTable = []spawnWeight{
	{KindCrawler, 40, func(p vec.Vec2) Entity { return NewCrawler(p) }},
	{KindOvis, 25, func(p vec.Vec2) Entity { return NewOvis(p) }},
	{KindSnake, 15, func(p vec.Vec2) Entity { return NewSnake(p) }},
	{KindScorpy, 15, func(p vec.Vec2) Entity { return NewScorpy(p) }},
	{KindGolem, 5, func(p vec.Vec2) Entity { return NewGolem(p) }},
}

// NewCreature создаёт существо указанного вида; эффекты так не создаются
func NewCreature(kind Kind, pos vec.Vec2) (Entity, bool) {
	for _, s := range spawnTable {
		if s.kind == kind {
			return s.build(pos), true
		}
	}
	return nil, false
}

// RandomCreature выбирает существо по весам таблицы появления
func RandomCreature(rng *rand.Rand, pos vec.Vec2) Entity {
	total := 0
	for _, s := range spawnTable {
		total += s.weight
	}
	roll := rng.Intn(total)
	for _, s := range spawnTable {
		if roll < s.weight {
			return s.build(pos)
		}
		roll -= s.weight
	}
	return NewCrawler(pos)
}

// IsCreature: вид относится к живым существам, а не к эффектам
func IsCreature(kind Kind) bool {
	switch kind {
	case KindCrawler, KindScorpy, KindSnake, KindGolem, KindOvis:
		return true
	}
	return false
}
