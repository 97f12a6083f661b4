package entity

import (
	"math/rand"

	"github.com/annel0/tilecraft/internal/vec"
)

const (
	// FireMaxLife - жизнь пламени, выпущенного душой дракона
	FireMaxLife = 10
	fireDamage  = 5
	// боковое распространение начинается с жизни выше fireLateralFloor
	fireLateralFloor = 6
	fireLateralCost  = 5
)

// Fire живёт один тик: обжигает игрока или существо в своей клетке и
// порождает пламя вперёд и в стороны со слабеющей вероятностью.
type Fire struct {
	body
}

// NewFire создаёт пламя с полной жизнью
func NewFire(pos vec.Vec2, facing vec.Direction) *Fire {
	return NewSpreadFire(pos, facing, FireMaxLife)
}

// NewSpreadFire создаёт пламя с заданной жизнью (результат распространения)
func NewSpreadFire(pos vec.Vec2, facing vec.Direction, life uint8) *Fire {
	f := &Fire{body: newBody(pos, facing, life, fireDamage, 0)}
	f.maxLife = FireMaxLife
	f.invulnerable = true
	return f
}

func (f *Fire) Kind() Kind      { return KindFire }
func (f *Fire) IsHarmful() bool { return true }
func (f *Fire) Collides() bool  { return false }

func (f *Fire) OnAction(player Target, world WorldView) Action {
	if player.Position() == f.pos {
		player.Hurt(f.damage)
	}

	var actions Batch
	if idx, ok := world.EntityAt(f.pos); ok {
		actions = append(actions, Attack{Target: idx, Damage: f.damage})
	}
	if spawned := f.spread(world.Rand()); len(spawned) > 0 {
		actions = append(actions, Spawn{Entities: spawned})
	}

	switch len(actions) {
	case 0:
		return Nothing{}
	case 1:
		return actions[0]
	default:
		return actions
	}
}

func (f *Fire) OnTick() {
	f.tick()
	f.life = 0
}

// spread бросает кубики распространения: вперёд с вероятностью life/max
// и жизнью life-1, в каждую сторону с вероятностью max(life-6,0)/max и
// жизнью life-5. Боковое пламя сохраняет направление родителя, поэтому
// фронт движется вперёд. Пламя с нулевой жизнью не порождается.
func (f *Fire) spread(rng *rand.Rand) []Entity {
	var out []Entity
	life := int(f.life)

	if life > 1 && chance(rng, life, FireMaxLife) {
		out = append(out, NewSpreadFire(f.facing.Step(f.pos), f.facing, uint8(life-1)))
	}

	lateral := life - fireLateralFloor
	if lateral > 0 {
		left, right := f.facing.Lateral()
		for _, d := range [2]vec.Direction{left, right} {
			if chance(rng, lateral, FireMaxLife) {
				out = append(out, NewSpreadFire(d.Step(f.pos), f.facing, uint8(life-fireLateralCost)))
			}
		}
	}
	return out
}

// chance возвращает true с вероятностью num/den
func chance(rng *rand.Rand, num, den int) bool {
	if num <= 0 {
		return false
	}
	if num >= den {
		return true
	}
	return rng.Intn(den) < num
}
