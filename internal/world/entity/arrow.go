package entity

import "github.com/annel0/tilecraft/internal/vec"

// Arrow летит по направлению взгляда, пока не попадёт или не истечёт
type Arrow struct {
	body
}

func NewArrow(pos vec.Vec2, facing vec.Direction, damage uint8) *Arrow {
	a := &Arrow{body: newBody(pos, facing, 50, damage, 0)}
	a.invulnerable = true
	return a
}

func (a *Arrow) Kind() Kind      { return KindArrow }
func (a *Arrow) IsHarmful() bool { return false }
func (a *Arrow) Collides() bool  { return false }

func (a *Arrow) OnAction(_ Target, world WorldView) Action {
	if idx, ok := world.EntityAt(a.pos); ok {
		a.expire()
		return Attack{Target: idx, Damage: a.damage}
	}
	return Nothing{}
}

func (a *Arrow) OnTick() {
	a.tick()
	a.life = saturatingSub(a.life, 1)
	a.pos = a.facing.Step(a.pos)
}
