package entity

import "github.com/annel0/tilecraft/internal/vec"

// OnyxStone - снаряд голема; ранит игрока, в клетку которого попадает
type OnyxStone struct {
	body
}

func NewOnyxStone(pos vec.Vec2, facing vec.Direction) *OnyxStone {
	o := &OnyxStone{body: newBody(pos, facing, 20, 10, 0)}
	o.invulnerable = true
	return o
}

func (o *OnyxStone) Kind() Kind      { return KindOnyxStone }
func (o *OnyxStone) IsHarmful() bool { return true }
func (o *OnyxStone) Collides() bool  { return false }

func (o *OnyxStone) OnAction(player Target, _ WorldView) Action {
	if player.Position() == o.pos {
		player.Hurt(o.damage)
		o.expire()
	}
	return Nothing{}
}

func (o *OnyxStone) OnTick() {
	o.tick()
	o.life = saturatingSub(o.life, 1)
	o.pos = o.facing.Step(o.pos)
}
