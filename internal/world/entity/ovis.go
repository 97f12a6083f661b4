package entity

import "github.com/annel0/tilecraft/internal/vec"

// Ovis - мирное животное, бродит случайно и не наносит урона
type Ovis struct {
	creature
}

func NewOvis(pos vec.Vec2) *Ovis {
	return &Ovis{creature: newCreature(pos, 6, 0, 10, 15, 0, false)}
}

func (o *Ovis) Kind() Kind { return KindOvis }

func (o *Ovis) OnAction(player Target, world WorldView) Action {
	if !o.ready() {
		return Nothing{}
	}
	return o.moveTo(o.wander(world), player.Position(), world)
}
