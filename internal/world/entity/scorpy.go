package entity

import "github.com/annel0/tilecraft/internal/vec"

// Scorpy - быстрый и опасный ползун с меньшим радиусом агрессии
type Scorpy struct {
	creature
}

func NewScorpy(pos vec.Vec2) *Scorpy {
	return &Scorpy{creature: newCreature(pos, 8, 12, 10, 5, 8, true)}
}

func (s *Scorpy) Kind() Kind { return KindScorpy }

func (s *Scorpy) OnAction(player Target, world WorldView) Action {
	return s.pursue(player, world)
}
