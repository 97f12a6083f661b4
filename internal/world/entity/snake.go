package entity

import "github.com/annel0/tilecraft/internal/vec"

// Snake замечает игрока издалека, но нападает только каждый второй тик
// соседства.
type Snake struct {
	creature
	strike bool
}

func NewSnake(pos vec.Vec2) *Snake {
	return &Snake{creature: newCreature(pos, 3, 4, 8, 6, 16, true)}
}

func (s *Snake) Kind() Kind { return KindSnake }

func (s *Snake) OnAction(player Target, world WorldView) Action {
	if s.pos.IsAdjacent(player.Position()) {
		s.strike = !s.strike
		if !s.strike {
			return Nothing{}
		}
	}
	return s.pursue(player, world)
}
