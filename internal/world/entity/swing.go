package entity

import "github.com/annel0/tilecraft/internal/vec"

// Swing - короткоживущий взмах оружием; бьёт сущность в своей клетке
type Swing struct {
	body
}

// NewSwing создаёт взмах в клетке перед игроком
func NewSwing(pos vec.Vec2, facing vec.Direction, damage uint8) *Swing {
	s := &Swing{body: newBody(pos, facing, 3, damage, 0)}
	s.invulnerable = true
	return s
}

func (s *Swing) Kind() Kind      { return KindSwing }
func (s *Swing) IsHarmful() bool { return false }
func (s *Swing) Collides() bool  { return false }

func (s *Swing) OnAction(_ Target, world WorldView) Action {
	if idx, ok := world.EntityAt(s.pos); ok {
		s.expire()
		return Attack{Target: idx, Damage: s.damage}
	}
	return Nothing{}
}

func (s *Swing) OnTick() {
	s.tick()
	s.life = saturatingSub(s.life, 1)
}
