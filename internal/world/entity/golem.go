package entity

import "github.com/annel0/tilecraft/internal/vec"

const (
	golemThrowRange    = 8
	golemThrowCooldown = 40
)

// Golem - медленный и живучий; с одной линии с игроком бросает
// ониксовые камни.
type Golem struct {
	creature
	cooldown uint8
}

func NewGolem(pos vec.Vec2) *Golem {
	return &Golem{creature: newCreature(pos, 30, 15, 20, 20, 12, true)}
}

func (g *Golem) Kind() Kind { return KindGolem }

func (g *Golem) OnAction(player Target, world WorldView) Action {
	target := player.Position()
	if g.cooldown == 0 && !g.pos.IsAdjacent(target) && g.aligned(target) {
		dir := vec.Towards(g.pos, target)
		from := dir.Step(g.pos)
		g.facing = dir
		g.cooldown = golemThrowCooldown
		return Spawn{Entities: []Entity{NewOnyxStone(from, dir)}}
	}
	return g.pursue(player, world)
}

func (g *Golem) OnTick() {
	g.creature.OnTick()
	if g.cooldown > 0 {
		g.cooldown--
	}
}

// aligned: игрок на одной оси в пределах дальности броска
func (g *Golem) aligned(target vec.Vec2) bool {
	dx, dy := g.pos.AbsDelta(target)
	return (dx == 0 && dy <= golemThrowRange) || (dy == 0 && dx <= golemThrowRange)
}
