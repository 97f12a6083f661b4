package entity

import "github.com/annel0/tilecraft/internal/vec"

// creature - общая основа живых существ: шаг раз в stepDelay тиков,
// преследование игрока в радиусе aggro, иначе случайное блуждание.
type creature struct {
	body
	stepDelay uint8
	untilStep uint8
	aggro     int
	harmful   bool
}

func newCreature(pos vec.Vec2, life, damage, immunity, stepDelay uint8, aggro int, harmful bool) creature {
	return creature{
		body:      newBody(pos, vec.Down, life, damage, immunity),
		stepDelay: stepDelay,
		untilStep: stepDelay,
		aggro:     aggro,
		harmful:   harmful,
	}
}

func (c *creature) IsHarmful() bool { return c.harmful }
func (c *creature) Collides() bool  { return true }

// Go перемещает существо и перезапускает задержку шага
func (c *creature) Go(pos vec.Vec2) {
	c.body.Go(pos)
	c.untilStep = c.stepDelay
}

func (c *creature) OnTick() {
	c.tick()
	if c.untilStep > 0 {
		c.untilStep--
	}
}

// ready сообщает, может ли существо шагнуть в этом тике
func (c *creature) ready() bool {
	return c.untilStep == 0
}

// inAggro: игрок ближе радиуса агрессии по обеим осям
func (c *creature) inAggro(target vec.Vec2) bool {
	dx, dy := c.pos.AbsDelta(target)
	return dx < c.aggro && dy < c.aggro
}

// wander выбирает случайный шаг
func (c *creature) wander(world WorldView) vec.Vec2 {
	d := vec.Directions[world.Rand().Intn(len(vec.Directions))]
	return d.Step(c.pos)
}

// pursue - поведение ближнего боя: соседний игрок получает урон,
// иначе шаг к игроку в радиусе агрессии или случайный шаг.
func (c *creature) pursue(player Target, world WorldView) Action {
	target := player.Position()
	if c.harmful && c.pos.IsAdjacent(target) {
		c.facing = vec.Towards(c.pos, target)
		player.Hurt(c.damage)
		return Nothing{}
	}
	if !c.ready() {
		return Nothing{}
	}

	var next vec.Vec2
	if c.inAggro(target) {
		next = vec.Towards(c.pos, target).Step(c.pos)
	} else {
		next = c.wander(world)
	}
	return c.moveTo(next, target, world)
}

// moveTo отбрасывает шаг в недоступную клетку или клетку игрока
func (c *creature) moveTo(next, player vec.Vec2, world WorldView) Action {
	if next == player || !world.IsAvailable(next) {
		return Nothing{}
	}
	return Move{To: next}
}
