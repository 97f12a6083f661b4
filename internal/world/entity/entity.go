package entity

import (
	"math/rand"

	"github.com/annel0/tilecraft/internal/vec"
)

// Kind определяет вид сущности
type Kind uint8

const (
	KindCrawler Kind = iota
	KindScorpy
	KindSnake
	KindGolem
	KindOvis
	KindSwing
	KindArrow
	KindFire
	KindOnyxStone
)

// String возвращает строковое представление вида
func (k Kind) String() string {
	switch k {
	case KindCrawler:
		return "crawler"
	case KindScorpy:
		return "scorpy"
	case KindSnake:
		return "snake"
	case KindGolem:
		return "golem"
	case KindOvis:
		return "ovis"
	case KindSwing:
		return "swing"
	case KindArrow:
		return "arrow"
	case KindFire:
		return "fire"
	case KindOnyxStone:
		return "onyx_stone"
	default:
		return "unknown"
	}
}

// Target - игрок с точки зрения сущностей: позиция и возможность получить урон
type Target interface {
	Position() vec.Vec2
	Hurt(amount uint8)
}

// WorldView - доступный сущностям срез мира только для чтения
type WorldView interface {
	// IsAvailable: в клетке можно стоять (суша, нет блока, нет занимающей сущности)
	IsAvailable(pos vec.Vec2) bool
	// EntityAt возвращает индекс живой занимающей клетку сущности
	EntityAt(pos vec.Vec2) (int, bool)
	Rand() *rand.Rand
}

// Entity - общий интерфейс существ и эффектов
type Entity interface {
	Kind() Kind
	Position() vec.Vec2
	Facing() vec.Direction
	Life() uint8
	MaxLife() uint8
	Damage() uint8

	// Go перемещает сущность и поворачивает её по направлению шага
	Go(pos vec.Vec2)
	// OnAction решает, что сделать в этом тике
	OnAction(player Target, world WorldView) Action
	// OnTick продвигает таймеры; вызывается после применения действия
	OnTick()

	Hurt(amount uint8)
	Heal(amount uint8)
	IsDead() bool
	// IsHarmful: столкновение с игроком наносит ему урон
	IsHarmful() bool
	// Collides: сущность занимает клетку и блокирует движение
	Collides() bool
}

// body хранит общее состояние сущностей
type body struct {
	pos      vec.Vec2
	facing   vec.Direction
	life     uint8
	maxLife  uint8
	damage   uint8
	immunity uint8
	// immunityReset - сколько тиков неуязвимости после удара; 0 у неуязвимых эффектов
	immunityReset uint8
	invulnerable  bool
	frame         uint8
}

func newBody(pos vec.Vec2, facing vec.Direction, life, damage, immunity uint8) body {
	return body{
		pos:           pos,
		facing:        facing,
		life:          life,
		maxLife:       life,
		damage:        damage,
		immunityReset: immunity,
	}
}

func (b *body) Position() vec.Vec2    { return b.pos }
func (b *body) Facing() vec.Direction { return b.facing }
func (b *body) Life() uint8           { return b.life }
func (b *body) MaxLife() uint8        { return b.maxLife }
func (b *body) Damage() uint8         { return b.damage }
func (b *body) IsDead() bool          { return b.life == 0 }

// Go перемещает сущность; направление берётся из шага
func (b *body) Go(pos vec.Vec2) {
	if pos != b.pos {
		b.facing = vec.Towards(b.pos, pos)
	}
	b.pos = pos
}

// Hurt уменьшает жизнь с насыщением в 0 и включает неуязвимость
func (b *body) Hurt(amount uint8) {
	if b.invulnerable || b.immunity > 0 {
		return
	}
	if amount >= b.life {
		b.life = 0
	} else {
		b.life -= amount
	}
	b.immunity = b.immunityReset
}

// Heal увеличивает жизнь, не превышая максимум
func (b *body) Heal(amount uint8) {
	if int(b.life)+int(amount) >= int(b.maxLife) {
		b.life = b.maxLife
		return
	}
	b.life += amount
}

// Immunity возвращает оставшиеся тики неуязвимости
func (b *body) Immunity() uint8 { return b.immunity }

// tick продвигает общие таймеры
func (b *body) tick() {
	if b.immunity > 0 {
		b.immunity--
	}
	b.frame = (b.frame + 1) % 20
}

// expire мгновенно завершает жизнь эффекта
func (b *body) expire() {
	b.life = 0
}

func saturatingSub(v, n uint8) uint8 {
	if n >= v {
		return 0
	}
	return v - n
}
