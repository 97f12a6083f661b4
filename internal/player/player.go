package player

import (
	"errors"

	"github.com/annel0/tilecraft/internal/inventory"
	"github.com/annel0/tilecraft/internal/item"
	"github.com/annel0/tilecraft/internal/logging"
	"github.com/annel0/tilecraft/internal/vec"
	"github.com/annel0/tilecraft/internal/world/block"
	"github.com/annel0/tilecraft/internal/world/entity"
)

const (
	MaxLife       = 100
	immunityTicks = 5
)

// ErrUnknownRecipe возвращается при крафте предмета без рецепта
var ErrUnknownRecipe = errors.New("нет такого рецепта")

// World - то, что игроку нужно от мира
type World interface {
	IsAvailable(pos vec.Vec2) bool
	BlockAt(pos vec.Vec2) *block.Block
	DestroyBlock(pos vec.Vec2) bool
	EntityAt(pos vec.Vec2) (int, bool)
	Entity(i int) entity.Entity
	HurtEntity(i int, amount uint8)
	Spawn(e entity.Entity) int
}

// Player - управляемый персонаж
type Player struct {
	pos       vec.Vec2
	facing    vec.Direction
	moving    bool
	life      uint8
	immunity  uint8
	inventory *inventory.Inventory
	equipped  int
	logger    *logging.Logger
}

// New создаёт игрока с рукой в инвентаре
func New(pos vec.Vec2) *Player {
	return &Player{
		pos:       pos,
		facing:    vec.Down,
		life:      MaxLife,
		inventory: inventory.New(item.New(item.Hand, 1)),
		logger:    logging.GetGameLogger(),
	}
}

func (p *Player) Position() vec.Vec2    { return p.pos }
func (p *Player) Facing() vec.Direction { return p.facing }
func (p *Player) Life() uint8           { return p.life }
func (p *Player) IsDead() bool          { return p.life == 0 }
func (p *Player) IsMoving() bool        { return p.moving }

// Inventory возвращает инвентарь для изменения
func (p *Player) Inventory() *inventory.Inventory { return p.inventory }

// LifeRatio возвращает долю оставшейся жизни
func (p *Player) LifeRatio() float64 {
	return float64(p.life) / MaxLife
}

// Ahead возвращает клетку перед игроком
func (p *Player) Ahead() vec.Vec2 {
	return p.facing.Step(p.pos)
}

// Hurt наносит урон, если окно неуязвимости закончилось
func (p *Player) Hurt(amount uint8) {
	if p.immunity > 0 {
		return
	}
	if amount >= p.life {
		p.life = 0
	} else {
		p.life -= amount
	}
	p.immunity = immunityTicks
	p.logger.Debug("игрок получил %d урона, осталось %d", amount, p.life)
}

// Heal лечит, не превышая максимум
func (p *Player) Heal(amount uint8) {
	if int(p.life)+int(amount) >= MaxLife {
		p.life = MaxLife
		return
	}
	p.life += amount
}

// Face поворачивает игрока и взводит флаг движения на один тик
func (p *Player) Face(dir vec.Direction) {
	p.facing = dir
	p.moving = true
}

// Turn поворачивает игрока без движения
func (p *Player) Turn(dir vec.Direction) {
	p.facing = dir
}

// Step делает шаг вперёд, если клетка доступна. Упёршись во вредную
// сущность, игрок получает её урон.
func (p *Player) Step(w World) bool {
	target := p.Ahead()
	if w.IsAvailable(target) {
		p.pos = target
		return true
	}
	if idx, ok := w.EntityAt(target); ok {
		if e := w.Entity(idx); e.IsHarmful() {
			p.Hurt(e.Damage())
		}
	}
	return false
}

// Tick продвигает таймеры игрока; взведённое движение выполняется один раз
func (p *Player) Tick(w World) {
	if p.moving {
		p.Step(w)
		p.moving = false
	}
	if p.immunity > 0 {
		p.immunity--
	}
}

// Equipped возвращает предмет в руках
func (p *Player) Equipped() item.Item {
	if it, ok := p.inventory.Get(p.equipped); ok {
		return it
	}
	return item.New(item.Hand, 1)
}

// EquippedIndex возвращает индекс выбранной стопки
func (p *Player) EquippedIndex() int { return p.equipped }

// Equip выбирает стопку инвентаря
func (p *Player) Equip(i int) bool {
	if i < 0 || i >= p.inventory.Len() {
		return false
	}
	p.equipped = i
	return true
}

// NextItem выбирает следующую стопку по кругу
func (p *Player) NextItem() {
	if n := p.inventory.Len(); n > 0 {
		p.equipped = (p.equipped + 1) % n
	}
}

// Craft создаёт предмет по рецепту
func (p *Player) Craft(kind item.Kind) error {
	recipe, ok := inventory.RecipeFor(kind)
	if !ok {
		return ErrUnknownRecipe
	}
	held := p.Equipped().Kind
	if err := p.inventory.Craft(recipe); err != nil {
		return err
	}
	p.keepEquipped(held)
	return nil
}

// keepEquipped возвращает в руки предмет вида kind после того, как
// удаление стопок сдвинуло индексы
func (p *Player) keepEquipped(kind item.Kind) {
	if it, ok := p.inventory.Get(p.equipped); ok && it.Kind == kind {
		return
	}
	for i, it := range p.inventory.Items() {
		if it.Kind == kind {
			p.equipped = i
			return
		}
	}
	if n := p.inventory.Len(); p.equipped >= n {
		p.equipped = max(n-1, 0)
	}
}
