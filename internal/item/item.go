package item

import (
	"github.com/annel0/tilecraft/internal/vec"
	"github.com/annel0/tilecraft/internal/world/entity"
)

// Kind определяет вид предмета
type Kind uint8

const (
	Hand Kind = iota
	Axe
	Pickaxe
	Sword
	Bow
	Arrow
	Stone
	Stick
	Wood
	Grass
	Iron
	Gold
	Coal
	DragonSoul
)

// kindInfo - статические свойства вида
type kindInfo struct {
	name        string
	maxQuantity int16
	damage      uint8
}

var kinds = map[Kind]kindInfo{
	Hand:       {"hand", 1, 1},
	Axe:        {"axe", 1, 3},
	Pickaxe:    {"pickaxe", 1, 2},
	Sword:      {"sword", 1, 6},
	Bow:        {"bow", 1, 2},
	Arrow:      {"arrow", 99, 0},
	Stone:      {"stone", 99, 0},
	Stick:      {"stick", 99, 0},
	Wood:       {"wood", 99, 0},
	Grass:      {"grass", 99, 0},
	Iron:       {"iron", 99, 0},
	Gold:       {"gold", 99, 0},
	Coal:       {"coal", 99, 0},
	DragonSoul: {"dragon_soul", 1, 0},
}

// String возвращает строковое представление вида
func (k Kind) String() string {
	if info, ok := kinds[k]; ok {
		return info.name
	}
	return "unknown"
}

// MaxQuantity возвращает максимальный размер стопки
func (k Kind) MaxQuantity() int16 {
	return kinds[k].maxQuantity
}

// Damage возвращает урон, который предмет наносит в руке
func (k Kind) Damage() uint8 {
	if d := kinds[k].damage; d > 0 {
		return d
	}
	return kinds[Hand].damage
}

// Item - стопка предметов одного вида
type Item struct {
	Kind     Kind
	Quantity int16
}

// New создаёт стопку с количеством, ограниченным [0, max]
func New(kind Kind, quantity int16) Item {
	it := Item{Kind: kind}
	it.ChangeQuantity(quantity)
	return it
}

// Damage возвращает урон предмета
func (it Item) Damage() uint8 {
	return it.Kind.Damage()
}

// IsEmpty сообщает, что в стопке ничего не осталось
func (it Item) IsEmpty() bool {
	return it.Quantity <= 0
}

// ChangeQuantity меняет количество на delta с ограничением [0, max] и
// возвращает неприменённый остаток: положительный при переполнении,
// отрицательный при нехватке.
func (it *Item) ChangeQuantity(delta int16) int16 {
	limit := it.Kind.MaxQuantity()
	next := int32(it.Quantity) + int32(delta)
	switch {
	case next > int32(limit):
		it.Quantity = limit
		return int16(next - int32(limit))
	case next < 0:
		it.Quantity = 0
		return int16(next)
	default:
		it.Quantity = int16(next)
		return 0
	}
}

// Utilize применяет предмет из клетки pos в направлении facing и
// возвращает порождённую сущность. Стрелы у лука расходует вызывающий.
func (it Item) Utilize(pos vec.Vec2, facing vec.Direction) (entity.Entity, bool) {
	ahead := facing.Step(pos)
	switch it.Kind {
	case Axe, Pickaxe, Sword:
		return entity.NewSwing(ahead, facing, it.Damage()), true
	case Bow:
		return entity.NewArrow(ahead, facing, it.Damage()), true
	case DragonSoul:
		return entity.NewFire(ahead, facing), true
	default:
		return nil, false
	}
}

// NeedsAmmo возвращает вид боеприпаса, который расходует предмет
func (k Kind) NeedsAmmo() (Kind, bool) {
	if k == Bow {
		return Arrow, true
	}
	return 0, false
}
