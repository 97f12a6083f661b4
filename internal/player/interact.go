package player

import (
	"github.com/annel0/tilecraft/internal/item"
	"github.com/annel0/tilecraft/internal/vec"
	"github.com/annel0/tilecraft/internal/world/block"
	"github.com/annel0/tilecraft/internal/world/entity"
)

// Outcome - код результата действия; текст для него подбирает интерфейс
type Outcome uint8

const (
	Nothing Outcome = iota
	Collected
	IncompatibleTool
	Hit
	Used
	NoAmmo
)

// String возвращает код результата
func (o Outcome) String() string {
	switch o {
	case Nothing:
		return "nothing"
	case Collected:
		return "collected"
	case IncompatibleTool:
		return "incompatible_tool"
	case Hit:
		return "hit"
	case Used:
		return "used"
	case NoAmmo:
		return "no_ammo"
	default:
		return "unknown"
	}
}

// Result описывает, что произошло при взаимодействии
type Result struct {
	Outcome   Outcome
	Target    vec.Vec2
	Block     block.Kind    // вид блока для Collected и IncompatibleTool
	Destroyed bool          // блок разрушен этим сбором
	Item      item.Item     // добыча для Collected
	Spawned   entity.Entity // порождённая сущность для Used
}

// Interact действует на клетку перед игроком: собирает блок совместимым
// инструментом, бьёт сущность или применяет предмет в руках. Порождённая
// сущность уже добавлена в мир.
func (p *Player) Interact(w World) Result {
	ahead := p.Ahead()
	held := p.Equipped()
	res := Result{Outcome: Nothing, Target: ahead}

	if b := w.BlockAt(ahead); b != nil {
		res.Block = b.Kind()
		if !b.IsCompatibleTool(held.Kind) {
			res.Outcome = IncompatibleTool
			return res
		}
		res.Item = b.Collect()
		p.inventory.Add(res.Item)
		if b.IsDestroyed() {
			res.Destroyed = w.DestroyBlock(ahead)
		}
		res.Outcome = Collected
		return res
	}

	if idx, ok := w.EntityAt(ahead); ok {
		w.HurtEntity(idx, held.Damage())
		res.Outcome = Hit
		return res
	}

	if ammo, ok := held.Kind.NeedsAmmo(); ok {
		if err := p.inventory.Remove(ammo, 1); err != nil {
			res.Outcome = NoAmmo
			return res
		}
		p.keepEquipped(held.Kind)
	}
	e, ok := held.Utilize(p.pos, p.facing)
	if !ok {
		return res
	}
	w.Spawn(e)
	res.Outcome = Used
	res.Spawned = e
	return res
}
