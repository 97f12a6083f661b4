package inventory

import (
	"errors"
	"fmt"
	"math"

	"github.com/annel0/tilecraft/internal/item"
)

// ErrNotEnough возвращается, когда для крафта не хватает ингредиентов
var ErrNotEnough = errors.New("недостаточно ресурсов")

// Inventory - упорядоченный список стопок; стопки одного вида
// заполняются до максимума, прежде чем появится новая.
type Inventory struct {
	items []item.Item
}

// New создаёт инвентарь с указанными предметами
func New(items ...item.Item) *Inventory {
	inv := &Inventory{}
	for _, it := range items {
		inv.Add(it)
	}
	return inv
}

// Items возвращает стопки только для чтения
func (inv *Inventory) Items() []item.Item {
	return inv.items
}

// Len возвращает количество стопок
func (inv *Inventory) Len() int {
	return len(inv.items)
}

// Get возвращает стопку по индексу
func (inv *Inventory) Get(i int) (item.Item, bool) {
	if i < 0 || i >= len(inv.items) {
		return item.Item{}, false
	}
	return inv.items[i], true
}

// Add добавляет предмет: сначала доливает существующие стопки того же
// вида, остаток раскладывает по новым стопкам.
func (inv *Inventory) Add(it item.Item) {
	rest := it.Quantity
	for i := range inv.items {
		if rest <= 0 {
			return
		}
		if inv.items[i].Kind == it.Kind {
			rest = inv.items[i].ChangeQuantity(rest)
		}
	}
	for rest > 0 {
		stack := item.Item{Kind: it.Kind}
		rest = stack.ChangeQuantity(rest)
		inv.items = append(inv.items, stack)
	}
}

// TotalQuantity возвращает суммарное количество предметов вида
func (inv *Inventory) TotalQuantity(kind item.Kind) int {
	total := 0
	for _, it := range inv.items {
		if it.Kind == kind {
			total += int(it.Quantity)
		}
	}
	return total
}

// Has сообщает, есть ли хотя бы один предмет вида
func (inv *Inventory) Has(kind item.Kind) bool {
	return inv.TotalQuantity(kind) > 0
}

// Remove забирает quantity предметов вида, начиная с последних стопок.
// При нехватке инвентарь не меняется.
func (inv *Inventory) Remove(kind item.Kind, quantity int) error {
	if have := inv.TotalQuantity(kind); have < quantity {
		return fmt.Errorf("%w: %s %d из %d", ErrNotEnough, kind, have, quantity)
	}
	inv.take(kind, quantity)
	inv.compact()
	return nil
}

// CanCraft проверяет наличие всех ингредиентов
func (inv *Inventory) CanCraft(r Recipe) bool {
	for _, ing := range r.Ingredients {
		if inv.TotalQuantity(ing.Kind) < int(ing.Quantity) {
			return false
		}
	}
	return true
}

// Craft расходует ингредиенты и добавляет результат. Без полного набора
// ингредиентов ничего не меняется.
func (inv *Inventory) Craft(r Recipe) error {
	if !inv.CanCraft(r) {
		return fmt.Errorf("%w для %s", ErrNotEnough, r.Result.Kind)
	}
	for _, ing := range r.Ingredients {
		inv.take(ing.Kind, int(ing.Quantity))
	}
	inv.compact()
	inv.Add(r.Result)
	return nil
}

// take снимает quantity предметов; за один вызов ChangeQuantity со стопки
// снимается не больше math.MaxInt16
func (inv *Inventory) take(kind item.Kind, quantity int) {
	need := quantity
	for i := len(inv.items) - 1; i >= 0 && need > 0; i-- {
		if inv.items[i].Kind != kind {
			continue
		}
		step := min(need, math.MaxInt16)
		rest := inv.items[i].ChangeQuantity(-int16(step))
		need -= step + int(rest)
	}
}

// compact удаляет опустевшие стопки
func (inv *Inventory) compact() {
	kept := inv.items[:0]
	for _, it := range inv.items {
		if !it.IsEmpty() {
			kept = append(kept, it)
		}
	}
	inv.items = kept
}
