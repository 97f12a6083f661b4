package block

import (
	"math/rand"

	"github.com/annel0/tilecraft/internal/item"
)

// Behavior - неизменяемые свойства вида блока. Состояние (жизнь)
// хранится в Block.
type Behavior interface {
	Kind() Kind
	Name() string
	// Glyph - подсказка для отрисовки
	Glyph() rune
	// InitialLife возвращает жизнь нового блока; некоторые виды бросают кубик
	InitialLife(rng *rand.Rand) uint8
	// Yield - предмет, выдаваемый за один сбор
	Yield() item.Item
	// IsCompatibleTool сообщает, можно ли собирать блок этим предметом
	IsCompatibleTool(tool item.Kind) bool
}
