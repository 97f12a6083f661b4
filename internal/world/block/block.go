package block

import (
	"fmt"
	"math/rand"

	"github.com/annel0/tilecraft/internal/item"
)

// Block - разрушаемый объект в клетке чанка
type Block struct {
	behavior Behavior
	life     uint8
}

// New создаёт блок зарегистрированного вида
func New(kind Kind, rng *rand.Rand) (*Block, error) {
	behavior, ok := Get(kind)
	if !ok {
		return nil, fmt.Errorf("блок вида %d не зарегистрирован", kind)
	}
	return &Block{behavior: behavior, life: behavior.InitialLife(rng)}, nil
}

// MustNew создаёт блок и паникует для незарегистрированного вида
func MustNew(kind Kind, rng *rand.Rand) *Block {
	b, err := New(kind, rng)
	if err != nil {
		panic(err)
	}
	return b
}

func (b *Block) Kind() Kind   { return b.behavior.Kind() }
func (b *Block) Name() string { return b.behavior.Name() }
func (b *Block) Glyph() rune  { return b.behavior.Glyph() }
func (b *Block) Life() uint8  { return b.life }

// IsDestroyed сообщает, что жизнь блока исчерпана
func (b *Block) IsDestroyed() bool {
	return b.life == 0
}

// IsCompatibleTool - подсказка для вызывающего; Collect её не проверяет
func (b *Block) IsCompatibleTool(tool item.Kind) bool {
	return b.behavior.IsCompatibleTool(tool)
}

// Collect уменьшает жизнь на 1 (не ниже 0) и возвращает добычу
func (b *Block) Collect() item.Item {
	if b.life > 0 {
		b.life--
	}
	return b.behavior.Yield()
}
