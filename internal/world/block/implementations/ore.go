package implementations

import (
	"math/rand"

	"github.com/annel0/tilecraft/internal/item"
	"github.com/annel0/tilecraft/internal/world/block"
)

const oreLife = 15

// OreBehavior – рудная жила внутри скал; добывается киркой
type OreBehavior struct {
	kind  block.Kind
	name  string
	yield item.Item
}

func (b *OreBehavior) Kind() block.Kind                  { return b.kind }
func (b *OreBehavior) Name() string                      { return b.name }
func (b *OreBehavior) Glyph() rune                       { return '◆' }
func (b *OreBehavior) InitialLife(_ *rand.Rand) uint8    { return oreLife }
func (b *OreBehavior) Yield() item.Item                  { return b.yield }
func (b *OreBehavior) IsCompatibleTool(t item.Kind) bool { return t == item.Pickaxe }
