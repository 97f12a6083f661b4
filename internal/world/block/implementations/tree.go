package implementations

import (
	"math/rand"

	"github.com/annel0/tilecraft/internal/item"
	"github.com/annel0/tilecraft/internal/world/block"
)

// TreeBehavior – дерево: рубится топором, даёт древесину
type TreeBehavior struct{}

func (b *TreeBehavior) Kind() block.Kind                  { return block.Tree }
func (b *TreeBehavior) Name() string                      { return "tree" }
func (b *TreeBehavior) Glyph() rune                       { return '♣' }
func (b *TreeBehavior) InitialLife(_ *rand.Rand) uint8    { return 5 }
func (b *TreeBehavior) Yield() item.Item                  { return item.Item{Kind: item.Wood, Quantity: 2} }
func (b *TreeBehavior) IsCompatibleTool(t item.Kind) bool { return t == item.Axe }
