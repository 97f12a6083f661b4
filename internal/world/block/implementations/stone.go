package implementations

import (
	"math/rand"

	"github.com/annel0/tilecraft/internal/item"
	"github.com/annel0/tilecraft/internal/world/block"
)

const (
	stonesMinLife = 1
	stonesMaxLife = 4
	rockLife      = 15
)

// StonesBehavior – россыпь камней; жизнь случайна в [1, 4],
// собирается рукой или киркой
type StonesBehavior struct{}

func (b *StonesBehavior) Kind() block.Kind { return block.Stones }
func (b *StonesBehavior) Name() string     { return "stones" }
func (b *StonesBehavior) Glyph() rune      { return '∘' }
func (b *StonesBehavior) Yield() item.Item { return item.Item{Kind: item.Stone, Quantity: 1} }

func (b *StonesBehavior) InitialLife(rng *rand.Rand) uint8 {
	return uint8(stonesMinLife + rng.Intn(stonesMaxLife-stonesMinLife+1))
}

func (b *StonesBehavior) IsCompatibleTool(t item.Kind) bool {
	return t == item.Hand || t == item.Pickaxe
}

// RockBehavior – скала на каменистых высотах; только кирка
type RockBehavior struct{}

func (b *RockBehavior) Kind() block.Kind                  { return block.Rock }
func (b *RockBehavior) Name() string                      { return "rock" }
func (b *RockBehavior) Glyph() rune                       { return '▲' }
func (b *RockBehavior) InitialLife(_ *rand.Rand) uint8    { return rockLife }
func (b *RockBehavior) Yield() item.Item                  { return item.Item{Kind: item.Stone, Quantity: 1} }
func (b *RockBehavior) IsCompatibleTool(t item.Kind) bool { return t == item.Pickaxe }
