package implementations

import (
	"math/rand"

	"github.com/annel0/tilecraft/internal/item"
	"github.com/annel0/tilecraft/internal/world/block"
)

// GrassTuftBehavior – пучок травы, собирается чем угодно с одного раза
type GrassTuftBehavior struct{}

func (b *GrassTuftBehavior) Kind() block.Kind                { return block.GrassTuft }
func (b *GrassTuftBehavior) Name() string                    { return "grass_tuft" }
func (b *GrassTuftBehavior) Glyph() rune                     { return '"' }
func (b *GrassTuftBehavior) InitialLife(_ *rand.Rand) uint8  { return 1 }
func (b *GrassTuftBehavior) Yield() item.Item                { return item.Item{Kind: item.Grass, Quantity: 2} }
func (b *GrassTuftBehavior) IsCompatibleTool(item.Kind) bool { return true }

// SticksBehavior – валежник; собирается топором
type SticksBehavior struct{}

func (b *SticksBehavior) Kind() block.Kind                  { return block.Sticks }
func (b *SticksBehavior) Name() string                      { return "sticks" }
func (b *SticksBehavior) Glyph() rune                       { return '/' }
func (b *SticksBehavior) InitialLife(_ *rand.Rand) uint8    { return 1 }
func (b *SticksBehavior) Yield() item.Item                  { return item.Item{Kind: item.Stick, Quantity: 1} }
func (b *SticksBehavior) IsCompatibleTool(t item.Kind) bool { return t == item.Axe }
