package implementations

import (
	"github.com/annel0/tilecraft/internal/item"
	"github.com/annel0/tilecraft/internal/world/block"
)

// Регистрируем все виды блоков при импорте пакета
func init() {
	block.Register(&TreeBehavior{})
	block.Register(&GrassTuftBehavior{})
	block.Register(&SticksBehavior{})
	block.Register(&StonesBehavior{})
	block.Register(&RockBehavior{})
	block.Register(&OreBehavior{kind: block.CoalOre, name: "coal_ore", yield: item.Item{Kind: item.Coal, Quantity: 2}})
	block.Register(&OreBehavior{kind: block.IronOre, name: "iron_ore", yield: item.Item{Kind: item.Iron, Quantity: 1}})
	block.Register(&OreBehavior{kind: block.GoldOre, name: "gold_ore", yield: item.Item{Kind: item.Gold, Quantity: 1}})
}
