package inventory

import "github.com/annel0/tilecraft/internal/item"

// Recipe описывает результат и требуемые ингредиенты
type Recipe struct {
	Result      item.Item
	Ingredients []item.Item
}

// Recipes - рецепты, доступные игроку, в порядке отображения
var Recipes = []Recipe{
	{
		Result:      item.Item{Kind: item.Pickaxe, Quantity: 1},
		Ingredients: []item.Item{{Kind: item.Stone, Quantity: 5}, {Kind: item.Stick, Quantity: 5}},
	},
	{
		Result:      item.Item{Kind: item.Axe, Quantity: 1},
		Ingredients: []item.Item{{Kind: item.Stone, Quantity: 5}, {Kind: item.Stick, Quantity: 5}},
	},
	{
		Result:      item.Item{Kind: item.Sword, Quantity: 1},
		Ingredients: []item.Item{{Kind: item.Iron, Quantity: 10}, {Kind: item.Stick, Quantity: 2}},
	},
	{
		Result:      item.Item{Kind: item.Bow, Quantity: 1},
		Ingredients: []item.Item{{Kind: item.Stick, Quantity: 10}, {Kind: item.Grass, Quantity: 10}},
	},
	{
		Result:      item.Item{Kind: item.Arrow, Quantity: 1},
		Ingredients: []item.Item{{Kind: item.Stone, Quantity: 1}, {Kind: item.Stick, Quantity: 1}},
	},
}

// RecipeFor возвращает рецепт предмета указанного вида
func RecipeFor(kind item.Kind) (Recipe, bool) {
	for _, r := range Recipes {
		if r.Result.Kind == kind {
			return r, true
		}
	}
	return Recipe{}, false
}
