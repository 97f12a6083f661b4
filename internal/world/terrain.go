package world

// Terrain - классификация клетки по высоте шума.
// Порядок объявления задаёт приоритет при равенстве в AverageTerrain.
type Terrain uint8

const (
	DeepWater Terrain = iota
	Water
	Grass
	Stone

	terrainCount
)

// String возвращает строковое представление ландшафта
func (t Terrain) String() string {
	switch t {
	case DeepWater:
		return "deep_water"
	case Water:
		return "water"
	case Grass:
		return "grass"
	case Stone:
		return "stone"
	default:
		return "unknown"
	}
}

// IsWalkable: по ландшафту можно ходить
func (t Terrain) IsWalkable() bool {
	return t != Water && t != DeepWater
}

// Bands - пороги высоты шума, по убыванию
type Bands struct {
	Rock       float64 // выше: камень со скалой
	Stone      float64 // выше: голый камень
	Decoration float64 // выше: трава с украшениями
	Grass      float64 // выше: голая трава
	Water      float64 // выше: мелководье, ниже: глубина
}

// DefaultBands возвращает пороги, подобранные под DefaultNoiseParams
func DefaultBands() Bands {
	return Bands{Rock: 40, Stone: 30, Decoration: 10, Grass: 0, Water: -25}
}

// Band - полоса высоты, определяющая ландшафт и правило украшения
type Band uint8

const (
	BandDeepWater Band = iota
	BandWater
	BandGrass
	BandDecorated
	BandStone
	BandRock
)

// Classify относит значение шума к полосе
func (b Bands) Classify(value float64) Band {
	switch {
	case value >= b.Rock:
		return BandRock
	case value >= b.Stone:
		return BandStone
	case value >= b.Decoration:
		return BandDecorated
	case value >= b.Grass:
		return BandGrass
	case value >= b.Water:
		return BandWater
	default:
		return BandDeepWater
	}
}

// Terrain возвращает ландшафт полосы
func (band Band) Terrain() Terrain {
	switch band {
	case BandRock, BandStone:
		return Stone
	case BandDecorated, BandGrass:
		return Grass
	case BandWater:
		return Water
	default:
		return DeepWater
	}
}
