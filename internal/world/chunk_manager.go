package world

import (
	"fmt"
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/annel0/tilecraft/internal/logging"
	"github.com/annel0/tilecraft/internal/vec"
)

// DefaultUnusedChunkLimit - ёмкость пула выгруженных чанков
const DefaultUnusedChunkLimit = 1024

// ChunkManager подгружает чанки вокруг камеры. Выгруженные чанки
// попадают в LRU-пул и при возврате камеры восстанавливаются тем же
// экземпляром, вместе с правками игрока. Вытеснение из пула теряет правки.
type ChunkManager struct {
	generator Generator
	loaded    map[vec.Vec2]*Chunk
	unused    *lru.Cache[vec.Vec2, *Chunk]
	offset    vec.Vec2
	bounds    vec.Vec2
	observer  Observer
	logger    *logging.Logger
}

// NewChunkManager создаёт менеджер с пулом на unusedLimit чанков
func NewChunkManager(generator Generator, unusedLimit int) (*ChunkManager, error) {
	if unusedLimit <= 0 {
		unusedLimit = DefaultUnusedChunkLimit
	}
	unused, err := lru.New[vec.Vec2, *Chunk](unusedLimit)
	if err != nil {
		return nil, fmt.Errorf("пул выгруженных чанков: %w", err)
	}
	return &ChunkManager{
		generator: generator,
		loaded:    make(map[vec.Vec2]*Chunk),
		unused:    unused,
		observer:  NopObserver{},
		logger:    logging.GetWorldLogger(),
	}, nil
}

// SetObserver задаёт наблюдателя событий чанков
func (m *ChunkManager) SetObserver(o Observer) {
	if o == nil {
		o = NopObserver{}
	}
	m.observer = o
}

// Offset возвращает центр камеры в мировых координатах
func (m *ChunkManager) Offset() vec.Vec2 { return m.offset }

// Bounds возвращает половинные размеры окна
func (m *ChunkManager) Bounds() vec.Vec2 { return m.bounds }

// SetOffset ставит камеру в точку без плавного следования
func (m *ChunkManager) SetOffset(offset vec.Vec2) { m.offset = offset }

// LoadedCount возвращает количество загруженных чанков
func (m *ChunkManager) LoadedCount() int { return len(m.loaded) }

// UnusedCount возвращает количество чанков в пуле
func (m *ChunkManager) UnusedCount() int { return m.unused.Len() }

// Chunk возвращает загруженный чанк
func (m *ChunkManager) Chunk(coords vec.Vec2) (*Chunk, bool) {
	c, ok := m.loaded[coords]
	return c, ok
}

// Cell возвращает клетку загруженного чанка по мировым координатам
func (m *ChunkManager) Cell(pos vec.Vec2) (*Cell, bool) {
	c, ok := m.loaded[pos.ToChunkCoords()]
	if !ok {
		return nil, false
	}
	return c.Cell(pos.LocalInChunk()), true
}

// Update сдвигает камеру за игроком и приводит набор загруженных чанков
// к прямоугольнику [offset-bounds, offset+bounds].
func (m *ChunkManager) Update(player, bounds vec.Vec2) {
	m.bounds = bounds
	m.recenter(player)

	lo, hi := m.Rect()
	for x := lo.X; x <= hi.X; x++ {
		for y := lo.Y; y <= hi.Y; y++ {
			coords := vec.Vec2{X: x, Y: y}
			if _, ok := m.loaded[coords]; ok {
				continue
			}
			m.loaded[coords] = m.obtain(coords)
		}
	}

	var out []vec.Vec2
	for coords := range m.loaded {
		if coords.X < lo.X || coords.X > hi.X || coords.Y < lo.Y || coords.Y > hi.Y {
			out = append(out, coords)
		}
	}
	// порядок вытеснения из LRU не должен зависеть от обхода map
	sort.Slice(out, func(i, j int) bool { return lessCoords(out[i], out[j]) })
	for _, coords := range out {
		m.unload(coords)
	}
}

// recenter сдвигает камеру на величину выхода игрока за треть окна
func (m *ChunkManager) recenter(player vec.Vec2) {
	m.offset.X += overflow(player.X-m.offset.X, m.bounds.X/3)
	m.offset.Y += overflow(player.Y-m.offset.Y, m.bounds.Y/3)
}

func overflow(delta, threshold int) int {
	switch {
	case delta > threshold:
		return delta - threshold
	case delta < -threshold:
		return delta + threshold
	default:
		return 0
	}
}

// Rect возвращает включительный прямоугольник координат чанков окна
func (m *ChunkManager) Rect() (lo, hi vec.Vec2) {
	lo = m.offset.Sub(m.bounds).ToChunkCoords()
	hi = m.offset.Add(m.bounds).ToChunkCoords()
	return lo, hi
}

// obtain возвращает чанк из пула или генерирует новый
func (m *ChunkManager) obtain(coords vec.Vec2) *Chunk {
	if c, ok := m.unused.Peek(coords); ok {
		m.unused.Remove(coords)
		m.observer.ChunkReclaimed()
		return c
	}
	m.observer.ChunkGenerated()
	return m.generator.Generate(coords)
}

func (m *ChunkManager) unload(coords vec.Vec2) {
	c := m.loaded[coords]
	delete(m.loaded, coords)
	m.observer.ChunkUnloaded()
	if evicted := m.unused.Add(coords, c); evicted {
		m.observer.ChunkEvicted()
		m.logger.Debug("пул чанков переполнен, самый старый чанк вытеснен")
	}
}

// ChunkSummary - строка карты мира: чанк и его преобладающий ландшафт
type ChunkSummary struct {
	Coords  vec.Vec2
	Terrain Terrain
	Loaded  bool
}

// Overview перечисляет загруженные чанки и чанки пула, упорядоченные по
// координатам. Пул читается без изменения порядка вытеснения.
func (m *ChunkManager) Overview() []ChunkSummary {
	out := make([]ChunkSummary, 0, len(m.loaded)+m.unused.Len())
	for coords, c := range m.loaded {
		out = append(out, ChunkSummary{Coords: coords, Terrain: c.AverageTerrain(), Loaded: true})
	}
	for _, coords := range m.unused.Keys() {
		if c, ok := m.unused.Peek(coords); ok {
			out = append(out, ChunkSummary{Coords: coords, Terrain: c.AverageTerrain()})
		}
	}
	sort.Slice(out, func(i, j int) bool { return lessCoords(out[i].Coords, out[j].Coords) })
	return out
}

func lessCoords(a, b vec.Vec2) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}
