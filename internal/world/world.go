package world

import (
	"math/rand"

	"github.com/annel0/tilecraft/internal/logging"
	"github.com/annel0/tilecraft/internal/physics"
	"github.com/annel0/tilecraft/internal/vec"
	"github.com/annel0/tilecraft/internal/world/block"
	"github.com/annel0/tilecraft/internal/world/entity"
)

// Options настраивает мир
type Options struct {
	// UnusedChunkLimit - ёмкость пула выгруженных чанков
	UnusedChunkLimit int
	// Seed задаёт генератор случайных чисел симуляции
	Seed     int64
	Observer Observer
}

// World - поверхность запросов и изменений мира: чанки, блоки, сущности.
// Не потокобезопасен: всё изменяется из одной горутины игрового цикла.
type World struct {
	chunks   *ChunkManager
	entities *entity.Manager
	rng      *rand.Rand
	observer Observer
	ticks    uint64
	logger   *logging.Logger
}

// New создаёт мир поверх генератора чанков
func New(generator Generator, opts Options) (*World, error) {
	chunks, err := NewChunkManager(generator, opts.UnusedChunkLimit)
	if err != nil {
		return nil, err
	}

	w := &World{
		chunks:   chunks,
		entities: entity.NewManager(),
		rng:      rand.New(rand.NewSource(opts.Seed)),
		logger:   logging.GetWorldLogger(),
	}
	w.SetObserver(opts.Observer)
	return w, nil
}

// SetObserver подключает наблюдателя к чанкам и сущностям
func (w *World) SetObserver(o Observer) {
	if o == nil {
		o = NopObserver{}
	}
	w.observer = o
	w.chunks.SetObserver(o)
	w.entities.SetObserver(o)
}

// Chunks возвращает менеджер чанков
func (w *World) Chunks() *ChunkManager { return w.chunks }

// Entities возвращает арену сущностей
func (w *World) Entities() *entity.Manager { return w.entities }

// Rand возвращает генератор случайных чисел симуляции
func (w *World) Rand() *rand.Rand { return w.rng }

// Ticks возвращает количество выполненных тиков
func (w *World) Ticks() uint64 { return w.ticks }

// TileAt возвращает ландшафт клетки; для незагруженных чанков — трава
func (w *World) TileAt(pos vec.Vec2) Terrain {
	if cell, ok := w.chunks.Cell(pos); ok {
		return cell.Terrain
	}
	return Grass
}

// BlockAt возвращает блок клетки или nil
func (w *World) BlockAt(pos vec.Vec2) *block.Block {
	if cell, ok := w.chunks.Cell(pos); ok {
		return cell.Block
	}
	return nil
}

// DestroyBlock убирает блок из клетки
func (w *World) DestroyBlock(pos vec.Vec2) bool {
	cell, ok := w.chunks.Cell(pos)
	if !ok || cell.Block == nil {
		return false
	}
	kind := cell.Block.Kind()
	cell.Block = nil
	w.observer.BlockDestroyed(kind)
	w.logger.Debug("блок %s в %v разрушен", kind, pos)
	return true
}

// EntityAt возвращает индекс сущности, занимающей клетку
func (w *World) EntityAt(pos vec.Vec2) (int, bool) {
	return w.entities.EntityAt(pos)
}

// Walkable реализует physics.Occupancy
func (w *World) Walkable(pos vec.Vec2) bool { return w.TileAt(pos).IsWalkable() }

// HasBlock реализует physics.Occupancy
func (w *World) HasBlock(pos vec.Vec2) bool { return w.BlockAt(pos) != nil }

// Occupied реализует physics.Occupancy
func (w *World) Occupied(pos vec.Vec2) bool {
	_, ok := w.entities.EntityAt(pos)
	return ok
}

// IsAvailable: клетка не занята сущностью или блоком и не является водой
func (w *World) IsAvailable(pos vec.Vec2) bool {
	return physics.CanMoveToPosition(pos, w)
}

// Spawn добавляет сущность в мир
func (w *World) Spawn(e entity.Entity) int {
	return w.entities.Spawn(e)
}

// Entity возвращает сущность по индексу
func (w *World) Entity(i int) entity.Entity {
	return w.entities.Get(i)
}

// HurtEntity наносит урон сущности по индексу
func (w *World) HurtEntity(i int, amount uint8) {
	w.entities.Hurt(i, amount)
}

// UpdateChunks подгружает чанки вокруг игрока
func (w *World) UpdateChunks(player, halfExtent vec.Vec2) {
	w.chunks.Update(player, halfExtent)
}

// Tick выполняет один шаг симуляции сущностей. Сущности в незагруженных
// чанках удаляются в конце тика.
func (w *World) Tick(player entity.Target) {
	w.ticks++
	w.entities.Update(player, w)

	if w.chunks.LoadedCount() == 0 {
		return
	}
	if removed := w.entities.RemoveWhere(func(e entity.Entity) bool {
		_, loaded := w.chunks.Chunk(e.Position().ToChunkCoords())
		return !loaded
	}); removed > 0 {
		w.logger.Debug("тик %d: %d сущностей ушли за пределы мира", w.ticks, removed)
	}
}

// CanPlace: клетка лежит в загруженном чанке и доступна. Незагруженные
// клетки для TileAt выглядят травой, поэтому размещать в них нельзя.
func (w *World) CanPlace(pos vec.Vec2) bool {
	return physics.CanMoveToPosition(pos, loadedOnly{w})
}

// NearestAvailable ищет ближайшую клетку вокруг from, пригодную для
// размещения; клетки незагруженных чанков пропускаются
func (w *World) NearestAvailable(from vec.Vec2, radius int) (vec.Vec2, bool) {
	return physics.NearestFree(from, radius, loadedOnly{w})
}

// loadedOnly считает клетки незагруженных чанков непроходимыми
type loadedOnly struct {
	*World
}

func (l loadedOnly) Walkable(pos vec.Vec2) bool {
	cell, ok := l.chunks.Cell(pos)
	return ok && cell.Terrain.IsWalkable()
}
