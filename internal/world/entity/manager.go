package entity

import (
	"github.com/annel0/tilecraft/internal/logging"
	"github.com/annel0/tilecraft/internal/vec"
)

// Observer получает уведомления о жизненном цикле сущностей
type Observer interface {
	EntitySpawned(kind Kind)
	EntityRemoved(kind Kind)
}

// Manager - арена сущностей мира. Сущности адресуются индексом в срезе;
// индексы стабильны в пределах тика, удаление происходит только в его конце.
type Manager struct {
	entities []Entity
	observer Observer
	logger   *logging.Logger
}

// NewManager создаёт пустую арену
func NewManager() *Manager {
	return &Manager{
		logger: logging.GetEntityLogger(),
	}
}

// SetObserver задаёт наблюдателя (может быть nil)
func (m *Manager) SetObserver(o Observer) {
	m.observer = o
}

// Spawn добавляет сущность в конец списка и возвращает её индекс
func (m *Manager) Spawn(e Entity) int {
	m.entities = append(m.entities, e)
	if m.observer != nil {
		m.observer.EntitySpawned(e.Kind())
	}
	m.logger.Trace("spawn %s at %v", e.Kind(), e.Position())
	return len(m.entities) - 1
}

// Len возвращает количество сущностей в списке
func (m *Manager) Len() int {
	return len(m.entities)
}

// Get возвращает сущность по индексу
func (m *Manager) Get(i int) Entity {
	return m.entities[i]
}

// All возвращает список сущностей только для чтения
func (m *Manager) All() []Entity {
	return m.entities
}

// EntityAt возвращает индекс живой сущности, занимающей клетку
func (m *Manager) EntityAt(pos vec.Vec2) (int, bool) {
	for i, e := range m.entities {
		if e.Collides() && !e.IsDead() && e.Position() == pos {
			return i, true
		}
	}
	return 0, false
}

// Count возвращает количество живых сущностей, удовлетворяющих фильтру
func (m *Manager) Count(filter func(Entity) bool) int {
	n := 0
	for _, e := range m.entities {
		if !e.IsDead() && filter(e) {
			n++
		}
	}
	return n
}

// Update выполняет один тик: для каждой живой сущности, существовавшей
// в начале тика, вычисляет действие, сразу применяет его и вызывает OnTick.
// Порождённые сущности обрабатываются со следующего тика. Мёртвые
// удаляются в конце.
func (m *Manager) Update(player Target, world WorldView) {
	n := len(m.entities)
	for i := 0; i < n; i++ {
		e := m.entities[i]
		if e.IsDead() {
			continue
		}
		m.apply(e, e.OnAction(player, world))
		e.OnTick()
	}
	m.RemoveWhere(Entity.IsDead)
}

func (m *Manager) apply(e Entity, action Action) {
	switch a := action.(type) {
	case Move:
		e.Go(a.To)
	case Attack:
		if a.Target < 0 || a.Target >= len(m.entities) {
			m.logger.Warn("%s атакует несуществующий индекс %d", e.Kind(), a.Target)
			return
		}
		m.entities[a.Target].Hurt(a.Damage)
	case Spawn:
		for _, s := range a.Entities {
			m.Spawn(s)
		}
	case Batch:
		for _, sub := range a {
			m.apply(e, sub)
		}
	case Nothing:
	}
}

// Hurt наносит урон сущности по индексу
func (m *Manager) Hurt(i int, amount uint8) {
	m.entities[i].Hurt(amount)
}

// RemoveWhere удаляет сущности, для которых pred истинно, сохраняя порядок.
// Вызывается только между тиками или в конце тика.
func (m *Manager) RemoveWhere(pred func(Entity) bool) int {
	kept := m.entities[:0]
	removed := 0
	for _, e := range m.entities {
		if pred(e) {
			removed++
			if m.observer != nil {
				m.observer.EntityRemoved(e.Kind())
			}
			continue
		}
		kept = append(kept, e)
	}
	for i := len(kept); i < len(m.entities); i++ {
		m.entities[i] = nil
	}
	m.entities = kept
	return removed
}
