package world

import (
	"github.com/annel0/tilecraft/internal/world/block"
	"github.com/annel0/tilecraft/internal/world/entity"
)

// Observer получает события мира; реализуется сборщиком метрик
type Observer interface {
	entity.Observer

	ChunkGenerated()
	ChunkReclaimed()
	ChunkUnloaded()
	ChunkEvicted()
	BlockDestroyed(kind block.Kind)
}

// NopObserver игнорирует все события
type NopObserver struct{}

func (NopObserver) EntitySpawned(entity.Kind) {}
func (NopObserver) EntityRemoved(entity.Kind) {}
func (NopObserver) ChunkGenerated()           {}
func (NopObserver) ChunkReclaimed()           {}
func (NopObserver) ChunkUnloaded()            {}
func (NopObserver) ChunkEvicted()             {}
func (NopObserver) BlockDestroyed(block.Kind) {}
