package entity

import "github.com/annel0/tilecraft/internal/vec"

// Action - результат OnAction, который движок применяет сразу
type Action interface {
	isAction()
}

// Move перемещает сущность в клетку To
type Move struct {
	To vec.Vec2
}

// Attack наносит Damage сущности с индексом Target
type Attack struct {
	Target int
	Damage uint8
}

// Spawn добавляет новые сущности; они обрабатываются со следующего тика
type Spawn struct {
	Entities []Entity
}

// Batch применяет несколько действий по порядку
type Batch []Action

// Nothing - сущность ничего не делает
type Nothing struct{}

func (Move) isAction()    {}
func (Attack) isAction()  {}
func (Spawn) isAction()   {}
func (Batch) isAction()   {}
func (Nothing) isAction() {}
