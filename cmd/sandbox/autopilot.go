package main

import (
	"context"
	"math/rand"
	"time"

	"github.com/annel0/tilecraft/internal/game"
	"github.com/annel0/tilecraft/internal/inventory"
	"github.com/annel0/tilecraft/internal/vec"
)

// autopilot заменяет клавиатуру: бродит, собирает, крафтит и дерётся
type autopilot struct {
	rng *rand.Rand
	dir vec.Direction
}

func newAutopilot(seed int64) *autopilot {
	return &autopilot{rng: rand.New(rand.NewSource(seed)), dir: vec.Right}
}

// next выбирает следующую команду
func (a *autopilot) next() game.Command {
	switch roll := a.rng.Intn(100); {
	case roll < 10:
		a.dir = vec.Directions[a.rng.Intn(len(vec.Directions))]
		return game.Turn(a.dir)
	case roll < 55:
		return game.Move(a.dir)
	case roll < 85:
		return game.Interact()
	case roll < 93:
		return game.NextItem()
	default:
		r := inventory.Recipes[a.rng.Intn(len(inventory.Recipes))]
		return game.Craft(r.Result.Kind)
	}
}

// Drive отправляет команды с заданным интервалом до отмены контекста
func (a *autopilot) Drive(ctx context.Context, commands chan<- game.Command, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			select {
			case commands <- a.next():
			case <-ctx.Done():
				return
			}
		case <-ctx.Done():
			return
		}
	}
}
