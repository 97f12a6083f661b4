package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/annel0/tilecraft/internal/config"
	"github.com/annel0/tilecraft/internal/logging"
	"github.com/annel0/tilecraft/internal/metrics"
	"github.com/annel0/tilecraft/internal/player"
	"github.com/annel0/tilecraft/internal/vec"
	"github.com/annel0/tilecraft/internal/world"
)

// ErrPlayerDead возвращается из Run, когда игрок погиб
var ErrPlayerDead = errors.New("игрок погиб")

const commandBuffer = 64

// Game - единственный владелец мира. Все изменения происходят в горутине
// Run: команды применяются по мере поступления, мир обновляется по тикеру.
type Game struct {
	SessionID uuid.UUID

	generator world.Generator
	world     *world.World
	player    *player.Player
	spawner   world.Spawner
	half      vec.Vec2
	interval  time.Duration

	commands chan Command
	events   chan Event

	sim         *metrics.Simulation
	statusEvery uint64
	logger      *logging.Logger
}

// Option настраивает игру
type Option func(*Game)

// WithMetrics подключает сборщик метрик симуляции
func WithMetrics(sim *metrics.Simulation) Option {
	return func(g *Game) { g.sim = sim }
}

// WithGenerator подменяет генератор чанков из конфигурации
func WithGenerator(gen world.Generator) Option {
	return func(g *Game) { g.generator = gen }
}

// New создаёт мир и ставит игрока на ближайшую к началу координат сушу
func New(cfg *config.Config, opts ...Option) (*Game, error) {
	g := &Game{
		SessionID: uuid.New(),
		spawner: world.Spawner{
			Chance:       cfg.Simulation.SpawnChance,
			MaxCreatures: cfg.Simulation.MaxCreatures,
		},
		half:        vec.Vec2{X: cfg.World.View.HalfWidth, Y: cfg.World.View.HalfHeight},
		interval:    time.Duration(cfg.Simulation.TickMillis) * time.Millisecond,
		commands:    make(chan Command, commandBuffer),
		events:      make(chan Event, commandBuffer),
		statusEvery: uint64(max(cfg.Metrics.StatusEveryTicks, 0)),
		logger:      logging.GetGameLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.generator == nil {
		gen, err := NewGenerator(cfg.World)
		if err != nil {
			return nil, err
		}
		g.generator = gen
	}

	worldOpts := world.Options{UnusedChunkLimit: cfg.World.UnusedChunkLimit, Seed: cfg.World.Seed}
	if g.sim != nil {
		worldOpts.Observer = g.sim
	}
	w, err := world.New(g.generator, worldOpts)
	if err != nil {
		return nil, fmt.Errorf("создание мира: %w", err)
	}
	g.world = w

	// поиск старта идёт только по загруженным клеткам
	radius := cfg.Simulation.PlayerStartRadius
	w.UpdateChunks(vec.Vec2{}, vec.Vec2{X: max(g.half.X, radius), Y: max(g.half.Y, radius)})
	start, ok := w.NearestAvailable(vec.Vec2{}, radius)
	if !ok {
		return nil, fmt.Errorf("нет суши в радиусе %d от начала координат", radius)
	}
	w.Chunks().SetOffset(start)
	w.UpdateChunks(start, g.half)
	g.player = player.New(start)

	g.logger.Info("🌍 Сессия %s: игрок в %v, загружено чанков: %d", g.SessionID, start, w.Chunks().LoadedCount())
	return g, nil
}

// World возвращает мир только для чтения (отрисовка, тесты)
func (g *Game) World() *world.World { return g.world }

// Player возвращает игрока
func (g *Game) Player() *player.Player { return g.player }

// Commands возвращает канал ввода
func (g *Game) Commands() chan<- Command { return g.commands }

// Events возвращает канал сообщений для интерфейса
func (g *Game) Events() <-chan Event { return g.events }

// Run крутит игровой цикл до отмены контекста, команды Quit или гибели
// игрока. Должен вызываться из одной горутины.
func (g *Game) Run(ctx context.Context) error {
	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			g.logger.Info("🛑 Сессия %s остановлена после %d тиков", g.SessionID, g.world.Ticks())
			return nil
		case cmd := <-g.commands:
			if cmd.Kind == CmdQuit {
				g.logger.Info("👋 Выход по команде после %d тиков", g.world.Ticks())
				return nil
			}
			g.Handle(cmd)
		case <-ticker.C:
			if err := g.Update(); err != nil {
				return err
			}
		}
	}
}

// Handle применяет команду немедленно, между тиками
func (g *Game) Handle(cmd Command) {
	switch cmd.Kind {
	case CmdMove:
		g.player.Face(cmd.Dir)
	case CmdTurn:
		g.player.Turn(cmd.Dir)
	case CmdInteract:
		res := g.player.Interact(g.world)
		detail := res.Target.String()
		switch {
		case res.Outcome == player.Collected || res.Outcome == player.IncompatibleTool:
			detail = res.Block.String()
		case res.Spawned != nil:
			detail = res.Spawned.Kind().String()
		}
		g.emit(res.Outcome.String(), detail)
	case CmdNextItem:
		g.player.NextItem()
		g.emit("equipped", g.player.Equipped().Kind.String())
	case CmdEquip:
		if g.player.Equip(cmd.Index) {
			g.emit("equipped", g.player.Equipped().Kind.String())
		}
	case CmdCraft:
		if err := g.player.Craft(cmd.Item); err != nil {
			g.emit("craft_failed", cmd.Item.String())
			return
		}
		g.emit("crafted", cmd.Item.String())
	}
}

// Update выполняет один тик: шаг игрока, подгрузка чанков, появление
// существ, тик сущностей.
func (g *Game) Update() error {
	started := time.Now()

	g.player.Tick(g.world)
	g.world.UpdateChunks(g.player.Position(), g.half)
	if e, ok := g.spawner.Update(g.world, g.player.Position(), g.half); ok {
		g.emit("spawned", e.Kind().String())
	}
	g.world.Tick(g.player)

	if g.sim != nil {
		g.sim.ObserveTick(time.Since(started))
		g.sim.Observe(g.Snapshot())
	}
	if g.statusEvery > 0 && g.world.Ticks()%g.statusEvery == 0 {
		s := g.Snapshot()
		g.logger.Info("📊 тик %d: жизнь %d, сущностей %d, чанков %d/%d",
			g.world.Ticks(), s.PlayerLife, s.EntitiesActive, s.ChunksLoaded, s.ChunksUnused)
	}

	if g.player.IsDead() {
		g.emit("died", "")
		g.logger.Warn("💀 Игрок погиб на тике %d", g.world.Ticks())
		return ErrPlayerDead
	}
	return nil
}

// Snapshot возвращает текущие показатели мира
func (g *Game) Snapshot() metrics.Snapshot {
	return metrics.Snapshot{
		ChunksLoaded:   g.world.Chunks().LoadedCount(),
		ChunksUnused:   g.world.Chunks().UnusedCount(),
		EntitiesActive: g.world.Entities().Len(),
		PlayerLife:     g.player.Life(),
	}
}

// emit отправляет событие, не блокируясь на медленном читателе
func (g *Game) emit(code, detail string) {
	select {
	case g.events <- Event{Tick: g.world.Ticks(), Code: code, Detail: detail}:
	default:
		g.logger.Trace("событие %s отброшено: очередь полна", code)
	}
}
