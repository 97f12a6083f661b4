package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/annel0/tilecraft/internal/config"
	"github.com/annel0/tilecraft/internal/game"
	"github.com/annel0/tilecraft/internal/logging"
	"github.com/annel0/tilecraft/internal/metrics"
)

// options - флаги командной строки
type options struct {
	configPath string
	duration   time.Duration
	autopilot  bool
	noMetrics  bool
	seed       int64
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "Путь к YAML конфигурации (по умолчанию $SANDBOX_CONFIG)")
	flag.DurationVar(&opts.duration, "duration", 0, "Длительность сессии; 0 — до сигнала")
	flag.BoolVar(&opts.autopilot, "autopilot", true, "Управлять игроком случайными командами")
	flag.BoolVar(&opts.noMetrics, "no-metrics", false, "Не поднимать HTTP эндпоинт /metrics")
	flag.Int64Var(&opts.seed, "seed", 0, "Сид мира; 0 — из конфигурации")
	flag.Parse()

	// run закрывает файлы логов до выхода, поэтому ошибка печатается здесь
	if err := run(opts); err != nil {
		log.Printf("❌ %v", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("загрузка конфигурации: %w", err)
	}
	if opts.seed != 0 {
		cfg.World.Seed = opts.seed
	}

	logging.Configure(cfg.Logging.Dir, logging.ParseLevel(cfg.Logging.Level), logging.ParseLevel(cfg.Logging.FileLevel))
	if err := logging.InitDefaultLogger("sandbox"); err != nil {
		return fmt.Errorf("инициализация логирования: %w", err)
	}
	defer logging.CloseDefaultLogger()
	defer logging.GetLoggerManager().CloseAll()

	logging.Info("🎮 Запуск песочницы: генератор=%s, сид=%d, тик=%dмс",
		cfg.World.Generator, cfg.World.Seed, cfg.Simulation.TickMillis)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	sim := metrics.NewSimulation(registry)

	g, err := game.New(cfg, game.WithMetrics(sim))
	if err != nil {
		logging.Error("❌ Ошибка создания мира: %v", err)
		return fmt.Errorf("создание мира: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if opts.duration > 0 {
		ctx, cancel = context.WithTimeout(ctx, opts.duration)
		defer cancel()
	}

	if !opts.noMetrics {
		exporter := metrics.NewExporter(cfg.Metrics.GetPort(), registry)
		exporter.Start()
		defer func() {
			shutdownCtx, stop := context.WithTimeout(context.Background(), 2*time.Second)
			defer stop()
			if err := exporter.Shutdown(shutdownCtx); err != nil {
				logging.Error("Ошибка остановки эндпоинта метрик: %v", err)
			}
		}()

		if sampler, err := metrics.NewProcessSampler(registry); err != nil {
			logging.Warn("Метрики процесса недоступны: %v", err)
		} else {
			go sampler.Run(ctx, 5*time.Second)
		}
	}

	if opts.autopilot {
		go newAutopilot(cfg.World.Seed).Drive(ctx, g.Commands(), 4*time.Duration(cfg.Simulation.TickMillis)*time.Millisecond)
	}
	go logEvents(ctx, g.Events())

	// Канал для получения сигналов ОС
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigCh:
			logging.Info("📡 Получен сигнал %v, завершение работы...", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	runErr := g.Run(ctx)
	if runErr != nil && !errors.Is(runErr, game.ErrPlayerDead) {
		logging.Error("❌ Игровой цикл завершился с ошибкой: %v", runErr)
	} else {
		runErr = nil
	}

	s := g.Snapshot()
	logging.Info("👋 Сессия %s завершена: тиков %d, жизнь %d, сущностей %d, чанков %d/%d",
		g.SessionID, g.World().Ticks(), s.PlayerLife, s.EntitiesActive, s.ChunksLoaded, s.ChunksUnused)
	return runErr
}

// logEvents пишет сообщения игры в лог, заменяя интерфейс
func logEvents(ctx context.Context, events <-chan game.Event) {
	for {
		select {
		case e := <-events:
			logging.Debug("тик %d: %s %s", e.Tick, e.Code, e.Detail)
		case <-ctx.Done():
			return
		}
	}
}
