package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации песочницы.
type Config struct {
	World      WorldConfig      `yaml:"world"`
	Simulation SimulationConfig `yaml:"simulation"`
	Logging    LoggingConfig    `yaml:"logging"`
	Metrics    MetricsConfig    `yaml:"metrics"`
}

type WorldConfig struct {
	Seed             int64            `yaml:"seed"`
	Generator        string           `yaml:"generator"` // perlin | flat
	Noise            NoiseConfig      `yaml:"noise"`
	Bands            BandsConfig      `yaml:"bands"`
	Decoration       DecorationConfig `yaml:"decoration"`
	UnusedChunkLimit int              `yaml:"unused_chunk_limit"`
	View             ViewConfig       `yaml:"view"`
}

type NoiseConfig struct {
	Alpha     float64 `yaml:"alpha"`
	Beta      float64 `yaml:"beta"`
	Octaves   int32   `yaml:"octaves"`
	Scale     float64 `yaml:"scale"`
	Amplitude float64 `yaml:"amplitude"`
	Bias      float64 `yaml:"bias"`
}

// BandsConfig пороги высоты шума; ниже Water получается глубокая вода.
type BandsConfig struct {
	Rock       float64 `yaml:"rock"`
	Stone      float64 `yaml:"stone"`
	Decoration float64 `yaml:"decoration"`
	Grass      float64 `yaml:"grass"`
	Water      float64 `yaml:"water"`
}

// DecorationConfig вероятности в виде "1 из N"; 0 отключает правило.
type DecorationConfig struct {
	Tree      int `yaml:"tree"`
	Stones    int `yaml:"stones"`
	Sticks    int `yaml:"sticks"`
	GrassTuft int `yaml:"grass_tuft"`
	CoalOre   int `yaml:"coal_ore"`
	IronOre   int `yaml:"iron_ore"`
	GoldOre   int `yaml:"gold_ore"`
}

// ViewConfig половинные размеры окна вокруг игрока в клетках.
type ViewConfig struct {
	HalfWidth  int `yaml:"half_width"`
	HalfHeight int `yaml:"half_height"`
}

type SimulationConfig struct {
	TickMillis        int     `yaml:"tick_ms"`
	SpawnChance       float64 `yaml:"spawn_chance"`
	MaxCreatures      int     `yaml:"max_creatures"`
	PlayerStartRadius int     `yaml:"player_start_radius"`
}

type LoggingConfig struct {
	Level     string `yaml:"level"`
	FileLevel string `yaml:"file_level"`
	Dir       string `yaml:"dir"`
}

type MetricsConfig struct {
	Port             int `yaml:"port"`
	StatusEveryTicks int `yaml:"status_every_ticks"`
}

// GetPort возвращает порт метрик с поддержкой fallback значений
func (m *MetricsConfig) GetPort() int {
	return getPortWithEnvFallback(m.Port, "SANDBOX_METRICS_PORT", 2112)
}

// getPortWithEnvFallback возвращает порт с приоритетом: config -> env -> default
func getPortWithEnvFallback(configPort int, envVar string, defaultPort int) int {
	if configPort > 0 {
		return configPort
	}

	if envVal := os.Getenv(envVar); envVal != "" {
		if port, err := strconv.Atoi(envVal); err == nil && port > 0 {
			return port
		}
	}

	return defaultPort
}

// Default возвращает конфигурацию, совпадающую с классическим миром
func Default() *Config {
	return &Config{
		World: WorldConfig{
			Seed:      0,
			Generator: "perlin",
			Noise: NoiseConfig{
				Alpha:     2,
				Beta:      2,
				Octaves:   3,
				Scale:     0.043,
				Amplitude: 100,
				Bias:      5,
			},
			Bands: BandsConfig{
				Rock:       40,
				Stone:      30,
				Decoration: 10,
				Grass:      0,
				Water:      -25,
			},
			Decoration: DecorationConfig{
				Tree:      15,
				Stones:    100,
				Sticks:    100,
				GrassTuft: 30,
				CoalOre:   20,
				IronOre:   40,
				GoldOre:   80,
			},
			UnusedChunkLimit: 1024,
			View:             ViewConfig{HalfWidth: 40, HalfHeight: 20},
		},
		Simulation: SimulationConfig{
			TickMillis:        50,
			SpawnChance:       0.02,
			MaxCreatures:      24,
			PlayerStartRadius: 64,
		},
		Logging: LoggingConfig{
			Level:     "info",
			FileLevel: "debug",
		},
		Metrics: MetricsConfig{
			StatusEveryTicks: 200,
		},
	}
}

// Validate проверяет согласованность значений
func (c *Config) Validate() error {
	var errs []error

	switch c.World.Generator {
	case "perlin", "flat":
	default:
		errs = append(errs, fmt.Errorf("world.generator: неизвестный генератор %q", c.World.Generator))
	}
	b := c.World.Bands
	if !(b.Rock >= b.Stone && b.Stone >= b.Decoration && b.Decoration >= b.Grass && b.Grass >= b.Water) {
		errs = append(errs, errors.New("world.bands: пороги должны убывать rock >= stone >= decoration >= grass >= water"))
	}
	if c.World.UnusedChunkLimit <= 0 {
		errs = append(errs, errors.New("world.unused_chunk_limit должен быть > 0"))
	}
	if c.World.View.HalfWidth <= 0 || c.World.View.HalfHeight <= 0 {
		errs = append(errs, errors.New("world.view: размеры окна должны быть > 0"))
	}
	if c.Simulation.TickMillis <= 0 {
		errs = append(errs, errors.New("simulation.tick_ms должен быть > 0"))
	}
	if c.Simulation.SpawnChance < 0 || c.Simulation.SpawnChance > 1 {
		errs = append(errs, errors.New("simulation.spawn_chance должен быть в [0, 1]"))
	}
	if c.Simulation.MaxCreatures < 0 {
		errs = append(errs, errors.New("simulation.max_creatures не может быть отрицательным"))
	}
	return errors.Join(errs...)
}

// Load читает YAML файл конфигурации поверх значений по умолчанию.
// Если path == "", пытается прочитать путь из ENV SANDBOX_CONFIG;
// без файла возвращает Default().
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("SANDBOX_CONFIG")
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("чтение конфигурации %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("разбор конфигурации %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
