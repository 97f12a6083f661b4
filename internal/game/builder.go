package game

import (
	"fmt"

	"github.com/annel0/tilecraft/internal/config"
	"github.com/annel0/tilecraft/internal/util"
	"github.com/annel0/tilecraft/internal/world"
)

// NewGenerator создаёт генератор чанков по конфигурации
func NewGenerator(cfg config.WorldConfig) (world.Generator, error) {
	switch cfg.Generator {
	case "perlin", "":
		params := util.NoiseParams{
			Alpha:     cfg.Noise.Alpha,
			Beta:      cfg.Noise.Beta,
			Octaves:   cfg.Noise.Octaves,
			Scale:     cfg.Noise.Scale,
			Amplitude: cfg.Noise.Amplitude,
			Bias:      cfg.Noise.Bias,
		}
		bands := world.Bands{
			Rock:       cfg.Bands.Rock,
			Stone:      cfg.Bands.Stone,
			Decoration: cfg.Bands.Decoration,
			Grass:      cfg.Bands.Grass,
			Water:      cfg.Bands.Water,
		}
		decoration := world.Decoration{
			Tree:      cfg.Decoration.Tree,
			Stones:    cfg.Decoration.Stones,
			Sticks:    cfg.Decoration.Sticks,
			GrassTuft: cfg.Decoration.GrassTuft,
			CoalOre:   cfg.Decoration.CoalOre,
			IronOre:   cfg.Decoration.IronOre,
			GoldOre:   cfg.Decoration.GoldOre,
		}
		return world.NewPerlinGenerator(util.NewSampler(cfg.Seed, params), bands, decoration), nil
	case "flat":
		return &world.FlatGenerator{Terrain: world.Grass, Seed: cfg.Seed}, nil
	default:
		return nil, fmt.Errorf("неизвестный генератор %q", cfg.Generator)
	}
}
