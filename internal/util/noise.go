package util

import (
	"github.com/aquilax/go-perlin"
)

// NoiseParams описывает параметры когерентного шума
type NoiseParams struct {
	Alpha     float64 // Сглаживание шума
	Beta      float64 // Частота шума
	Octaves   int32   // Количество октав
	Scale     float64 // Масштаб мировых координат перед выборкой
	Amplitude float64 // Множитель результата
	Bias      float64 // Смещение результата
}

// DefaultNoiseParams возвращает параметры, под которые подобраны пороги ландшафта
func DefaultNoiseParams() NoiseParams {
	return NoiseParams{
		Alpha:     2.0,
		Beta:      2.0,
		Octaves:   3,
		Scale:     0.043,
		Amplitude: 100.0,
		Bias:      5.0,
	}
}

// Sampler - детерминированный 2D шум Перлина с фиксированным сидом.
// После создания только читается, поэтому безопасен для конкурентных вызовов.
type Sampler struct {
	seed   int64
	params NoiseParams
	noise  *perlin.Perlin
}

// NewSampler создаёт генератор шума для указанного сида
func NewSampler(seed int64, params NoiseParams) *Sampler {
	if params.Scale == 0 {
		params.Scale = DefaultNoiseParams().Scale
	}
	if params.Octaves <= 0 {
		params.Octaves = DefaultNoiseParams().Octaves
	}
	return &Sampler{
		seed:   seed,
		params: params,
		noise:  perlin.NewPerlin(params.Alpha, params.Beta, params.Octaves, seed),
	}
}

// Seed возвращает сид генератора
func (s *Sampler) Seed() int64 {
	return s.seed
}

// Sample возвращает значение шума в мировых координатах (x, y).
// Диапазон примерно [-Amplitude, Amplitude] + Bias.
func (s *Sampler) Sample(x, y float64) float64 {
	n := s.noise.Noise2D(x*s.params.Scale, y*s.params.Scale)
	return n*s.params.Amplitude + s.params.Bias
}
