package util

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSamplerDeterministic(t *testing.T) {
	a := NewSampler(42, DefaultNoiseParams())
	b := NewSampler(42, DefaultNoiseParams())

	for x := -20; x < 20; x += 3 {
		for y := -20; y < 20; y += 7 {
			assert.Equal(t, a.Sample(float64(x), float64(y)), b.Sample(float64(x), float64(y)))
		}
	}
}

func TestSamplerSeedChangesTerrain(t *testing.T) {
	a := NewSampler(1, DefaultNoiseParams())
	b := NewSampler(2, DefaultNoiseParams())

	differs := false
	for x := 0; x < 64 && !differs; x++ {
		if a.Sample(float64(x), 3) != b.Sample(float64(x), 3) {
			differs = true
		}
	}
	assert.True(t, differs, "разные сиды должны давать разный ландшафт")
}

func TestSamplerConcurrentReads(t *testing.T) {
	s := NewSampler(7, DefaultNoiseParams())
	want := s.Sample(11, -5)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got := s.Sample(11, -5); got != want {
					t.Errorf("ожидалось %v, получено %v", want, got)
					return
				}
			}
		}()
	}
	wg.Wait()
}
