// internal/utils/prng.go
package utils

import (
	"math"
	"math/rand"
	"time"

	"go-reef-defense/pkg/geom"
)

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed actually in use.
func (s *PRNGService) Seed() int64 { return s.seed }

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// IntRange returns an integer in [lo, hi], both ends inclusive.
func (s *PRNGService) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}

// FloatRange returns a float in [lo, hi).
func (s *PRNGService) FloatRange(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// Choose returns an index in [0, n), or -1 when n is zero.
func (s *PRNGService) Choose(n int) int {
	if n <= 0 {
		return -1
	}
	return s.rng.Intn(n)
}

// UnitVector returns a random direction of length 1.
func (s *PRNGService) UnitVector() geom.Vec2 {
	return geom.FromAngle(s.rng.Float64() * 2 * math.Pi)
}
