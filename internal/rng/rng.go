package rng

import (
	"math/rand"
	"time"
)

// Source provides random number generation for challenge problems
type Source struct {
	random *rand.Rand
}

// Config for the random source
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new random source
func New(cfg *Config) *Source {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &Source{
		random: random,
	}
}

// IntBetween returns a random integer in the inclusive range [min, max]
func (s *Source) IntBetween(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return s.random.Intn(max-min+1) + min
}
