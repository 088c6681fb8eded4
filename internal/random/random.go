// Package random provides the injectable randomness used for shuffling the
// player pool, breaking captain ties and flipping the pick-order coin.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_source.go github.com/KirkDiggler/mixladder/internal/random Source

// Source is a uniform randomness source
type Source interface {
	// Intn returns a uniform integer in [0, n)
	Intn(n int) int

	// Float64 returns a uniform float in [0, 1)
	Float64() float64

	// Shuffle permutes n elements uniformly using swap
	Shuffle(n int, swap func(i, j int))

	// CoinFlip returns true or false with equal probability
	CoinFlip() bool
}

// Config for the random source
type Config struct {
	// Optional seed; zero draws a seed from crypto/rand
	Seed int64
}

// Rand is a seedable Source safe for concurrent use
type Rand struct {
	mu     sync.Mutex
	random *rand.Rand
	seed   int64
}

// New creates a new random source
func New(cfg *Config) *Rand {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = newSeed()
	}

	return &Rand{
		random: rand.New(rand.NewSource(seed)),
		seed:   seed,
	}
}

// Seed returns the seed the source was created with so a run can be replayed
func (r *Rand) Seed() int64 {
	return r.seed
}

// Intn returns a uniform integer in [0, n); n < 1 yields 0
func (r *Rand) Intn(n int) int {
	if n < 1 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Intn(n)
}

// Float64 returns a uniform float in [0, 1)
func (r *Rand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Float64()
}

// Shuffle permutes n elements uniformly
func (r *Rand) Shuffle(n int, swap func(i, j int)) {
	if n < 2 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.random.Shuffle(n, swap)
}

// CoinFlip returns a fair coin flip
func (r *Rand) CoinFlip() bool {
	return r.Float64() < 0.5
}

func newSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}
