package service

import (
	"math/rand/v2"
	"sync"
)

// Rand is the randomness the catalog and analytics need. Tests pass a
// seeded generator to get repeatable output.
type Rand interface {
	IntN(n int) int
	Float64() float64
	Perm(n int) []int
}

func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// LockedRand serializes access to a Rand that is not safe for concurrent use.
type LockedRand struct {
	mu  sync.Mutex
	rng Rand
}

func NewLockedRand(rng Rand) *LockedRand {
	return &LockedRand{rng: rng}
}

func (r *LockedRand) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.IntN(n)
}

func (r *LockedRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Float64()
}

func (r *LockedRand) Perm(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Perm(n)
}
