package mathutil

import "math/rand/v2"

// RNG is the single random source of a run. Every roll in the simulation goes
// through it so a seed reproduces the same sequence of spawns and drops.
type RNG struct {
	r *rand.Rand
}

func NewRNG(seed uint64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Float64 returns a uniform value in [0, 1).
func (g *RNG) Float64() float64 {
	return g.r.Float64()
}

// Range returns a uniform value in [lo, hi).
func (g *RNG) Range(lo, hi float64) float64 {
	return lo + g.r.Float64()*(hi-lo)
}

// Chance returns true with probability p.
func (g *RNG) Chance(p float64) bool {
	return g.r.Float64() < p
}

// Intn returns a uniform int in [0, n).
func (g *RNG) Intn(n int) int {
	return g.r.IntN(n)
}

// Sign returns -1 or 1 with equal probability.
func (g *RNG) Sign() float64 {
	if g.r.IntN(2) == 0 {
		return -1
	}
	return 1
}

// Pick selects an index with probability proportional to its weight.
// Non-positive weights are never selected. Returns -1 if all weights are zero.
func (g *RNG) Pick(weights []float64) int {
	return PickBand(g.r.Float64(), weights)
}

// PickBand maps a uniform roll in [0, 1) onto cumulative weight bands.
func PickBand(roll float64, weights []float64) int {
	var sum float64
	for _, w := range weights {
		if w > 0 {
			sum += w
		}
	}
	if sum <= 0 {
		return -1
	}
	r := roll * sum
	last := -1
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		last = i
		if r < w {
			return i
		}
		r -= w
	}
	return last
}
