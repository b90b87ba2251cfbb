// Package balance keeps an orbit race close: a periodic random nudge to every
// racer's speed and a rubber band pulling trailing racers toward the leader.
package balance

import "github.com/san-kum/orbitrace/internal/orbit"

// Source yields uniform samples in [0, 1). *math/rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// Uniform samples a value in [lo, hi).
func Uniform(src Source, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}

// LeaderProgress returns the largest progress among bodies, or 0 for none.
func LeaderProgress(bodies []orbit.Body) float64 {
	if len(bodies) == 0 {
		return 0
	}
	best := bodies[0].Progress()
	for i := 1; i < len(bodies); i++ {
		if p := bodies[i].Progress(); p > best {
			best = p
		}
	}
	return best
}
