package balance

import "github.com/san-kum/orbitrace/internal/orbit"

// Perturber adds a random delta in [-Range, Range) to every speed each
// Interval ticks and clamps the result to [Min, Max].
type Perturber struct {
	Interval int
	Range    float64
	Min, Max float64
	Src      Source
}

func (p *Perturber) Due(tick int) bool {
	return p.Interval > 0 && tick%p.Interval == 0
}

func (p *Perturber) Apply(bodies []orbit.Body) {
	if p.Src == nil {
		return
	}
	for i := range bodies {
		b := &bodies[i]
		b.Speed = orbit.Clamp(b.Speed+Uniform(p.Src, -p.Range, p.Range), p.Min, p.Max)
	}
}
