package balance

import "github.com/san-kum/orbitrace/internal/orbit"

// RubberBand speeds up each body in proportion to how far it trails the
// leader. The leader itself gets no boost; everyone is clamped to [Min, Max].
type RubberBand struct {
	Strength float64
	Min, Max float64
}

func (r *RubberBand) Apply(bodies []orbit.Body) {
	leader := LeaderProgress(bodies)
	for i := range bodies {
		b := &bodies[i]
		b.Speed = orbit.Clamp(b.Speed+(leader-b.Progress())*r.Strength, r.Min, r.Max)
	}
}
