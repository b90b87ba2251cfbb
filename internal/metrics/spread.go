package metrics

import (
	"math"

	"github.com/san-kum/orbitrace/internal/race"
)

// Spread is the mean leader-to-last progress gap, in radians.
type Spread struct {
	name    string
	sum     float64
	samples int
}

func NewSpread() *Spread {
	return &Spread{name: "mean_spread"}
}

func (s *Spread) Name() string { return s.name }

func (s *Spread) OnTick(snap race.Snapshot) {
	s.sum += snap.Spread()
	s.samples++
}

func (s *Spread) OnFinish(race.Snapshot) {}

func (s *Spread) Value() float64 {
	if s.samples == 0 {
		return 0
	}
	return s.sum / float64(s.samples)
}

func (s *Spread) Reset() {
	s.sum = 0
	s.samples = 0
}

// MaxSpread is the widest gap seen during the race.
type MaxSpread struct {
	name string
	max  float64
}

func NewMaxSpread() *MaxSpread {
	return &MaxSpread{name: "max_spread"}
}

func (m *MaxSpread) Name() string { return m.name }

func (m *MaxSpread) OnTick(snap race.Snapshot) {
	m.max = math.Max(m.max, snap.Spread())
}

func (m *MaxSpread) OnFinish(race.Snapshot) {}
func (m *MaxSpread) Value() float64         { return m.max }
func (m *MaxSpread) Reset()                 { m.max = 0 }
