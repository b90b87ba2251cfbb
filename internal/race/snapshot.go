package race

import "github.com/san-kum/orbitrace/internal/orbit"

type BodyState struct {
	orbit.Body
	Progress float64
	Leader   bool
}

// Snapshot is a read-only copy of the race for renderers.
type Snapshot struct {
	Phase  Phase
	Tick   int
	Bodies []BodyState
	Leader int
	Winner int
}

func (r *Race) Snapshot() Snapshot {
	s := Snapshot{
		Phase:  r.phase,
		Tick:   r.tick,
		Bodies: make([]BodyState, len(r.bodies)),
		Leader: -1,
		Winner: -1,
	}
	if r.phase == Finished {
		s.Winner = r.winner
	}

	best := 0.0
	for i, b := range r.bodies {
		p := b.Progress()
		s.Bodies[i] = BodyState{Body: b, Progress: p}
		if s.Leader == -1 || p > best {
			s.Leader, best = i, p
		}
	}
	for i := range s.Bodies {
		s.Bodies[i].Leader = s.Bodies[i].Progress == best
	}
	return s
}

// Spread is the progress gap between the leader and the last body.
func (s Snapshot) Spread() float64 {
	if len(s.Bodies) == 0 {
		return 0
	}
	lo, hi := s.Bodies[0].Progress, s.Bodies[0].Progress
	for _, b := range s.Bodies[1:] {
		if b.Progress < lo {
			lo = b.Progress
		}
		if b.Progress > hi {
			hi = b.Progress
		}
	}
	return hi - lo
}
