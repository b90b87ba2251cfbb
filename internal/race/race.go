package race

import (
	"github.com/san-kum/orbitrace/internal/balance"
	"github.com/san-kum/orbitrace/internal/orbit"
)

// Observer is notified after every tick that advanced the race, and once
// more when a winner is locked in.
type Observer interface {
	OnTick(s Snapshot)
	OnFinish(s Snapshot)
}

type Race struct {
	params    Params
	bodies    []orbit.Body
	phase     Phase
	tick      int
	winner    int
	perturber balance.Perturber
	band      balance.RubberBand
	observers []Observer
}

func New(p Params, bodies []orbit.Body, src balance.Source) *Race {
	owned := make([]orbit.Body, len(bodies))
	copy(owned, bodies)
	return &Race{
		params: p,
		bodies: owned,
		phase:  Idle,
		winner: -1,
		perturber: balance.Perturber{
			Interval: p.SpeedChangeInterval,
			Range:    p.PerturbRange,
			Min:      p.MinSpeed,
			Max:      p.MaxSpeed,
			Src:      src,
		},
		band: balance.RubberBand{
			Strength: p.RubberBandStrength,
			Min:      p.MinSpeed,
			Max:      p.MaxSpeed,
		},
		observers: make([]Observer, 0),
	}
}

func (r *Race) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Seed swaps the random source used for speed perturbation.
func (r *Race) Seed(src balance.Source) { r.perturber.Src = src }

func (r *Race) Params() Params { return r.params }
func (r *Race) Phase() Phase   { return r.phase }
func (r *Race) TickCount() int { return r.tick }
func (r *Race) Len() int       { return len(r.bodies) }

// Winner returns the winning index once the race is finished.
func (r *Race) Winner() (int, bool) {
	if r.phase != Finished {
		return -1, false
	}
	return r.winner, true
}

// Start moves an idle race to Running. A finished race has to be reset first.
func (r *Race) Start() bool {
	if r.phase != Idle {
		return false
	}
	r.phase = Running
	return true
}

// Tick advances a running race by one frame and reports whether it moved.
func (r *Race) Tick() bool {
	if r.phase != Running {
		return false
	}
	if r.checkWinner() {
		return false
	}

	r.tick++
	if r.perturber.Due(r.tick) {
		r.perturber.Apply(r.bodies)
	}
	r.band.Apply(r.bodies)
	for i := range r.bodies {
		r.bodies[i].Advance()
	}

	finished := r.checkWinner()
	if len(r.observers) > 0 {
		snap := r.Snapshot()
		for _, o := range r.observers {
			o.OnTick(snap)
		}
		if finished {
			for _, o := range r.observers {
				o.OnFinish(snap)
			}
		}
	}
	return true
}

// checkWinner locks in the first body, in index order, that reached the lap
// target.
func (r *Race) checkWinner() bool {
	for i := range r.bodies {
		if r.bodies[i].Orbits >= r.params.LapsToWin {
			r.phase = Finished
			r.winner = i
			return true
		}
	}
	return false
}

// Reset returns a running or finished race to Idle with every body back on
// the start line. Resetting an idle race does nothing.
func (r *Race) Reset() bool {
	if r.phase == Idle {
		return false
	}
	r.phase = Idle
	r.tick = 0
	r.winner = -1
	for i := range r.bodies {
		r.bodies[i].Reset()
	}
	return true
}

// Boost adds delta to a body's speed without clamping. The next balancing
// pass pulls it back inside the speed bounds.
func (r *Race) Boost(i int, delta float64) error {
	if r.phase != Running {
		return &CommandError{Command: "boost", Body: i, Wrapped: ErrNotRunning}
	}
	if i < 0 || i >= len(r.bodies) {
		return &CommandError{Command: "boost", Body: i, Wrapped: ErrInvalidBody}
	}
	r.bodies[i].Speed += delta
	return nil
}

func (r *Race) BoostDefault(i int) error {
	return r.Boost(i, r.params.BoostDelta)
}
