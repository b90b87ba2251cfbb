package race_test

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/orbitrace/internal/orbit"
	"github.com/san-kum/orbitrace/internal/race"
)

const maxTicks = 10000

func racers() []orbit.Body {
	return []orbit.Body{
		orbit.NewBody(100, race.DefaultBaseSpeed, 20, orbit.Red),
		orbit.NewBody(150, race.DefaultBaseSpeed, 25, orbit.Blue),
		orbit.NewBody(200, race.DefaultBaseSpeed, 30, orbit.Green),
		orbit.NewBody(250, race.DefaultBaseSpeed, 35, orbit.Yellow),
	}
}

func newRace(seed int64) *race.Race {
	return race.New(race.DefaultParams(), racers(), rand.New(rand.NewSource(seed)))
}

func runToFinish(r *race.Race) []race.Snapshot {
	var history []race.Snapshot
	for i := 0; i < maxTicks && r.Tick(); i++ {
		history = append(history, r.Snapshot())
	}
	return history
}

type recorder struct {
	ticks    int
	finishes []race.Snapshot
}

func (r *recorder) OnTick(race.Snapshot)     { r.ticks++ }
func (r *recorder) OnFinish(s race.Snapshot) { r.finishes = append(r.finishes, s) }

var _ = Describe("Race", func() {
	var r *race.Race

	BeforeEach(func() {
		r = newRace(1)
	})

	Describe("a new race", func() {
		It("starts idle with every body on the start line", func() {
			s := r.Snapshot()
			Expect(s.Phase).To(Equal(race.Idle))
			Expect(s.Tick).To(BeZero())
			Expect(s.Winner).To(Equal(-1))
			Expect(s.Bodies).To(HaveLen(4))
			for _, b := range s.Bodies {
				Expect(b.Angle).To(Equal(orbit.StartAngle))
				Expect(b.Orbits).To(BeZero())
				Expect(b.Speed).To(Equal(race.DefaultBaseSpeed))
				Expect(b.Leader).To(BeTrue())
			}
			Expect(s.Leader).To(Equal(0))
		})

		It("does not advance until started", func() {
			before := r.Snapshot()
			Expect(r.Tick()).To(BeFalse())
			Expect(r.Snapshot()).To(Equal(before))
		})

		It("does not own the caller's slice", func() {
			bodies := racers()
			own := race.New(race.DefaultParams(), bodies, rand.New(rand.NewSource(1)))
			own.Start()
			own.Tick()
			Expect(bodies[0].Angle).To(Equal(orbit.StartAngle))
		})
	})

	Describe("Start", func() {
		It("moves Idle to Running", func() {
			Expect(r.Start()).To(BeTrue())
			Expect(r.Phase()).To(Equal(race.Running))
		})

		It("is a no-op while running", func() {
			r.Start()
			for i := 0; i < 25; i++ {
				r.Tick()
			}
			before := r.Snapshot()
			Expect(r.Start()).To(BeFalse())
			Expect(r.Snapshot()).To(Equal(before))
		})

		It("cannot restart a finished race", func() {
			r.Start()
			runToFinish(r)
			Expect(r.Phase()).To(Equal(race.Finished))
			Expect(r.Start()).To(BeFalse())
			Expect(r.Phase()).To(Equal(race.Finished))
		})
	})

	Describe("Tick", func() {
		BeforeEach(func() {
			r.Start()
		})

		It("counts ticks and moves every body", func() {
			Expect(r.Tick()).To(BeTrue())
			s := r.Snapshot()
			Expect(s.Tick).To(Equal(1))
			for _, b := range s.Bodies {
				Expect(b.Angle).To(BeNumerically(">", orbit.StartAngle))
			}
		})

		It("keeps speeds inside the bounds", func() {
			p := race.DefaultParams()
			for i := 0; i < 2000 && r.Tick(); i++ {
				for _, b := range r.Snapshot().Bodies {
					Expect(b.Speed).To(BeNumerically(">=", p.MinSpeed))
					Expect(b.Speed).To(BeNumerically("<=", p.MaxSpeed))
				}
			}
		})

		It("never lets orbits go backwards", func() {
			last := make([]int, r.Len())
			for _, s := range runToFinish(r) {
				for i, b := range s.Bodies {
					Expect(b.Orbits).To(BeNumerically(">=", last[i]))
					last[i] = b.Orbits
				}
			}
		})

		It("is deterministic for a fixed seed", func() {
			other := newRace(1)
			other.Start()
			Expect(runToFinish(r)).To(Equal(runToFinish(other)))
			wa, _ := r.Winner()
			wb, _ := other.Winner()
			Expect(wa).To(Equal(wb))
		})

		It("notifies observers on every tick and once on finish", func() {
			rec := &recorder{}
			r.AddObserver(rec)
			history := runToFinish(r)
			Expect(rec.ticks).To(Equal(len(history)))
			Expect(rec.finishes).To(HaveLen(1))
			Expect(rec.finishes[0].Phase).To(Equal(race.Finished))
		})
	})

	Describe("a full race", func() {
		It("finishes once the first body completes three laps", func() {
			r.Start()
			history := runToFinish(r)
			Expect(r.Phase()).To(Equal(race.Finished))

			final := history[len(history)-1]
			winner, ok := r.Winner()
			Expect(ok).To(BeTrue())
			Expect(final.Winner).To(Equal(winner))
			Expect(final.Bodies[winner].Orbits).To(Equal(race.DefaultLapsToWin))
			for i := 0; i < winner; i++ {
				Expect(final.Bodies[i].Orbits).To(BeNumerically("<", race.DefaultLapsToWin))
			}

			for _, s := range history[:len(history)-1] {
				Expect(s.Phase).To(Equal(race.Running))
				for _, b := range s.Bodies {
					Expect(b.Orbits).To(BeNumerically("<", race.DefaultLapsToWin))
				}
			}

			for i := range final.Bodies {
				Expect(final.Bodies[i].Orbits).To(BeNumerically(">=", 1))
			}
		})

		It("freezes after the finish", func() {
			r.Start()
			runToFinish(r)
			before := r.Snapshot()
			for i := 0; i < 50; i++ {
				Expect(r.Tick()).To(BeFalse())
			}
			Expect(r.Snapshot()).To(Equal(before))
		})

		It("gives simultaneous finishers to the lowest index", func() {
			bodies := racers()
			for i := 1; i < len(bodies); i++ {
				bodies[i].Orbits = race.DefaultLapsToWin - 1
				bodies[i].Angle = orbit.LapEnd - 0.001
			}
			tie := race.New(race.DefaultParams(), bodies, rand.New(rand.NewSource(3)))
			tie.Start()

			Expect(tie.Tick()).To(BeTrue())
			winner, ok := tie.Winner()
			Expect(ok).To(BeTrue())
			Expect(winner).To(Equal(1))
			s := tie.Snapshot()
			Expect(s.Bodies[2].Orbits).To(Equal(race.DefaultLapsToWin))
			Expect(s.Bodies[3].Orbits).To(Equal(race.DefaultLapsToWin))
		})
	})

	Describe("Reset", func() {
		It("is a no-op while idle", func() {
			Expect(r.Reset()).To(BeFalse())
		})

		It("returns a finished race to the start line", func() {
			r.Start()
			runToFinish(r)
			Expect(r.Reset()).To(BeTrue())

			s := r.Snapshot()
			Expect(s.Phase).To(Equal(race.Idle))
			Expect(s.Tick).To(BeZero())
			Expect(s.Winner).To(Equal(-1))
			Expect(s).To(Equal(newRace(1).Snapshot()))
		})

		It("stops a running race", func() {
			r.Start()
			r.Tick()
			Expect(r.Reset()).To(BeTrue())
			Expect(r.Phase()).To(Equal(race.Idle))
			Expect(r.Start()).To(BeTrue())
		})

		It("is idempotent", func() {
			r.Start()
			runToFinish(r)
			r.Reset()
			once := r.Snapshot()
			r.Reset()
			Expect(r.Snapshot()).To(Equal(once))
		})

		It("replays the same race after reseeding", func() {
			r.Start()
			first := runToFinish(r)
			r.Reset()
			r.Seed(rand.New(rand.NewSource(1)))
			r.Start()
			Expect(runToFinish(r)).To(Equal(first))
		})
	})

	Describe("Boost", func() {
		It("is rejected before the start", func() {
			err := r.BoostDefault(0)
			Expect(err).To(MatchError(race.ErrNotRunning))
		})

		It("is rejected after the finish", func() {
			r.Start()
			runToFinish(r)
			before := r.Snapshot()
			Expect(r.Boost(0, 0.01)).To(MatchError(race.ErrNotRunning))
			Expect(r.Snapshot()).To(Equal(before))
		})

		It("rejects bad indices", func() {
			r.Start()
			for _, i := range []int{-1, 4, 99} {
				err := r.BoostDefault(i)
				Expect(err).To(MatchError(race.ErrInvalidBody))
				var cmdErr *race.CommandError
				Expect(err).To(BeAssignableToTypeOf(cmdErr))
			}
		})

		It("bypasses the clamp until the next balancing pass", func() {
			p := race.DefaultParams()
			r.Start()
			r.Tick()
			before := r.Snapshot().Bodies[2].Speed

			Expect(r.BoostDefault(2)).To(Succeed())
			boosted := r.Snapshot().Bodies[2].Speed
			Expect(boosted).To(BeNumerically("~", before+p.BoostDelta, 1e-12))
			Expect(boosted).To(BeNumerically(">", p.MaxSpeed))

			r.Tick()
			Expect(r.Snapshot().Bodies[2].Speed).To(BeNumerically("<=", p.MaxSpeed))
		})
	})
})
