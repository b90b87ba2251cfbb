// Package runner drives orbit races without a screen: a single seeded race
// to completion, or an ensemble of seeds in parallel.
package runner

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/san-kum/orbitrace/internal/config"
	"github.com/san-kum/orbitrace/internal/metrics"
	"github.com/san-kum/orbitrace/internal/race"
)

// ErrNoWinner indicates the tick budget ran out before any body won.
var ErrNoWinner = errors.New("runner: no winner within tick budget")

type Result struct {
	Seed     int64
	Winner   int
	Ticks    int
	Laps     []int
	Progress [][]float64
	Metrics  map[string]float64
}

type Runner struct {
	metrics   []metrics.Metric
	observers []race.Observer
}

func New() *Runner {
	return &Runner{
		metrics:   make([]metrics.Metric, 0),
		observers: make([]race.Observer, 0),
	}
}

func (r *Runner) AddMetric(m metrics.Metric)  { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o race.Observer) { r.observers = append(r.observers, o) }

// Run races the configured bodies until one wins or cfg.MaxTicks is reached.
// On cancellation the partial result is returned with ctx.Err().
func (r *Runner) Run(ctx context.Context, cfg *config.Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.MaxTicks <= 0 {
		return nil, fmt.Errorf("runner: max ticks must be positive, got %d", cfg.MaxTicks)
	}

	rc := race.New(cfg.Params(), cfg.BuildBodies(), rand.New(rand.NewSource(cfg.Seed)))
	rec := newRecorder(rc.Len(), cfg.MaxTicks)
	rc.AddObserver(rec)
	for _, m := range r.metrics {
		m.Reset()
		rc.AddObserver(m)
	}
	for _, o := range r.observers {
		rc.AddObserver(o)
	}

	result := &Result{
		Seed:    cfg.Seed,
		Winner:  -1,
		Metrics: make(map[string]float64),
	}

	rc.Start()
	var runErr error
loop:
	for i := 0; i < cfg.MaxTicks; i++ {
		select {
		case <-ctx.Done():
			runErr = ctx.Err()
			break loop
		default:
		}
		if !rc.Tick() {
			break
		}
	}

	snap := rc.Snapshot()
	result.Ticks = snap.Tick
	result.Progress = rec.progress
	result.Laps = make([]int, len(snap.Bodies))
	for i, b := range snap.Bodies {
		result.Laps[i] = b.Orbits
	}
	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	if runErr != nil {
		return result, runErr
	}
	winner, ok := rc.Winner()
	if !ok {
		return result, ErrNoWinner
	}
	result.Winner = winner
	return result, nil
}

// recorder keeps each body's progress after every tick.
type recorder struct {
	progress [][]float64
}

func newRecorder(n, capacity int) *recorder {
	if capacity > 4096 {
		capacity = 4096
	}
	rec := &recorder{progress: make([][]float64, n)}
	for i := range rec.progress {
		rec.progress[i] = make([]float64, 0, capacity)
	}
	return rec
}

func (r *recorder) OnTick(s race.Snapshot) {
	for i, b := range s.Bodies {
		r.progress[i] = append(r.progress[i], b.Progress)
	}
}

func (r *recorder) OnFinish(race.Snapshot) {}
