package runner

import (
	"context"
	"sync"

	"github.com/san-kum/orbitrace/internal/config"
	"github.com/san-kum/orbitrace/internal/metrics"
)

// Ensemble runs the same configuration over consecutive seeds. Each run gets
// its own race and its own metrics, so runs share no state.
type Ensemble struct {
	Runs      int
	SeedStart int64
	Metrics   func() []metrics.Metric
}

func NewEnsemble(runs int, seedStart int64) *Ensemble {
	return &Ensemble{Runs: runs, SeedStart: seedStart, Metrics: metrics.Defaults}
}

func (e *Ensemble) Run(ctx context.Context, cfg *config.Config) ([]*Result, error) {
	results := make([]*Result, e.Runs)
	errs := make([]error, e.Runs)

	var wg sync.WaitGroup
	for i := 0; i < e.Runs; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			cfgCopy := *cfg
			cfgCopy.Seed = e.SeedStart + int64(idx)

			r := New()
			if e.Metrics != nil {
				for _, m := range e.Metrics() {
					r.AddMetric(m)
				}
			}

			results[idx], errs[idx] = r.Run(ctx, &cfgCopy)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}

// Tally counts wins per body over results.
func Tally(results []*Result, bodies int) []int {
	wins := make([]int, bodies)
	for _, r := range results {
		if r != nil && r.Winner >= 0 && r.Winner < bodies {
			wins[r.Winner]++
		}
	}
	return wins
}
