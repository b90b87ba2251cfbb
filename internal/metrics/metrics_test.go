package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/orbitrace/internal/race"
)

func snap(leader int, progress ...float64) race.Snapshot {
	s := race.Snapshot{Leader: leader, Bodies: make([]race.BodyState, len(progress))}
	for i, p := range progress {
		s.Bodies[i].Progress = p
	}
	return s
}

func TestSpread(t *testing.T) {
	m := NewSpread()
	if m.Value() != 0 {
		t.Errorf("expected 0 before samples, got %f", m.Value())
	}

	m.OnTick(snap(0, 3, 1))
	m.OnTick(snap(0, 5, 1))

	if math.Abs(m.Value()-3) > 1e-12 {
		t.Errorf("expected mean spread 3, got %f", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("reset did not clear spread")
	}
}

func TestMaxSpread(t *testing.T) {
	m := NewMaxSpread()
	m.OnTick(snap(0, 2, 1))
	m.OnTick(snap(0, 6, 1, 3))
	m.OnTick(snap(0, 4, 3))

	if m.Value() != 5 {
		t.Errorf("expected max spread 5, got %f", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("reset did not clear max spread")
	}
}

func TestLeadChanges(t *testing.T) {
	m := NewLeadChanges()
	leaders := []int{0, 0, 2, 2, 1, 2}
	for _, l := range leaders {
		m.OnTick(snap(l, 0))
	}

	if m.Value() != 3 {
		t.Errorf("expected 3 lead changes, got %f", m.Value())
	}

	m.Reset()
	m.OnTick(snap(1, 0))
	if m.Value() != 0 {
		t.Errorf("expected 0 after reset, got %f", m.Value())
	}
}

func TestDefaults(t *testing.T) {
	seen := make(map[string]bool)
	for _, m := range Defaults() {
		if seen[m.Name()] {
			t.Errorf("duplicate metric name %s", m.Name())
		}
		seen[m.Name()] = true
	}
	if len(seen) != 3 {
		t.Errorf("expected 3 metrics, got %d", len(seen))
	}
}
