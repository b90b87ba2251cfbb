package metrics

import "github.com/san-kum/orbitrace/internal/race"

// Metric summarises a race as it is observed tick by tick.
type Metric interface {
	race.Observer
	Name() string
	Value() float64
	Reset()
}

func Defaults() []Metric {
	return []Metric{
		NewSpread(),
		NewMaxSpread(),
		NewLeadChanges(),
	}
}
