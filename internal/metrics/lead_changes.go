package metrics

import "github.com/san-kum/orbitrace/internal/race"

// LeadChanges counts how often the leading body changed.
type LeadChanges struct {
	name    string
	leader  int
	changes int
}

func NewLeadChanges() *LeadChanges {
	return &LeadChanges{name: "lead_changes", leader: -1}
}

func (l *LeadChanges) Name() string { return l.name }

func (l *LeadChanges) OnTick(snap race.Snapshot) {
	if l.leader != -1 && snap.Leader != l.leader {
		l.changes++
	}
	l.leader = snap.Leader
}

func (l *LeadChanges) OnFinish(race.Snapshot) {}

func (l *LeadChanges) Value() float64 {
	return float64(l.changes)
}

func (l *LeadChanges) Reset() {
	l.leader = -1
	l.changes = 0
}
