package learn

import "github.com/abhisek/safeguard/internal/content"

// Tracker records which lessons have been completed during this run.
type Tracker struct {
	completed map[string]map[int]bool
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{completed: make(map[string]map[int]bool)}
}

// MarkComplete records a lesson as completed. Marking twice is a no-op.
func (t *Tracker) MarkComplete(moduleID string, lesson int) {
	set, ok := t.completed[moduleID]
	if !ok {
		set = make(map[int]bool)
		t.completed[moduleID] = set
	}
	set[lesson] = true
}

// IsComplete reports whether a lesson has been completed.
func (t *Tracker) IsComplete(moduleID string, lesson int) bool {
	return t.completed[moduleID][lesson]
}

// CompletedCount returns the number of completed lessons in the module.
func (t *Tracker) CompletedCount(m content.Module) int {
	n := 0
	for i := range m.Lessons {
		if t.IsComplete(m.ID, i) {
			n++
		}
	}
	return n
}

// Fraction returns completed / total lessons for the module, in [0, 1].
func (t *Tracker) Fraction(m content.Module) float64 {
	if len(m.Lessons) == 0 {
		return 0
	}
	return float64(t.CompletedCount(m)) / float64(len(m.Lessons))
}

// Reset forgets all progress.
func (t *Tracker) Reset() {
	t.completed = make(map[string]map[int]bool)
}
