package reconcile

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Group is the rendez-vous of all parties reporting the same reference.
type Group struct {
	ID        uuid.UUID  `json:"id" yaml:"id"`
	Expected  int        `json:"expected" yaml:"expected"`
	Parties   []string   `json:"parties" yaml:"parties"`
	CreatedAt time.Time  `json:"createdAt" yaml:"createdAt"`
	DoneAt    *time.Time `json:"doneAt,omitempty" yaml:"doneAt,omitempty"`

	mu sync.Mutex
}

// NewGroup creates an empty group for reference id.
func NewGroup(id uuid.UUID, expected int, createdAt time.Time) *Group {
	return &Group{ID: id, Expected: expected, Parties: []string{}, CreatedAt: createdAt}
}

// Report registers party and returns true when this report completed the
// group. Reporting the same party twice has no effect.
func (g *Group) Report(party string, at time.Time) (groupComplete bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if slices.Contains(g.Parties, party) {
		return false
	}
	g.Parties = append(g.Parties, party)
	if g.DoneAt == nil && g.Expected > 0 && len(g.Parties) >= g.Expected {
		g.DoneAt = &at
		return true
	}
	return false
}

// Reported returns true if party already reported.
func (g *Group) Reported(party string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return slices.Contains(g.Parties, party)
}

// Done returns whether the group has completed.
func (g *Group) Done() bool {
	g.mu.Lock()
	done := g.DoneAt != nil
	g.mu.Unlock()
	return done
}

// Missing returns how many parties still have to report.
func (g *Group) Missing() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	if missing := g.Expected - len(g.Parties); missing > 0 {
		return missing
	}
	return 0
}
