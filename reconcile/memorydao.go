package reconcile

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryDAO stores groups purely in memory; useful for unit tests and single
// process deployments.
type MemoryDAO struct {
	mu     sync.RWMutex
	groups map[uuid.UUID]*Group
}

var _ DAO = (*MemoryDAO)(nil)

func NewMemoryDAO() *MemoryDAO {
	return &MemoryDAO{groups: make(map[uuid.UUID]*Group)}
}

func (d *MemoryDAO) Save(_ context.Context, g *Group) error {
	if g == nil {
		return ErrNilGroup
	}
	d.mu.Lock()
	d.groups[g.ID] = g
	d.mu.Unlock()
	return nil
}

func (d *MemoryDAO) Load(_ context.Context, id uuid.UUID) (*Group, error) {
	d.mu.RLock()
	g, ok := d.groups[id]
	d.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return g, nil
}

func (d *MemoryDAO) Delete(_ context.Context, id uuid.UUID) error {
	d.mu.Lock()
	delete(d.groups, id)
	d.mu.Unlock()
	return nil
}

func (d *MemoryDAO) List(_ context.Context) ([]*Group, error) {
	d.mu.RLock()
	out := make([]*Group, 0, len(d.groups))
	for _, g := range d.groups {
		out = append(out, g)
	}
	d.mu.RUnlock()
	return out, nil
}
