package reconcile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"
	"github.com/google/uuid"
)

var groupKeyPrefix = []byte("group/")

// PebbleDAO stores groups in an embedded Pebble database keyed by the raw
// 16 bytes of the reference.
type PebbleDAO struct {
	db        *pebble.DB
	writeSync bool
}

var _ DAO = (*PebbleDAO)(nil)

// PebbleOptions configures OpenPebbleDAO.
type PebbleOptions struct {
	// DataDir is the database directory.
	DataDir string
	// Sync forces a WAL sync on every write.
	Sync bool
	// PebbleOptions allows advanced tuning; nil uses Pebble defaults.
	PebbleOptions *pebble.Options
}

// OpenPebbleDAO opens or creates the database in opts.DataDir.
func OpenPebbleDAO(opts PebbleOptions) (*PebbleDAO, error) {
	if opts.DataDir == "" {
		return nil, errors.New("reconcile: PebbleOptions.DataDir is required")
	}
	po := opts.PebbleOptions
	if po == nil {
		po = &pebble.Options{}
	}
	db, err := pebble.Open(opts.DataDir, po)
	if err != nil {
		return nil, fmt.Errorf("failed to open pebble at %s: %w", opts.DataDir, err)
	}
	return &PebbleDAO{db: db, writeSync: opts.Sync}, nil
}

// Close closes the database.
func (d *PebbleDAO) Close() error {
	if d == nil || d.db == nil {
		return nil
	}
	return d.db.Close()
}

func (d *PebbleDAO) writeOptions() *pebble.WriteOptions {
	if d.writeSync {
		return pebble.Sync
	}
	return pebble.NoSync
}

func (d *PebbleDAO) Save(_ context.Context, g *Group) error {
	if g == nil {
		return ErrNilGroup
	}
	g.mu.Lock()
	data, err := json.Marshal(g)
	g.mu.Unlock()
	if err != nil {
		return fmt.Errorf("failed to marshal group: %w", err)
	}
	return d.db.Set(groupKey(g.ID), data, d.writeOptions())
}

func (d *PebbleDAO) Load(_ context.Context, id uuid.UUID) (*Group, error) {
	value, closer, err := d.db.Get(groupKey(id))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	defer closer.Close()
	g := &Group{}
	if err := json.Unmarshal(value, g); err != nil {
		return nil, fmt.Errorf("failed to unmarshal group %v: %w", id, err)
	}
	return g, nil
}

func (d *PebbleDAO) Delete(_ context.Context, id uuid.UUID) error {
	return d.db.Delete(groupKey(id), d.writeOptions())
}

func (d *PebbleDAO) List(_ context.Context) ([]*Group, error) {
	iter, err := d.db.NewIter(&pebble.IterOptions{
		LowerBound: groupKeyPrefix,
		UpperBound: prefixUpperBound(groupKeyPrefix),
	})
	if err != nil {
		return nil, err
	}
	defer iter.Close()
	var groups []*Group
	for iter.First(); iter.Valid(); iter.Next() {
		g := &Group{}
		if err := json.Unmarshal(iter.Value(), g); err != nil {
			return nil, fmt.Errorf("failed to unmarshal group at %x: %w", iter.Key(), err)
		}
		groups = append(groups, g)
	}
	return groups, iter.Error()
}

func groupKey(id uuid.UUID) []byte {
	key := make([]byte, 0, len(groupKeyPrefix)+len(id))
	key = append(key, groupKeyPrefix...)
	return append(key, id[:]...)
}

// prefixUpperBound returns the smallest key greater than every key with prefix.
func prefixUpperBound(prefix []byte) []byte {
	end := append([]byte(nil), prefix...)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return end[:i+1]
		}
	}
	return nil
}
