package reconcile

import (
	"context"
	"errors"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/viant/uuidkit/deterministic"
)

// Ledger records reports of parties against deterministic references.
type Ledger struct {
	dao       DAO
	generator *deterministic.Generator
	now       func() time.Time
	mu        sync.Mutex
}

// LedgerOption customises a Ledger.
type LedgerOption func(l *Ledger)

// WithClock overrides the time source, mostly for tests.
func WithClock(now func() time.Time) LedgerOption {
	return func(l *Ledger) {
		l.now = now
	}
}

// NewLedger creates a ledger; nil dao and generator default to a MemoryDAO
// and the package level MD5 generator.
func NewLedger(dao DAO, generator *deterministic.Generator, options ...LedgerOption) *Ledger {
	ret := &Ledger{dao: dao, generator: generator, now: time.Now}
	for _, option := range options {
		option(ret)
	}
	if ret.dao == nil {
		ret.dao = NewMemoryDAO()
	}
	if ret.generator == nil {
		ret.generator = deterministic.Default()
	}
	return ret
}

// Report registers party against ref. The group is created on first report
// with the expected party count; later reports keep the original count. The
// returned flag is true only for the report completing the group.
func (l *Ledger) Report(ctx context.Context, party string, ref uuid.UUID, expected int) (*Group, bool, error) {
	if party == "" {
		return nil, false, ErrInvalidParty
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	g, err := l.dao.Load(ctx, ref)
	switch {
	case errors.Is(err, ErrNotFound):
		if expected <= 0 {
			return nil, false, ErrInvalidExpected
		}
		g = NewGroup(ref, expected, l.now())
	case err != nil:
		return nil, false, err
	}
	complete := g.Report(party, l.now())
	if err := l.dao.Save(ctx, g); err != nil {
		return nil, false, err
	}
	return g, complete, nil
}

// ReportContent derives the reference from content and reports it.
func (l *Ledger) ReportContent(ctx context.Context, party string, content []byte, expected int) (*Group, bool, error) {
	ref := l.generator.FromBytes(content)
	if ref == nil {
		return nil, false, ErrNoContent
	}
	return l.Report(ctx, party, *ref, expected)
}

// ReportStream derives the reference from stream, closes it, and reports it.
func (l *Ledger) ReportStream(ctx context.Context, party string, stream io.ReadCloser, expected int) (*Group, bool, error) {
	ref, err := l.generator.FromStream(stream)
	if err != nil {
		return nil, false, err
	}
	if ref == nil {
		return nil, false, ErrNoContent
	}
	return l.Report(ctx, party, *ref, expected)
}

// Group returns the group of ref or ErrNotFound.
func (l *Ledger) Group(ctx context.Context, ref uuid.UUID) (*Group, error) {
	return l.dao.Load(ctx, ref)
}

// Pending returns groups still waiting for parties, oldest first.
func (l *Ledger) Pending(ctx context.Context) ([]*Group, error) {
	groups, err := l.dao.List(ctx)
	if err != nil {
		return nil, err
	}
	var pending []*Group
	for _, g := range groups {
		if !g.Done() {
			pending = append(pending, g)
		}
	}
	sort.Slice(pending, func(i, j int) bool {
		return pending[i].CreatedAt.Before(pending[j].CreatedAt)
	})
	return pending, nil
}

// Forget removes the group of ref.
func (l *Ledger) Forget(ctx context.Context, ref uuid.UUID) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.dao.Delete(ctx, ref)
}
