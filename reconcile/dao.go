package reconcile

import (
	"context"

	"github.com/google/uuid"
)

// DAO abstracts persistence of groups. Load returns ErrNotFound for an
// unknown id.
type DAO interface {
	Save(ctx context.Context, g *Group) error
	Load(ctx context.Context, id uuid.UUID) (*Group, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*Group, error)
}
