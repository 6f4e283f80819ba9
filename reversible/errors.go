package reversible

import (
	"errors"
	"fmt"
)

// ErrOutOfCapacity is matched by every *OutOfCapacityError.
var ErrOutOfCapacity = errors.New("reversible: out of capacity")

// OutOfCapacityError reports an input holding more elements than fit into a
// UUID at the given width. Input is never truncated.
type OutOfCapacityError struct {
	Width  Width
	Length int
}

func (e *OutOfCapacityError) Error() string {
	return fmt.Sprintf("reversible: %d %v elements exceed capacity %d", e.Length, e.Width, e.Width.Capacity())
}

// Is reports whether target is ErrOutOfCapacity.
func (e *OutOfCapacityError) Is(target error) bool {
	return target == ErrOutOfCapacity
}
