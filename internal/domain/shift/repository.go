package shift

import (
	"context"
)

// ShiftRepository defines data access methods for shift definitions.
type ShiftRepository interface {
	Create(ctx context.Context, shift ShiftDefinition) (ShiftDefinition, error)
	GetByID(ctx context.Context, id string) (ShiftDefinition, error)
	List(ctx context.Context) ([]ShiftDefinition, error)
	Update(ctx context.Context, shift ShiftDefinition) error
}
