package shift

import (
	"context"
)

// ShiftService is the catalog surface. Shift definitions are created and
// updated by HR and read-only to the rest of the engine.
type ShiftService interface {
	Create(ctx context.Context, req CreateShiftRequest) (ShiftResponse, error)
	GetByID(ctx context.Context, id string) (ShiftResponse, error)
	List(ctx context.Context) ([]ShiftResponse, error)
	Update(ctx context.Context, id string, req UpdateShiftRequest) (ShiftResponse, error)
}
