package timeexception

import (
	"context"
	"time"
)

// ExceptionRepository defines data access methods for time exceptions.
// The exception service is the only writer of this entity.
type ExceptionRepository interface {
	Create(ctx context.Context, exc TimeException) (TimeException, error)
	GetByID(ctx context.Context, id string) (TimeException, error)
	Update(ctx context.Context, exc TimeException) error

	// List returns matching exceptions, newest created first, paginated.
	List(ctx context.Context, filter ExceptionFilter) ([]TimeException, error)

	// ListPendingUpdatedBefore returns PENDING exceptions whose UpdatedAt
	// is at or before the cutoff; input to the escalation sweep.
	ListPendingUpdatedBefore(ctx context.Context, cutoff time.Time) ([]TimeException, error)

	// CountUnresolvedByEmployee counts the employee's exceptions that are
	// not yet in a terminal status.
	CountUnresolvedByEmployee(ctx context.Context, employeeID string) (int, error)
}
