package assignment

import (
	"context"
	"time"
)

// AssignmentRepository defines data access methods for shift assignments.
// The assignment service is the only writer of this entity.
type AssignmentRepository interface {
	Create(ctx context.Context, a ShiftAssignment) (ShiftAssignment, error)
	GetByID(ctx context.Context, id string) (ShiftAssignment, error)
	Update(ctx context.Context, a ShiftAssignment) error
	List(ctx context.Context) ([]ShiftAssignment, error)

	// ListByEmployee returns all of the employee's assignments, newest
	// start date first.
	ListByEmployee(ctx context.Context, employeeID string) ([]ShiftAssignment, error)

	// ListBlockingByEmployee returns the employee's PENDING and APPROVED
	// assignments, the set the non-overlap invariant is checked against.
	ListBlockingByEmployee(ctx context.Context, employeeID string) ([]ShiftAssignment, error)

	// ListApprovedEndingBefore returns APPROVED assignments whose end date
	// has lapsed; input to the expiry sweep.
	ListApprovedEndingBefore(ctx context.Context, t time.Time) ([]ShiftAssignment, error)

	// ListApprovedEndingBetween returns APPROVED assignments ending inside
	// the window; input to the advance-warning sweep.
	ListApprovedEndingBetween(ctx context.Context, from, to time.Time) ([]ShiftAssignment, error)
}
