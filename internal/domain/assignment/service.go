package assignment

import (
	"context"
	"time"
)

// AssignmentService manages the assignment lifecycle:
// PENDING -> APPROVED | CANCELLED, and APPROVED -> EXPIRED via the sweep.
type AssignmentService interface {
	Create(ctx context.Context, req CreateAssignmentRequest) (AssignmentResponse, error)
	GetByID(ctx context.Context, id string) (AssignmentResponse, error)
	List(ctx context.Context) ([]AssignmentResponse, error)

	// FindForEmployee returns the employee-visible active schedule set:
	// PENDING and APPROVED assignments only.
	FindForEmployee(ctx context.Context, employeeID string) ([]AssignmentResponse, error)

	Update(ctx context.Context, id string, req UpdateAssignmentRequest) (AssignmentResponse, error)
	Approve(ctx context.Context, id string) (AssignmentResponse, error)
	Reject(ctx context.Context, id string) (AssignmentResponse, error)

	// ExpireAssignments transitions every APPROVED assignment whose end
	// date has lapsed to EXPIRED. Idempotent; safe to re-run.
	ExpireAssignments(ctx context.Context) (SweepReport, error)

	// NotifyExpiringSoon emits an advance warning for APPROVED assignments
	// ending within the look-ahead window. No state transition.
	NotifyExpiringSoon(ctx context.Context, window time.Duration) (SweepReport, error)
}
