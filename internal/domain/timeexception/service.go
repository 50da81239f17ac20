package timeexception

import (
	"context"
	"time"
)

// ExceptionService owns the exception state machine: creation, reviewer
// transitions, and the time-boxed escalation that runs before payroll cutoff.
type ExceptionService interface {
	// Create persists a new OPEN exception. Supplying an explicit reviewer
	// auto-advances it to PENDING before returning.
	Create(ctx context.Context, req CreateExceptionRequest) (ExceptionResponse, error)

	GetByID(ctx context.Context, id string) (ExceptionResponse, error)
	List(ctx context.Context, filter ExceptionFilter) ([]ExceptionResponse, error)

	// UpdateStatus applies one transition from the legal table, recording
	// reviewer and comment when given.
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (ExceptionResponse, error)

	// EscalatePendingBeforeCutoff moves every PENDING exception last
	// touched at or before the cutoff to ESCALATED. Idempotent.
	EscalatePendingBeforeCutoff(ctx context.Context, cutoff time.Time) (SweepReport, error)

	// EscalateStalled is the sweep entry point: it computes the payroll
	// cutoff for the current month and only acts once now has passed it.
	EscalateStalled(ctx context.Context, now time.Time) (SweepReport, error)
}
