package timeexception

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/clockwise-hr/timeclock-backend-go/internal/domain/notification"
	"github.com/clockwise-hr/timeclock-backend-go/internal/domain/timeexception"
	"github.com/clockwise-hr/timeclock-backend-go/internal/pkg/keylock"
	"github.com/google/uuid"
)

type ExceptionServiceImpl struct {
	repo            timeexception.ExceptionRepository
	notificationSvc notification.Service

	// payrollCutoffDay is the day of month after which stalled PENDING
	// exceptions are force-escalated. Cutoff instant is that day 23:59:59.
	payrollCutoffDay int

	// transitions on the same exception id are serialized to keep the
	// transition table race-free.
	locks *keylock.KeyLock
}

func NewExceptionService(
	repo timeexception.ExceptionRepository,
	notificationSvc notification.Service,
	payrollCutoffDay int,
) timeexception.ExceptionService {
	if payrollCutoffDay < 1 || payrollCutoffDay > 28 {
		payrollCutoffDay = 25
	}
	return &ExceptionServiceImpl{
		repo:             repo,
		notificationSvc:  notificationSvc,
		payrollCutoffDay: payrollCutoffDay,
		locks:            keylock.New(),
	}
}

// Create implements timeexception.ExceptionService.
func (s *ExceptionServiceImpl) Create(ctx context.Context, req timeexception.CreateExceptionRequest) (timeexception.ExceptionResponse, error) {
	if err := req.Validate(); err != nil {
		return timeexception.ExceptionResponse{}, err
	}

	now := time.Now().UTC()
	assignedTo := req.EmployeeID
	if req.AssignedTo != nil && *req.AssignedTo != "" {
		assignedTo = *req.AssignedTo
	}

	exc := timeexception.TimeException{
		ID:                 uuid.New().String(),
		EmployeeID:         req.EmployeeID,
		AttendanceRecordID: timeexception.FallbackRecordRef(req.EmployeeID, req.AttendanceRecordID),
		AssignedTo:         assignedTo,
		Type:               req.Type,
		Reason:             req.Reason,
		Status:             timeexception.StatusOpen,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	created, err := s.repo.Create(ctx, exc)
	if err != nil {
		return timeexception.ExceptionResponse{}, fmt.Errorf("failed to create time exception: %w", err)
	}

	s.notificationSvc.Notify(ctx, created.EmployeeID, notification.TypeExceptionCreated,
		fmt.Sprintf("A %s exception was opened for review: %s", created.Type, created.Reason))

	// Creation with an explicit reviewer auto-advances past OPEN.
	if req.AssignedTo != nil && *req.AssignedTo != "" {
		return s.UpdateStatus(ctx, created.ID, timeexception.UpdateStatusRequest{
			Status: timeexception.StatusPending,
		})
	}

	return toResponse(created), nil
}

// GetByID implements timeexception.ExceptionService.
func (s *ExceptionServiceImpl) GetByID(ctx context.Context, id string) (timeexception.ExceptionResponse, error) {
	exc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return timeexception.ExceptionResponse{}, err
	}
	return toResponse(exc), nil
}

// List implements timeexception.ExceptionService.
func (s *ExceptionServiceImpl) List(ctx context.Context, filter timeexception.ExceptionFilter) ([]timeexception.ExceptionResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	excs, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list time exceptions: %w", err)
	}

	responses := make([]timeexception.ExceptionResponse, 0, len(excs))
	for _, exc := range excs {
		responses = append(responses, toResponse(exc))
	}
	return responses, nil
}

// UpdateStatus implements timeexception.ExceptionService.
func (s *ExceptionServiceImpl) UpdateStatus(ctx context.Context, id string, req timeexception.UpdateStatusRequest) (timeexception.ExceptionResponse, error) {
	if err := req.Validate(); err != nil {
		return timeexception.ExceptionResponse{}, err
	}

	unlock := s.locks.Lock(id)
	defer unlock()

	exc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return timeexception.ExceptionResponse{}, err
	}

	oldStatus := exc.Status
	if !timeexception.CanTransition(oldStatus, req.Status) {
		return timeexception.ExceptionResponse{}, &timeexception.InvalidTransitionError{
			From: oldStatus,
			To:   req.Status,
		}
	}

	exc.Status = req.Status
	exc.UpdatedAt = time.Now().UTC()
	if req.ReviewerID != nil {
		exc.ReviewedBy = req.ReviewerID
	}
	if req.Comment != nil {
		exc.ReviewComment = req.Comment
	}

	if err := s.repo.Update(ctx, exc); err != nil {
		return timeexception.ExceptionResponse{}, fmt.Errorf("failed to update time exception: %w", err)
	}

	s.notificationSvc.Notify(ctx, exc.EmployeeID, notification.TypeExceptionStatusChanged,
		fmt.Sprintf("Exception %s status changed from %s to %s", exc.ID, oldStatus, exc.Status))

	return toResponse(exc), nil
}

// EscalatePendingBeforeCutoff implements timeexception.ExceptionService.
// A failure on one exception is logged and the sweep continues; the report
// carries how many of the eligible records actually transitioned.
func (s *ExceptionServiceImpl) EscalatePendingBeforeCutoff(ctx context.Context, cutoff time.Time) (timeexception.SweepReport, error) {
	stalled, err := s.repo.ListPendingUpdatedBefore(ctx, cutoff)
	if err != nil {
		return timeexception.SweepReport{}, fmt.Errorf("failed to list stalled exceptions: %w", err)
	}

	report := timeexception.SweepReport{Eligible: len(stalled)}
	for _, exc := range stalled {
		if err := s.escalate(ctx, exc.ID); err != nil {
			slog.Error("Failed to escalate exception",
				"exception_id", exc.ID,
				"employee_id", exc.EmployeeID,
				"error", err)
			continue
		}
		report.Escalated++
	}

	return report, nil
}

func (s *ExceptionServiceImpl) escalate(ctx context.Context, id string) error {
	unlock := s.locks.Lock(id)
	defer unlock()

	exc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if exc.Status != timeexception.StatusPending {
		// Already moved by a reviewer or a previous run.
		return nil
	}

	exc.Status = timeexception.StatusEscalated
	exc.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, exc); err != nil {
		return err
	}

	s.notificationSvc.Notify(ctx, exc.EmployeeID, notification.TypeExceptionEscalated,
		fmt.Sprintf("Exception %s was escalated ahead of the payroll cutoff", exc.ID))

	return nil
}

// EscalateStalled implements timeexception.ExceptionService. The cutoff is
// the configured day of the current month at 23:59:59; before that instant
// the sweep does nothing.
func (s *ExceptionServiceImpl) EscalateStalled(ctx context.Context, now time.Time) (timeexception.SweepReport, error) {
	cutoff := time.Date(now.Year(), now.Month(), s.payrollCutoffDay, 23, 59, 59, 0, now.Location())
	if !now.After(cutoff) {
		return timeexception.SweepReport{}, nil
	}
	return s.EscalatePendingBeforeCutoff(ctx, cutoff)
}

func toResponse(exc timeexception.TimeException) timeexception.ExceptionResponse {
	return timeexception.ExceptionResponse{
		ID:                 exc.ID,
		EmployeeID:         exc.EmployeeID,
		AttendanceRecordID: exc.AttendanceRecordID,
		AssignedTo:         exc.AssignedTo,
		Type:               string(exc.Type),
		Reason:             exc.Reason,
		Status:             string(exc.Status),
		ReviewedBy:         exc.ReviewedBy,
		ReviewComment:      exc.ReviewComment,
		Synced:             exc.Synced,
		CreatedAt:          exc.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          exc.UpdatedAt.Format(time.RFC3339),
	}
}
