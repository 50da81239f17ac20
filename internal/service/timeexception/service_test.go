package timeexception

import (
	"context"
	"testing"
	"time"

	"github.com/clockwise-hr/timeclock-backend-go/internal/domain/notification"
	"github.com/clockwise-hr/timeclock-backend-go/internal/domain/timeexception"
	"github.com/clockwise-hr/timeclock-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sinkRecorder is a synchronous notification.Service for assertions.
type sinkRecorder struct {
	repo *memory.NotificationRepository
}

func newSinkRecorder() *sinkRecorder {
	return &sinkRecorder{repo: memory.NewNotificationRepository()}
}

func (s *sinkRecorder) Notify(ctx context.Context, employeeID string, t notification.NotificationType, message string) {
	_ = s.repo.Append(ctx, notification.Notification{
		ID:         message,
		EmployeeID: employeeID,
		Type:       t,
		Message:    message,
		CreatedAt:  time.Now().UTC(),
	})
}

func (s *sinkRecorder) ListForEmployee(ctx context.Context, employeeID string, limit int) ([]notification.Notification, error) {
	return s.repo.ListByEmployee(ctx, employeeID, limit)
}

func (s *sinkRecorder) Stop() {}

func newTestService(t *testing.T) (timeexception.ExceptionService, *memory.ExceptionRepository, *sinkRecorder) {
	t.Helper()
	repo := memory.NewExceptionRepository()
	sink := newSinkRecorder()
	return NewExceptionService(repo, sink, 25), repo, sink
}

func TestCreate_DefaultsAssigneeAndRecordRef(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService(t)

	exc, err := svc.Create(context.Background(), timeexception.CreateExceptionRequest{
		EmployeeID: "emp-1",
		Type:       timeexception.TypeMissedPunch,
		Reason:     "Invalid punch sequence on 2026-03-02",
	})
	require.NoError(t, err)

	assert.Equal(t, string(timeexception.StatusOpen), exc.Status)
	assert.Equal(t, "emp-1", exc.AssignedTo)
	// No record reference supplied, so the employee id stands in for it.
	assert.Equal(t, "emp-1", exc.AttendanceRecordID)
}

func TestCreate_ExplicitAssigneeAutoAdvancesToPending(t *testing.T) {
	t.Parallel()
	svc, _, sink := newTestService(t)

	reviewer := "emp-1"
	recordID := "rec-42"
	exc, err := svc.Create(context.Background(), timeexception.CreateExceptionRequest{
		EmployeeID:         "emp-1",
		Type:               timeexception.TypeMissedPunch,
		AttendanceRecordID: &recordID,
		AssignedTo:         &reviewer,
	})
	require.NoError(t, err)

	assert.Equal(t, string(timeexception.StatusPending), exc.Status)
	assert.Equal(t, "rec-42", exc.AttendanceRecordID)

	entries := sink.repo.All()
	require.Len(t, entries, 2)
	assert.Equal(t, notification.TypeExceptionCreated, entries[0].Type)
	assert.Equal(t, notification.TypeExceptionStatusChanged, entries[1].Type)
}

func TestCreate_MissingFields(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService(t)

	_, err := svc.Create(context.Background(), timeexception.CreateExceptionRequest{})
	assert.Error(t, err)
}

func TestUpdateStatus_FullLegalPath(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	exc, err := svc.Create(ctx, timeexception.CreateExceptionRequest{
		EmployeeID: "emp-1",
		Type:       timeexception.TypeLate,
	})
	require.NoError(t, err)

	reviewer := "mgr-1"
	comment := "checked against the schedule"
	for _, target := range []timeexception.Status{
		timeexception.StatusPending,
		timeexception.StatusApproved,
		timeexception.StatusResolved,
	} {
		exc, err = svc.UpdateStatus(ctx, exc.ID, timeexception.UpdateStatusRequest{
			Status:     target,
			ReviewerID: &reviewer,
			Comment:    &comment,
		})
		require.NoError(t, err)
		assert.Equal(t, string(target), exc.Status)
	}

	require.NotNil(t, exc.ReviewedBy)
	assert.Equal(t, "mgr-1", *exc.ReviewedBy)
	require.NotNil(t, exc.ReviewComment)
	assert.Equal(t, "checked against the schedule", *exc.ReviewComment)
}

func TestUpdateStatus_IllegalTransition(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	exc, err := svc.Create(ctx, timeexception.CreateExceptionRequest{
		EmployeeID: "emp-1",
		Type:       timeexception.TypeLate,
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, exc.ID, timeexception.UpdateStatusRequest{
		Status: timeexception.StatusApproved,
	})

	var transitionErr *timeexception.InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, timeexception.StatusOpen, transitionErr.From)
	assert.Equal(t, timeexception.StatusApproved, transitionErr.To)

	// The failed transition must not have touched the record.
	unchanged, err := svc.GetByID(ctx, exc.ID)
	require.NoError(t, err)
	assert.Equal(t, string(timeexception.StatusOpen), unchanged.Status)
}

func TestUpdateStatus_TerminalIsFrozen(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	exc, err := svc.Create(ctx, timeexception.CreateExceptionRequest{
		EmployeeID: "emp-1",
		Type:       timeexception.TypeLate,
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, exc.ID, timeexception.UpdateStatusRequest{Status: timeexception.StatusRejected})
	require.NoError(t, err)

	for _, target := range timeexception.AllStatuses() {
		_, err := svc.UpdateStatus(ctx, exc.ID, timeexception.UpdateStatusRequest{Status: target})
		assert.Error(t, err, "REJECTED must not transition to %s", target)
	}
}

func TestUpdateStatus_UnknownException(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService(t)

	_, err := svc.UpdateStatus(context.Background(), "no-such-id", timeexception.UpdateStatusRequest{
		Status: timeexception.StatusPending,
	})
	assert.ErrorIs(t, err, timeexception.ErrExceptionNotFound)
}

func TestEscalateStalled_BeforeCutoffDoesNothing(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	reviewer := "mgr-1"
	exc, err := svc.Create(ctx, timeexception.CreateExceptionRequest{
		EmployeeID: "emp-1",
		Type:       timeexception.TypeMissedPunch,
		AssignedTo: &reviewer,
	})
	require.NoError(t, err)
	require.Equal(t, string(timeexception.StatusPending), exc.Status)

	report, err := svc.EscalateStalled(ctx, time.Date(2030, 1, 10, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Zero(t, report.Eligible)
	assert.Zero(t, report.Escalated)

	unchanged, err := svc.GetByID(ctx, exc.ID)
	require.NoError(t, err)
	assert.Equal(t, string(timeexception.StatusPending), unchanged.Status)
}

func TestEscalateStalled_AfterCutoffEscalatesAndIsIdempotent(t *testing.T) {
	t.Parallel()
	svc, _, sink := newTestService(t)
	ctx := context.Background()

	reviewer := "mgr-1"
	exc, err := svc.Create(ctx, timeexception.CreateExceptionRequest{
		EmployeeID: "emp-1",
		Type:       timeexception.TypeMissedPunch,
		AssignedTo: &reviewer,
	})
	require.NoError(t, err)

	now := time.Date(2030, 1, 26, 8, 0, 0, 0, time.UTC)

	report, err := svc.EscalateStalled(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Eligible)
	assert.Equal(t, 1, report.Escalated)

	escalated, err := svc.GetByID(ctx, exc.ID)
	require.NoError(t, err)
	assert.Equal(t, string(timeexception.StatusEscalated), escalated.Status)

	// Second run sees nothing PENDING and changes nothing.
	report, err = svc.EscalateStalled(ctx, now)
	require.NoError(t, err)
	assert.Zero(t, report.Eligible)
	assert.Zero(t, report.Escalated)

	escalatedCount := 0
	for _, n := range sink.repo.All() {
		if n.Type == notification.TypeExceptionEscalated {
			escalatedCount++
		}
	}
	assert.Equal(t, 1, escalatedCount)
}

func TestEscalateStalled_SkipsPendingTouchedAfterCutoff(t *testing.T) {
	t.Parallel()
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	// Reviewed on the 26th, after the cutoff day 25 has passed. The sweep runs
	// later the same morning; the fresh review keeps it out of scope.
	touched := time.Date(2030, 1, 26, 7, 0, 0, 0, time.UTC)
	_, err := repo.Create(ctx, timeexception.TimeException{
		ID:                 "exc-fresh",
		EmployeeID:         "emp-1",
		Type:               timeexception.TypeMissedPunch,
		Status:             timeexception.StatusPending,
		AssignedTo:         "mgr-1",
		AttendanceRecordID: "rec-1",
		CreatedAt:          touched,
		UpdatedAt:          touched,
	})
	require.NoError(t, err)

	report, err := svc.EscalateStalled(ctx, time.Date(2030, 1, 26, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Zero(t, report.Eligible)
	assert.Zero(t, report.Escalated)

	unchanged, err := svc.GetByID(ctx, "exc-fresh")
	require.NoError(t, err)
	assert.Equal(t, string(timeexception.StatusPending), unchanged.Status)
}

func TestEscalateStalled_SkipsAlreadyReviewed(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	reviewer := "mgr-1"
	exc, err := svc.Create(ctx, timeexception.CreateExceptionRequest{
		EmployeeID: "emp-1",
		Type:       timeexception.TypeLate,
		AssignedTo: &reviewer,
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, exc.ID, timeexception.UpdateStatusRequest{Status: timeexception.StatusApproved})
	require.NoError(t, err)

	report, err := svc.EscalateStalled(ctx, time.Date(2030, 1, 26, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Zero(t, report.Eligible)
}

func TestList_FiltersAndPaginates(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Create(ctx, timeexception.CreateExceptionRequest{
			EmployeeID: "emp-1",
			Type:       timeexception.TypeMissedPunch,
		})
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, timeexception.CreateExceptionRequest{
		EmployeeID: "emp-2",
		Type:       timeexception.TypeLate,
	})
	require.NoError(t, err)

	employeeID := "emp-1"
	results, err := svc.List(ctx, timeexception.ExceptionFilter{EmployeeID: &employeeID})
	require.NoError(t, err)
	assert.Len(t, results, 3)

	limited, err := svc.List(ctx, timeexception.ExceptionFilter{EmployeeID: &employeeID, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	open := timeexception.StatusOpen
	byStatus, err := svc.List(ctx, timeexception.ExceptionFilter{Status: &open})
	require.NoError(t, err)
	assert.Len(t, byStatus, 4)
}
