package assignment

import (
	"context"
	"testing"
	"time"

	"github.com/clockwise-hr/timeclock-backend-go/internal/domain/assignment"
	"github.com/clockwise-hr/timeclock-backend-go/internal/domain/employee"
	"github.com/clockwise-hr/timeclock-backend-go/internal/domain/notification"
	"github.com/clockwise-hr/timeclock-backend-go/internal/domain/shift"
	"github.com/clockwise-hr/timeclock-backend-go/internal/repository/memory"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sinkRecorder struct {
	repo *memory.NotificationRepository
}

func (s *sinkRecorder) Notify(ctx context.Context, employeeID string, t notification.NotificationType, message string) {
	_ = s.repo.Append(ctx, notification.Notification{
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

type fixture struct {
	svc            assignment.AssignmentService
	assignmentRepo *memory.AssignmentRepository
	employeeRepo   *memory.EmployeeRepository
	shiftRepo      *memory.ShiftRepository
	sink           *sinkRecorder

	employeeID   string
	shiftID      string
	departmentID string
	positionID   string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		assignmentRepo: memory.NewAssignmentRepository(),
		employeeRepo:   memory.NewEmployeeRepository(),
		shiftRepo:      memory.NewShiftRepository(),
		sink:           &sinkRecorder{repo: memory.NewNotificationRepository()},
		employeeID:     uuid.New().String(),
		shiftID:        uuid.New().String(),
		departmentID:   uuid.New().String(),
		positionID:     uuid.New().String(),
	}

	f.employeeRepo.Put(employee.Employee{
		ID:                  f.employeeID,
		Name:                "Dina",
		PrimaryDepartmentID: &f.departmentID,
		PrimaryPositionID:   &f.positionID,
		Status:              "ACTIVE",
	})

	_, err := f.shiftRepo.Create(context.Background(), shift.ShiftDefinition{
		ID:        f.shiftID,
		Name:      "Day Shift",
		StartTime: "09:00",
		EndTime:   "17:00",
	})
	require.NoError(t, err)

	f.svc = NewAssignmentService(f.assignmentRepo, f.employeeRepo, f.shiftRepo, f.sink)
	return f
}

func (f *fixture) create(t *testing.T, start string, end *string) assignment.AssignmentResponse {
	t.Helper()
	created, err := f.svc.Create(context.Background(), assignment.CreateAssignmentRequest{
		EmployeeID: f.employeeID,
		ShiftID:    f.shiftID,
		StartDate:  start,
		EndDate:    end,
	})
	require.NoError(t, err)
	return created
}

func strPtr(s string) *string { return &s }

func TestCreate_SnapshotsOrgAttributes(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	created := f.create(t, "2026-03-01", strPtr("2026-03-31"))

	assert.Equal(t, string(assignment.StatusPending), created.Status)
	require.NotNil(t, created.DepartmentID)
	assert.Equal(t, f.departmentID, *created.DepartmentID)
	require.NotNil(t, created.PositionID)
	assert.Equal(t, f.positionID, *created.PositionID)

	entries := f.sink.repo.All()
	require.Len(t, entries, 1)
	assert.Equal(t, notification.TypeAssignmentCreated, entries[0].Type)
}

func TestCreate_UnknownEmployee(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	_, err := f.svc.Create(context.Background(), assignment.CreateAssignmentRequest{
		EmployeeID: uuid.New().String(),
		ShiftID:    f.shiftID,
		StartDate:  "2026-03-01",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCreate_UnknownShift(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	_, err := f.svc.Create(context.Background(), assignment.CreateAssignmentRequest{
		EmployeeID: f.employeeID,
		ShiftID:    uuid.New().String(),
		StartDate:  "2026-03-01",
	})
	assert.ErrorIs(t, err, shift.ErrShiftNotFound)
}

func TestCreate_RejectsOverlap(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.create(t, "2026-03-01", strPtr("2026-03-31"))

	_, err := f.svc.Create(context.Background(), assignment.CreateAssignmentRequest{
		EmployeeID: f.employeeID,
		ShiftID:    f.shiftID,
		StartDate:  "2026-03-15",
		EndDate:    strPtr("2026-04-15"),
	})
	assert.ErrorIs(t, err, assignment.ErrOverlappingAssignment)
}

func TestCreate_OpenEndedBlocksEverythingAfter(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.create(t, "2026-03-01", nil)

	_, err := f.svc.Create(context.Background(), assignment.CreateAssignmentRequest{
		EmployeeID: f.employeeID,
		ShiftID:    f.shiftID,
		StartDate:  "2030-01-01",
	})
	assert.ErrorIs(t, err, assignment.ErrOverlappingAssignment)
}

func TestCreate_CancelledDoesNotBlock(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	first := f.create(t, "2026-03-01", strPtr("2026-03-31"))
	_, err := f.svc.Reject(ctx, first.ID)
	require.NoError(t, err)

	// The cancelled range is free again.
	second := f.create(t, "2026-03-01", strPtr("2026-03-31"))
	assert.Equal(t, string(assignment.StatusPending), second.Status)
}

func TestApprove_ThenApproveAgainFails(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	created := f.create(t, "2026-03-01", strPtr("2026-03-31"))

	approved, err := f.svc.Approve(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, string(assignment.StatusApproved), approved.Status)

	_, err = f.svc.Approve(ctx, created.ID)
	assert.ErrorIs(t, err, assignment.ErrAssignmentNotPending)
}

func TestReject_MovesToCancelled(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	created := f.create(t, "2026-03-01", strPtr("2026-03-31"))

	rejected, err := f.svc.Reject(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, string(assignment.StatusCancelled), rejected.Status)
}

func TestUpdate_OnlyWhilePending(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	created := f.create(t, "2026-03-01", strPtr("2026-03-31"))

	updated, err := f.svc.Update(ctx, created.ID, assignment.UpdateAssignmentRequest{
		EndDate: strPtr("2026-04-30"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.EndDate)
	assert.Equal(t, "2026-04-30", *updated.EndDate)

	_, err = f.svc.Approve(ctx, created.ID)
	require.NoError(t, err)

	_, err = f.svc.Update(ctx, created.ID, assignment.UpdateAssignmentRequest{
		EndDate: strPtr("2026-05-31"),
	})
	assert.ErrorIs(t, err, assignment.ErrAssignmentNotPending)
}

func TestUpdate_UnknownShiftRejected(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	created := f.create(t, "2026-03-01", strPtr("2026-03-31"))

	_, err := f.svc.Update(context.Background(), created.ID, assignment.UpdateAssignmentRequest{
		ShiftID: strPtr(uuid.New().String()),
	})
	assert.ErrorIs(t, err, shift.ErrShiftNotFound)
}

func TestUpdate_DateEditCannotCreateOverlap(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	march := f.create(t, "2026-03-01", strPtr("2026-03-31"))
	may := f.create(t, "2026-05-01", strPtr("2026-05-31"))

	// Pulling May's start back into March collides with the first assignment.
	_, err := f.svc.Update(ctx, may.ID, assignment.UpdateAssignmentRequest{
		StartDate: strPtr("2026-03-15"),
	})
	assert.ErrorIs(t, err, assignment.ErrOverlappingAssignment)

	// The rejected edit must not have been persisted.
	unchanged, err := f.svc.GetByID(ctx, may.ID)
	require.NoError(t, err)
	assert.Equal(t, "2026-05-01", unchanged.StartDate)

	// The first assignment edits its own dates freely.
	updated, err := f.svc.Update(ctx, march.ID, assignment.UpdateAssignmentRequest{
		EndDate: strPtr("2026-04-15"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.EndDate)
	assert.Equal(t, "2026-04-15", *updated.EndDate)
}

func TestExpireAssignments_IsIdempotent(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	// The sweep compares against the real clock, so the lapsed range is
	// anchored to it.
	start := time.Now().UTC().Add(-60 * 24 * time.Hour).Format("2006-01-02")
	end := time.Now().UTC().Add(-24 * time.Hour).Format("2006-01-02")
	created := f.create(t, start, strPtr(end))
	_, err := f.svc.Approve(ctx, created.ID)
	require.NoError(t, err)

	report, err := f.svc.ExpireAssignments(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Eligible)
	assert.Equal(t, 1, report.Transitioned)

	expired, err := f.svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, string(assignment.StatusExpired), expired.Status)

	report, err = f.svc.ExpireAssignments(ctx)
	require.NoError(t, err)
	assert.Zero(t, report.Eligible)
	assert.Zero(t, report.Transitioned)

	expiredNotices := 0
	for _, n := range f.sink.repo.All() {
		if n.Type == notification.TypeAssignmentExpired {
			expiredNotices++
		}
	}
	assert.Equal(t, 1, expiredNotices)
}

func TestExpireAssignments_SkipsPendingAndOpenEnded(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	// PENDING with a past end date, should be untouched by the sweep.
	start := time.Now().UTC().Add(-60 * 24 * time.Hour).Format("2006-01-02")
	end := time.Now().UTC().Add(-24 * time.Hour).Format("2006-01-02")
	f.create(t, start, strPtr(end))

	report, err := f.svc.ExpireAssignments(ctx)
	require.NoError(t, err)
	assert.Zero(t, report.Eligible)
}

func TestNotifyExpiringSoon_WarnsWithoutTransition(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	startDate := time.Now().UTC().Add(-30 * 24 * time.Hour).Format("2006-01-02")
	endDate := time.Now().UTC().Add(3 * 24 * time.Hour).Format("2006-01-02")
	created := f.create(t, startDate, &endDate)
	_, err := f.svc.Approve(ctx, created.ID)
	require.NoError(t, err)

	report, err := f.svc.NotifyExpiringSoon(ctx, 7*24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Eligible)

	unchanged, err := f.svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, string(assignment.StatusApproved), unchanged.Status)

	warnings := 0
	for _, n := range f.sink.repo.All() {
		if n.Type == notification.TypeAssignmentExpiring {
			warnings++
		}
	}
	assert.Equal(t, 1, warnings)
}

func TestFindForEmployee_OmitsTerminalStatuses(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	first := f.create(t, "2026-03-01", strPtr("2026-03-31"))
	_, err := f.svc.Reject(ctx, first.ID)
	require.NoError(t, err)

	second := f.create(t, "2026-04-01", strPtr("2026-04-30"))

	visible, err := f.svc.FindForEmployee(ctx, f.employeeID)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, second.ID, visible[0].ID)
}
