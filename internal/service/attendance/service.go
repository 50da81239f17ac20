package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/clockwise-hr/timeclock-backend-go/internal/domain/assignment"
	"github.com/clockwise-hr/timeclock-backend-go/internal/domain/attendance"
	"github.com/clockwise-hr/timeclock-backend-go/internal/domain/shift"
	"github.com/clockwise-hr/timeclock-backend-go/internal/domain/timeexception"
	"github.com/clockwise-hr/timeclock-backend-go/internal/pkg/keylock"
	"github.com/google/uuid"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	latenessRepo   attendance.LatenessRuleRepository
	assignmentRepo assignment.AssignmentRepository
	shiftRepo      shift.ShiftRepository
	exceptionSvc   timeexception.ExceptionService

	// punches for the same (employee, day) are read-modify-write over one
	// record, so they are serialized here.
	locks *keylock.KeyLock
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	latenessRepo attendance.LatenessRuleRepository,
	assignmentRepo assignment.AssignmentRepository,
	shiftRepo shift.ShiftRepository,
	exceptionSvc timeexception.ExceptionService,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		latenessRepo:   latenessRepo,
		assignmentRepo: assignmentRepo,
		shiftRepo:      shiftRepo,
		exceptionSvc:   exceptionSvc,
		locks:          keylock.New(),
	}
}

// RecordPunch implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) RecordPunch(ctx context.Context, req attendance.RecordPunchRequest) (attendance.RecordPunchResult, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordPunchResult{}, err
	}

	day := attendance.DayOf(req.Time)
	unlock := a.locks.Lock(req.EmployeeID + "|" + day.Format("2006-01-02"))
	defer unlock()

	record, err := a.loadOrCreateRecord(ctx, req.EmployeeID, day)
	if err != nil {
		return attendance.RecordPunchResult{}, err
	}

	// Punches are appended in arrival order, not sorted by their timestamp.
	record.Punches = append(record.Punches, attendance.Punch{
		Type: req.PunchType,
		Time: req.Time,
	})
	record.UpdatedAt = time.Now().UTC()

	if !attendance.SequenceValid(record.Punches) {
		wasFlagged := record.HasMissedPunch()
		record.Flag()
		if err := a.attendanceRepo.Update(ctx, record); err != nil {
			return attendance.RecordPunchResult{}, fmt.Errorf("failed to persist attendance record: %w", err)
		}
		// Only the transition to FLAGGED opens an exception; the flag is
		// sticky, later invalid punches just repeat the warning.
		if !wasFlagged {
			a.openException(ctx, record, timeexception.TypeMissedPunch,
				fmt.Sprintf("Invalid punch sequence on %s", day.Format("2006-01-02")))
		}
		return attendance.RecordPunchResult{
			Record:  record,
			Warning: "punch sequence is invalid; the day has been flagged for review",
		}, nil
	}

	// Worked time needs only the punches, so it is derived whether or not
	// the employee has a shift to compare against.
	record.TotalWorkMinutes = attendance.WorkMinutes(record.Punches)
	if err := a.attendanceRepo.Update(ctx, record); err != nil {
		return attendance.RecordPunchResult{}, fmt.Errorf("failed to persist attendance record: %w", err)
	}

	active, err := a.activeAssignment(ctx, req.EmployeeID, day)
	if err != nil {
		return attendance.RecordPunchResult{}, err
	}
	if active == nil {
		// No shift to judge lateness against.
		return attendance.RecordPunchResult{Record: record}, nil
	}

	shiftDef, err := a.shiftRepo.GetByID(ctx, active.ShiftID)
	if err != nil {
		return attendance.RecordPunchResult{}, fmt.Errorf("failed to resolve shift %s: %w", active.ShiftID, err)
	}

	rule, err := a.latenessRepo.GetActive(ctx)
	if err != nil {
		return attendance.RecordPunchResult{}, fmt.Errorf("failed to resolve lateness rule: %w", err)
	}

	// Lateness is judged once, when the day's first punch arrives; later
	// punches would otherwise re-raise the same finding.
	if rule != nil && rule.Active && len(record.Punches) == 1 {
		a.checkLateness(ctx, &record, shiftDef, rule)
	}

	return attendance.RecordPunchResult{Record: record}, nil
}

func (a *AttendanceServiceImpl) loadOrCreateRecord(ctx context.Context, employeeID string, day time.Time) (attendance.AttendanceRecord, error) {
	record, err := a.attendanceRepo.GetByEmployeeAndDay(ctx, employeeID, day)
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, attendance.ErrAttendanceNotFound) {
		return attendance.AttendanceRecord{}, fmt.Errorf("failed to load attendance record: %w", err)
	}

	now := time.Now().UTC()
	created, err := a.attendanceRepo.Create(ctx, attendance.AttendanceRecord{
		ID:         uuid.New().String(),
		EmployeeID: employeeID,
		Day:        day,
		DayStatus:  attendance.DayClean,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return attendance.AttendanceRecord{}, fmt.Errorf("failed to create attendance record: %w", err)
	}
	return created, nil
}

// activeAssignment returns the PENDING/APPROVED assignment whose date range
// contains the day, or nil. The non-overlap invariant guarantees at most one.
func (a *AttendanceServiceImpl) activeAssignment(ctx context.Context, employeeID string, day time.Time) (*assignment.ShiftAssignment, error) {
	blocking, err := a.assignmentRepo.ListBlockingByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load assignments: %w", err)
	}
	for i := range blocking {
		if blocking[i].Covers(day) {
			return &blocking[i], nil
		}
	}
	return nil, nil
}

func (a *AttendanceServiceImpl) checkLateness(ctx context.Context, record *attendance.AttendanceRecord, shiftDef shift.ShiftDefinition, rule *attendance.LatenessRule) {
	firstPunch := record.Punches[0].Time

	shiftStart, err := shiftDef.StartOnDay(firstPunch)
	if err != nil {
		slog.Error("Shift has malformed start time",
			"shift_id", shiftDef.ID,
			"start_time", shiftDef.StartTime,
			"error", err)
		return
	}

	allowed := shiftStart.Add(time.Duration(rule.GracePeriodMinutes) * time.Minute)
	if !firstPunch.After(allowed) {
		return
	}

	minutesLate := int(firstPunch.Sub(allowed) / time.Minute)
	a.openException(ctx, *record, timeexception.TypeLate,
		fmt.Sprintf("Late by %d minutes", minutesLate))
}

// openException raises a finding for human review. Failures are logged and
// suppressed: the punch write has already succeeded and must not be undone
// over a tracking failure.
func (a *AttendanceServiceImpl) openException(ctx context.Context, record attendance.AttendanceRecord, t timeexception.Type, reason string) {
	assignedTo := record.EmployeeID
	_, err := a.exceptionSvc.Create(ctx, timeexception.CreateExceptionRequest{
		EmployeeID:         record.EmployeeID,
		Type:               t,
		Reason:             reason,
		AttendanceRecordID: &record.ID,
		AssignedTo:         &assignedTo,
	})
	if err != nil {
		slog.Error("Failed to open time exception",
			"employee_id", record.EmployeeID,
			"type", t,
			"error", err)
	}
}

// GetForEmployee implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetForEmployee(ctx context.Context, employeeID string) ([]attendance.AttendanceResponse, error) {
	records, err := a.attendanceRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, toResponse(r))
	}
	return responses, nil
}

// GetForEmployeeBetween implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetForEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.AttendanceResponse, error) {
	records, err := a.attendanceRepo.ListByEmployeeBetween(ctx, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for period: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, toResponse(r))
	}
	return responses, nil
}

func toResponse(r attendance.AttendanceRecord) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:                  r.ID,
		EmployeeID:          r.EmployeeID,
		Day:                 r.Day.Format("2006-01-02"),
		Punches:             r.Punches,
		TotalWorkMinutes:    r.TotalWorkMinutes,
		DayStatus:           string(r.DayStatus),
		FinalisedForPayroll: r.FinalisedForPayroll,
	}
}
