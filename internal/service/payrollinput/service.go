package payrollinput

import (
	"context"
	"fmt"
	"time"

	"github.com/clockwise-hr/timeclock-backend-go/internal/domain/attendance"
	"github.com/clockwise-hr/timeclock-backend-go/internal/domain/timeexception"
	"github.com/shopspring/decimal"
)

// PeriodSummary is what payroll consumes: derived totals per employee and
// period, plus the counts that tell payroll whether the period is clean.
// Payroll computation itself happens downstream.
type PeriodSummary struct {
	EmployeeID           string          `json:"employee_id"`
	PeriodStart          string          `json:"period_start"`
	PeriodEnd            string          `json:"period_end"`
	DaysWorked           int             `json:"days_worked"`
	TotalWorkMinutes     int             `json:"total_work_minutes"`
	TotalWorkHours       decimal.Decimal `json:"total_work_hours"`
	FlaggedDays          int             `json:"flagged_days"`
	UnresolvedExceptions int             `json:"unresolved_exceptions"`

	// Clean reports whether every attendance day in the period is either
	// unflagged or has had its exceptions resolved.
	Clean bool `json:"clean"`
}

type Service interface {
	BuildSummary(ctx context.Context, employeeID string, from, to time.Time) (PeriodSummary, error)
}

type serviceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	exceptionRepo  timeexception.ExceptionRepository
}

func NewPayrollInputService(
	attendanceRepo attendance.AttendanceRepository,
	exceptionRepo timeexception.ExceptionRepository,
) Service {
	return &serviceImpl{
		attendanceRepo: attendanceRepo,
		exceptionRepo:  exceptionRepo,
	}
}

var minutesPerHour = decimal.NewFromInt(60)

// BuildSummary implements Service.
func (s *serviceImpl) BuildSummary(ctx context.Context, employeeID string, from, to time.Time) (PeriodSummary, error) {
	records, err := s.attendanceRepo.ListByEmployeeBetween(ctx, employeeID, from, to)
	if err != nil {
		return PeriodSummary{}, fmt.Errorf("failed to list attendance for period: %w", err)
	}

	summary := PeriodSummary{
		EmployeeID:  employeeID,
		PeriodStart: from.Format("2006-01-02"),
		PeriodEnd:   to.Format("2006-01-02"),
	}

	for _, r := range records {
		summary.DaysWorked++
		summary.TotalWorkMinutes += r.TotalWorkMinutes
		if r.HasMissedPunch() {
			summary.FlaggedDays++
		}
	}

	unresolved, err := s.exceptionRepo.CountUnresolvedByEmployee(ctx, employeeID)
	if err != nil {
		return PeriodSummary{}, fmt.Errorf("failed to count unresolved exceptions: %w", err)
	}
	summary.UnresolvedExceptions = unresolved

	summary.TotalWorkHours = decimal.NewFromInt(int64(summary.TotalWorkMinutes)).
		DivRound(minutesPerHour, 2)
	summary.Clean = summary.FlaggedDays == 0 && summary.UnresolvedExceptions == 0

	return summary, nil
}
