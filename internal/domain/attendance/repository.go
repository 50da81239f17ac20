package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
// The attendance service is the only writer of this entity.
type AttendanceRepository interface {
	Create(ctx context.Context, record AttendanceRecord) (AttendanceRecord, error)
	Update(ctx context.Context, record AttendanceRecord) error

	// GetByEmployeeAndDay returns the record for the (employee, day) pair,
	// or ErrAttendanceNotFound. Day is midnight-normalized.
	GetByEmployeeAndDay(ctx context.Context, employeeID string, day time.Time) (AttendanceRecord, error)

	// ListByEmployee returns the employee's records, newest day first.
	ListByEmployee(ctx context.Context, employeeID string) ([]AttendanceRecord, error)

	// ListByEmployeeBetween returns records with Day inside [from, to],
	// oldest first. Input to the payroll summarizer.
	ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]AttendanceRecord, error)
}

// LatenessRuleRepository resolves the active lateness configuration. The
// recorder consults it once per punch rather than holding global state.
type LatenessRuleRepository interface {
	// GetActive returns the first active rule, or nil when none is active.
	GetActive(ctx context.Context) (*LatenessRule, error)
}
