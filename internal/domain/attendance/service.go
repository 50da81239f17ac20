package attendance

import (
	"context"
	"time"
)

// AttendanceService ingests punches and derives worked time and lateness
// against the employee's active shift assignment.
type AttendanceService interface {
	// RecordPunch appends a punch to the day's record, validates the IN/OUT
	// sequence and, when an active assignment exists, derives work minutes
	// and lateness. A sequence violation flags the day and opens a
	// MISSED_PUNCH exception; the result then carries a warning.
	RecordPunch(ctx context.Context, req RecordPunchRequest) (RecordPunchResult, error)

	// GetForEmployee returns the employee's attendance, newest day first.
	GetForEmployee(ctx context.Context, employeeID string) ([]AttendanceResponse, error)

	// GetForEmployeeBetween returns the employee's attendance for the
	// inclusive [from, to] day range, oldest day first.
	GetForEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]AttendanceResponse, error)
}
