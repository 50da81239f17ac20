package assignment

import (
	"time"
)

// Status is the lifecycle state of a shift assignment.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusApproved  Status = "APPROVED"
	StatusCancelled Status = "CANCELLED"
	StatusExpired   Status = "EXPIRED"
)

// ShiftAssignment binds one employee to one shift for [StartDate, EndDate].
// A nil EndDate means the assignment is open-ended.
type ShiftAssignment struct {
	ID           string
	EmployeeID   string
	ShiftID      string
	DepartmentID *string // snapshot from the employee record at creation time
	PositionID   *string // snapshot from the employee record at creation time
	StartDate    time.Time
	EndDate      *time.Time
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// BlocksNewAssignments reports whether this assignment participates in the
// non-overlap invariant. CANCELLED and EXPIRED assignments do not.
func (a ShiftAssignment) BlocksNewAssignments() bool {
	return a.Status == StatusPending || a.Status == StatusApproved
}

// Covers reports whether the given day falls inside the assignment's range.
func (a ShiftAssignment) Covers(day time.Time) bool {
	if day.Before(a.StartDate) {
		return false
	}
	if a.EndDate != nil && day.After(*a.EndDate) {
		return false
	}
	return true
}

// Overlaps tests interval intersection between [reqStart, reqEnd] and
// [a.StartDate, a.EndDate], treating a nil end as +infinity.
func (a ShiftAssignment) Overlaps(reqStart time.Time, reqEnd *time.Time) bool {
	if reqEnd != nil && reqEnd.Before(a.StartDate) {
		return false
	}
	if a.EndDate != nil && reqStart.After(*a.EndDate) {
		return false
	}
	return true
}
