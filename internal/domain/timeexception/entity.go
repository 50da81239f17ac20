package timeexception

import (
	"time"
)

// Status is the review state of a time exception.
type Status string

const (
	StatusOpen      Status = "OPEN"
	StatusPending   Status = "PENDING"
	StatusEscalated Status = "ESCALATED"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
	StatusResolved  Status = "RESOLVED"
)

// Type classifies what needs human attention.
type Type string

const (
	TypeMissedPunch      Type = "MISSED_PUNCH"
	TypeLate             Type = "LATE"
	TypeManualAdjustment Type = "MANUAL_ADJUSTMENT"
)

// legalTransitions is the full transition table. Absence means illegal.
// REJECTED and RESOLVED are terminal.
var legalTransitions = map[Status][]Status{
	StatusOpen:      {StatusPending, StatusRejected},
	StatusPending:   {StatusApproved, StatusRejected, StatusEscalated},
	StatusEscalated: {StatusApproved, StatusRejected},
	StatusApproved:  {StatusResolved},
}

// CanTransition reports whether from -> to is in the legal transition table.
func CanTransition(from, to Status) bool {
	for _, next := range legalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is possible.
func IsTerminal(s Status) bool {
	return len(legalTransitions[s]) == 0
}

// AllStatuses lists every status, for validation and exhaustive tests.
func AllStatuses() []Status {
	return []Status{
		StatusOpen,
		StatusPending,
		StatusEscalated,
		StatusApproved,
		StatusRejected,
		StatusResolved,
	}
}

// TimeException is a tracked finding requiring human resolution. Exceptions
// are never deleted; they terminate at REJECTED or RESOLVED.
type TimeException struct {
	ID                 string
	EmployeeID         string
	AttendanceRecordID string
	AssignedTo         string
	Type               Type
	Reason             string
	Status             Status
	ReviewedBy         *string
	ReviewComment      *string
	Synced             bool
	SyncedAt           *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// FallbackRecordRef resolves the attendance record reference for a new
// exception. When no record id is supplied the employee id is used instead.
// This mirrors long-standing behavior that downstream consumers rely on;
// change it here and nowhere else.
func FallbackRecordRef(employeeID string, recordID *string) string {
	if recordID != nil && *recordID != "" {
		return *recordID
	}
	return employeeID
}
