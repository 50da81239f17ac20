package assignment

import "errors"

// Shift assignment domain errors
var (
	ErrAssignmentNotFound = errors.New("shift assignment not found")

	// ErrOverlappingAssignment is raised by the non-overlap invariant: an
	// employee may hold at most one PENDING or APPROVED assignment for any
	// given date.
	ErrOverlappingAssignment = errors.New("overlapping assignment exists")

	// ErrAssignmentNotPending guards every mutation that requires the
	// PENDING state (edit, approve, reject).
	ErrAssignmentNotPending = errors.New("assignment is not in PENDING status")
)
