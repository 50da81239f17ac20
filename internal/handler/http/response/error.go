package response

import (
	"errors"
	"net/http"

	"github.com/clockwise-hr/timeclock-backend-go/internal/domain/assignment"
	"github.com/clockwise-hr/timeclock-backend-go/internal/domain/attendance"
	"github.com/clockwise-hr/timeclock-backend-go/internal/domain/employee"
	"github.com/clockwise-hr/timeclock-backend-go/internal/domain/shift"
	"github.com/clockwise-hr/timeclock-backend-go/internal/domain/timeexception"
	"github.com/clockwise-hr/timeclock-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Illegal exception status transitions carry both states in the message
	var transitionErr *timeexception.InvalidTransitionError
	if errors.As(err, &transitionErr) {
		Conflict(w, transitionErr.Error())
		return
	}

	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Time exception domain errors
	case errors.Is(err, timeexception.ErrExceptionNotFound):
		NotFound(w, "Time exception not found")

	// Assignment domain errors
	case errors.Is(err, assignment.ErrAssignmentNotFound):
		NotFound(w, "Shift assignment not found")
	case errors.Is(err, assignment.ErrOverlappingAssignment):
		Conflict(w, "Employee already has an assignment covering this period")
	case errors.Is(err, assignment.ErrAssignmentNotPending):
		Conflict(w, "Assignment is not in PENDING status")

	// Shift catalog domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")

	// Employee directory errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
