package timeexception

import (
	"github.com/clockwise-hr/timeclock-backend-go/internal/pkg/validator"
)

type CreateExceptionRequest struct {
	EmployeeID         string  `json:"employee_id"`
	Type               Type    `json:"type"`
	Reason             string  `json:"reason,omitempty"`
	AttendanceRecordID *string `json:"attendance_record_id,omitempty"`
	AssignedTo         *string `json:"assigned_to,omitempty"`
}

func (r *CreateExceptionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(string(r.Type)) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateStatusRequest struct {
	Status     Status  `json:"status"`
	ReviewerID *string `json:"reviewer_id,omitempty"`
	Comment    *string `json:"comment,omitempty"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	known := false
	for _, s := range AllStatuses() {
		if r.Status == s {
			known = true
			break
		}
	}
	if !known {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is not a recognized exception status",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ExceptionFilter struct {
	Status     *Status `json:"status,omitempty"`
	EmployeeID *string `json:"employee_id,omitempty"`
	AssignedTo *string `json:"assigned_to,omitempty"`

	Limit int `json:"limit"`
	Skip  int `json:"skip"`
}

func (f *ExceptionFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		f.Limit = 100
	}

	if f.Skip < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "skip",
			Message: "skip must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ExceptionResponse struct {
	ID                 string  `json:"id"`
	EmployeeID         string  `json:"employee_id"`
	AttendanceRecordID string  `json:"attendance_record_id"`
	AssignedTo         string  `json:"assigned_to"`
	Type               string  `json:"type"`
	Reason             string  `json:"reason,omitempty"`
	Status             string  `json:"status"`
	ReviewedBy         *string `json:"reviewed_by,omitempty"`
	ReviewComment      *string `json:"review_comment,omitempty"`
	Synced             bool    `json:"synced"`
	CreatedAt          string  `json:"created_at"`
	UpdatedAt          string  `json:"updated_at"`
}

// SweepReport summarizes one escalation run.
type SweepReport struct {
	Eligible  int `json:"eligible"`
	Escalated int `json:"escalated"`
}
