package shift

import (
	"github.com/clockwise-hr/timeclock-backend-go/internal/pkg/validator"
)

type CreateShiftRequest struct {
	Name                        string `json:"name"`
	ShiftType                   string `json:"shift_type"`
	StartTime                   string `json:"start_time"` // "HH:mm"
	EndTime                     string `json:"end_time"`   // "HH:mm"
	PunchPolicy                 string `json:"punch_policy"`
	GraceInMinutes              int    `json:"grace_in_minutes"`
	GraceOutMinutes             int    `json:"grace_out_minutes"`
	RequiresApprovalForOvertime bool   `json:"requires_approval_for_overtime"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsValidClockTime(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:mm format",
		})
	}

	if !validator.IsValidClockTime(r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:mm format",
		})
	}

	if r.GraceInMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "grace_in_minutes",
			Message: "grace_in_minutes must not be negative",
		})
	}

	if r.GraceOutMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "grace_out_minutes",
			Message: "grace_out_minutes must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateShiftRequest struct {
	Name                        *string `json:"name,omitempty"`
	ShiftType                   *string `json:"shift_type,omitempty"`
	StartTime                   *string `json:"start_time,omitempty"`
	EndTime                     *string `json:"end_time,omitempty"`
	PunchPolicy                 *string `json:"punch_policy,omitempty"`
	GraceInMinutes              *int    `json:"grace_in_minutes,omitempty"`
	GraceOutMinutes             *int    `json:"grace_out_minutes,omitempty"`
	RequiresApprovalForOvertime *bool   `json:"requires_approval_for_overtime,omitempty"`
}

func (r *UpdateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.StartTime != nil && !validator.IsValidClockTime(*r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:mm format",
		})
	}

	if r.EndTime != nil && !validator.IsValidClockTime(*r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:mm format",
		})
	}

	if r.GraceInMinutes != nil && *r.GraceInMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "grace_in_minutes",
			Message: "grace_in_minutes must not be negative",
		})
	}

	if r.GraceOutMinutes != nil && *r.GraceOutMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "grace_out_minutes",
			Message: "grace_out_minutes must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ShiftResponse struct {
	ID                          string `json:"id"`
	Name                        string `json:"name"`
	ShiftType                   string `json:"shift_type"`
	StartTime                   string `json:"start_time"`
	EndTime                     string `json:"end_time"`
	PunchPolicy                 string `json:"punch_policy"`
	GraceInMinutes              int    `json:"grace_in_minutes"`
	GraceOutMinutes             int    `json:"grace_out_minutes"`
	RequiresApprovalForOvertime bool   `json:"requires_approval_for_overtime"`
	IsOvernight                 bool   `json:"is_overnight"`
	CreatedAt                   string `json:"created_at"`
	UpdatedAt                   string `json:"updated_at"`
}
