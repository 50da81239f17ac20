package attendance

import (
	"time"

	"github.com/clockwise-hr/timeclock-backend-go/internal/pkg/validator"
)

type RecordPunchRequest struct {
	EmployeeID string    `json:"employee_id"`
	PunchType  PunchType `json:"punch_type"`
	Time       time.Time `json:"time"`
}

func (r *RecordPunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.PunchType != PunchIn && r.PunchType != PunchOut {
		errs = append(errs, validator.ValidationError{
			Field:   "punch_type",
			Message: "punch_type must be IN or OUT",
		})
	}

	if r.Time.IsZero() {
		errs = append(errs, validator.ValidationError{
			Field:   "time",
			Message: "time is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// RecordPunchResult is the outcome of a punch. Warning is set when the punch
// broke the IN/OUT sequence; the record itself is still returned.
type RecordPunchResult struct {
	Record  AttendanceRecord `json:"record"`
	Warning string           `json:"warning,omitempty"`
}

type AttendanceResponse struct {
	ID                  string  `json:"id"`
	EmployeeID          string  `json:"employee_id"`
	Day                 string  `json:"day"`
	Punches             []Punch `json:"punches"`
	TotalWorkMinutes    int     `json:"total_work_minutes"`
	DayStatus           string  `json:"day_status"`
	FinalisedForPayroll bool    `json:"finalised_for_payroll"`
	Warning             string  `json:"warning,omitempty"`
}
