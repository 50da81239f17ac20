package shift

import (
	"time"
)

// PunchPolicy controls how strictly punches are matched against the shift window.
type PunchPolicy string

const (
	PunchPolicyStandard PunchPolicy = "STANDARD"
	PunchPolicyFlexible PunchPolicy = "FLEXIBLE"
)

type ShiftDefinition struct {
	ID                          string
	Name                        string
	ShiftType                   string
	StartTime                   string // "HH:mm" local wall clock
	EndTime                     string // "HH:mm" local wall clock
	PunchPolicy                 PunchPolicy
	GraceInMinutes              int
	GraceOutMinutes             int
	RequiresApprovalForOvertime bool
	CreatedAt                   time.Time
	UpdatedAt                   time.Time
}

// IsOvernight reports whether the shift crosses midnight. Times are "HH:mm"
// strings, so lexical comparison is chronological comparison.
func (s ShiftDefinition) IsOvernight() bool {
	return s.EndTime <= s.StartTime
}

// StartOnDay projects the shift's wall-clock start time onto the given date.
func (s ShiftDefinition) StartOnDay(day time.Time) (time.Time, error) {
	clock, err := time.Parse("15:04", s.StartTime)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(
		day.Year(), day.Month(), day.Day(),
		clock.Hour(), clock.Minute(), 0, 0,
		day.Location(),
	), nil
}
