package attendance

import (
	"time"
)

// PunchType is the direction of a punch.
type PunchType string

const (
	PunchIn  PunchType = "IN"
	PunchOut PunchType = "OUT"
)

// DayStatus is the validity state of an attendance day. The only legal
// transition is CLEAN -> FLAGGED; a flagged day never becomes clean again.
type DayStatus string

const (
	DayClean   DayStatus = "CLEAN"
	DayFlagged DayStatus = "FLAGGED"
)

// Punch is a single IN or OUT event. Punches are append-only and kept in
// arrival order, which is not necessarily chronological order of Time.
type Punch struct {
	Type PunchType `json:"type"`
	Time time.Time `json:"time"`
}

// AttendanceRecord is one employee's attendance for one calendar day.
type AttendanceRecord struct {
	ID                  string
	EmployeeID          string
	Day                 time.Time // normalized to midnight
	Punches             []Punch
	TotalWorkMinutes    int
	DayStatus           DayStatus
	FinalisedForPayroll bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Flag marks the day as invalid. One-way: nothing ever transitions a record
// back to CLEAN.
func (r *AttendanceRecord) Flag() {
	r.DayStatus = DayFlagged
}

// HasMissedPunch reports whether the punch sequence has ever been invalid.
func (r *AttendanceRecord) HasMissedPunch() bool {
	return r.DayStatus == DayFlagged
}

// SequenceValid scans the full punch list from the start, expecting IN and
// flipping the expectation after each valid punch.
func SequenceValid(punches []Punch) bool {
	expected := PunchIn
	for _, p := range punches {
		if p.Type != expected {
			return false
		}
		if expected == PunchIn {
			expected = PunchOut
		} else {
			expected = PunchIn
		}
	}
	return true
}

// WorkMinutes derives the day's total as the whole-minute span between the
// first and last punch. Multi-session days are not segmented.
func WorkMinutes(punches []Punch) int {
	if len(punches) < 2 {
		return 0
	}
	span := punches[len(punches)-1].Time.Sub(punches[0].Time)
	if span < 0 {
		return 0
	}
	return int(span / time.Minute)
}

// LatenessRule is the single active lateness configuration. If several rules
// exist, the first active one wins.
type LatenessRule struct {
	ID                 string
	Active             bool
	GracePeriodMinutes int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// DayOf normalizes a punch timestamp to its calendar day, keeping the
// timestamp's own location.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
