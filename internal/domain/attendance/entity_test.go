package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func punchAt(t PunchType, hour, min int) Punch {
	return Punch{Type: t, Time: time.Date(2026, 3, 2, hour, min, 0, 0, time.UTC)}
}

func TestSequenceValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		punches []Punch
		want    bool
	}{
		{"empty", nil, true},
		{"single in", []Punch{punchAt(PunchIn, 9, 0)}, true},
		{"in out", []Punch{punchAt(PunchIn, 9, 0), punchAt(PunchOut, 17, 0)}, true},
		{"in out in", []Punch{punchAt(PunchIn, 9, 0), punchAt(PunchOut, 12, 0), punchAt(PunchIn, 13, 0)}, true},
		{"starts with out", []Punch{punchAt(PunchOut, 9, 0)}, false},
		{"double in", []Punch{punchAt(PunchIn, 9, 0), punchAt(PunchIn, 10, 0)}, false},
		{"double out", []Punch{punchAt(PunchIn, 9, 0), punchAt(PunchOut, 12, 0), punchAt(PunchOut, 13, 0)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SequenceValid(tt.punches))
		})
	}
}

func TestWorkMinutes(t *testing.T) {
	t.Parallel()

	t.Run("empty and single punch yield zero", func(t *testing.T) {
		assert.Equal(t, 0, WorkMinutes(nil))
		assert.Equal(t, 0, WorkMinutes([]Punch{punchAt(PunchIn, 9, 0)}))
	})

	t.Run("full day span", func(t *testing.T) {
		punches := []Punch{punchAt(PunchIn, 9, 0), punchAt(PunchOut, 17, 0)}
		assert.Equal(t, 480, WorkMinutes(punches))
	})

	t.Run("midday break is not subtracted", func(t *testing.T) {
		punches := []Punch{
			punchAt(PunchIn, 9, 0),
			punchAt(PunchOut, 12, 0),
			punchAt(PunchIn, 13, 0),
			punchAt(PunchOut, 17, 0),
		}
		assert.Equal(t, 480, WorkMinutes(punches))
	})

	t.Run("partial minutes are floored", func(t *testing.T) {
		punches := []Punch{
			{Type: PunchIn, Time: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)},
			{Type: PunchOut, Time: time.Date(2026, 3, 2, 9, 1, 59, 0, time.UTC)},
		}
		assert.Equal(t, 1, WorkMinutes(punches))
	})

	t.Run("negative span yields zero", func(t *testing.T) {
		punches := []Punch{punchAt(PunchIn, 17, 0), punchAt(PunchOut, 9, 0)}
		assert.Equal(t, 0, WorkMinutes(punches))
	})
}

func TestFlag_IsSticky(t *testing.T) {
	t.Parallel()

	record := AttendanceRecord{DayStatus: DayClean}
	assert.False(t, record.HasMissedPunch())

	record.Flag()
	assert.True(t, record.HasMissedPunch())

	// Flagging again changes nothing; there is no path back to CLEAN.
	record.Flag()
	assert.Equal(t, DayFlagged, record.DayStatus)
}

func TestDayOf(t *testing.T) {
	t.Parallel()

	loc, _ := time.LoadLocation("Asia/Jakarta")
	punch := time.Date(2026, 3, 2, 23, 45, 12, 999, loc)

	day := DayOf(punch)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, loc), day)
	assert.Equal(t, loc, day.Location())
}
