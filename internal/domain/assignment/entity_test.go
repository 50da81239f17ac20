package assignment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func TestBlocksNewAssignments(t *testing.T) {
	t.Parallel()

	assert.True(t, ShiftAssignment{Status: StatusPending}.BlocksNewAssignments())
	assert.True(t, ShiftAssignment{Status: StatusApproved}.BlocksNewAssignments())
	assert.False(t, ShiftAssignment{Status: StatusCancelled}.BlocksNewAssignments())
	assert.False(t, ShiftAssignment{Status: StatusExpired}.BlocksNewAssignments())
}

func TestCovers(t *testing.T) {
	t.Parallel()

	bounded := ShiftAssignment{
		StartDate: date(2026, 3, 1),
		EndDate:   datePtr(2026, 3, 31),
	}
	openEnded := ShiftAssignment{StartDate: date(2026, 3, 1)}

	assert.True(t, bounded.Covers(date(2026, 3, 1)), "start date is inclusive")
	assert.True(t, bounded.Covers(date(2026, 3, 15)))
	assert.True(t, bounded.Covers(date(2026, 3, 31)), "end date is inclusive")
	assert.False(t, bounded.Covers(date(2026, 2, 28)))
	assert.False(t, bounded.Covers(date(2026, 4, 1)))

	assert.True(t, openEnded.Covers(date(2030, 1, 1)), "nil end date covers forever")
}

func TestOverlaps(t *testing.T) {
	t.Parallel()

	existing := ShiftAssignment{
		StartDate: date(2026, 3, 10),
		EndDate:   datePtr(2026, 3, 20),
	}

	tests := []struct {
		name     string
		reqStart time.Time
		reqEnd   *time.Time
		want     bool
	}{
		{"entirely before", date(2026, 3, 1), datePtr(2026, 3, 9), false},
		{"entirely after", date(2026, 3, 21), datePtr(2026, 3, 25), false},
		{"touching start date", date(2026, 3, 5), datePtr(2026, 3, 10), true},
		{"touching end date", date(2026, 3, 20), datePtr(2026, 3, 25), true},
		{"contained", date(2026, 3, 12), datePtr(2026, 3, 15), true},
		{"containing", date(2026, 3, 1), datePtr(2026, 3, 31), true},
		{"open-ended request starting before", date(2026, 3, 1), nil, true},
		{"open-ended request starting after", date(2026, 3, 21), nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, existing.Overlaps(tt.reqStart, tt.reqEnd))
		})
	}
}

func TestOverlaps_BothOpenEnded(t *testing.T) {
	t.Parallel()

	existing := ShiftAssignment{StartDate: date(2026, 3, 10)}

	// Two open-ended ranges always intersect, regardless of start order.
	assert.True(t, existing.Overlaps(date(2026, 1, 1), nil))
	assert.True(t, existing.Overlaps(date(2030, 1, 1), nil))
}
