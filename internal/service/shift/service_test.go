package shift

import (
	"context"
	"testing"

	"github.com/clockwise-hr/timeclock-backend-go/internal/domain/shift"
	"github.com/clockwise-hr/timeclock-backend-go/internal/pkg/validator"
	"github.com/clockwise-hr/timeclock-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate_DefaultsPunchPolicy(t *testing.T) {
	t.Parallel()
	svc := NewShiftService(memory.NewShiftRepository())

	created, err := svc.Create(context.Background(), shift.CreateShiftRequest{
		Name:      "Day Shift",
		StartTime: "09:00",
		EndTime:   "17:00",
	})
	require.NoError(t, err)

	assert.Equal(t, string(shift.PunchPolicyStandard), created.PunchPolicy)
	assert.False(t, created.IsOvernight)
}

func TestCreate_OvernightShift(t *testing.T) {
	t.Parallel()
	svc := NewShiftService(memory.NewShiftRepository())

	created, err := svc.Create(context.Background(), shift.CreateShiftRequest{
		Name:      "Night Shift",
		StartTime: "22:00",
		EndTime:   "06:00",
	})
	require.NoError(t, err)

	assert.True(t, created.IsOvernight)
}

func TestCreate_ValidationFailures(t *testing.T) {
	t.Parallel()
	svc := NewShiftService(memory.NewShiftRepository())

	_, err := svc.Create(context.Background(), shift.CreateShiftRequest{
		Name:            "Broken",
		StartTime:       "9am",
		EndTime:         "17:00",
		GraceInMinutes:  -5,
		GraceOutMinutes: 0,
	})

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	details := validationErrs.ToMap()
	assert.Contains(t, details, "start_time")
	assert.Contains(t, details, "grace_in_minutes")
}

func TestUpdate_PatchesOnlyGivenFields(t *testing.T) {
	t.Parallel()
	svc := NewShiftService(memory.NewShiftRepository())
	ctx := context.Background()

	created, err := svc.Create(ctx, shift.CreateShiftRequest{
		Name:           "Day Shift",
		StartTime:      "09:00",
		EndTime:        "17:00",
		GraceInMinutes: 10,
	})
	require.NoError(t, err)

	newEnd := "18:00"
	updated, err := svc.Update(ctx, created.ID, shift.UpdateShiftRequest{EndTime: &newEnd})
	require.NoError(t, err)

	assert.Equal(t, "18:00", updated.EndTime)
	assert.Equal(t, "09:00", updated.StartTime)
	assert.Equal(t, 10, updated.GraceInMinutes)
}

func TestUpdate_UnknownShift(t *testing.T) {
	t.Parallel()
	svc := NewShiftService(memory.NewShiftRepository())

	name := "Renamed"
	_, err := svc.Update(context.Background(), "no-such-id", shift.UpdateShiftRequest{Name: &name})
	assert.ErrorIs(t, err, shift.ErrShiftNotFound)
}

func TestList_SortedByName(t *testing.T) {
	t.Parallel()
	svc := NewShiftService(memory.NewShiftRepository())
	ctx := context.Background()

	for _, name := range []string{"Night Shift", "Day Shift"} {
		_, err := svc.Create(ctx, shift.CreateShiftRequest{
			Name:      name,
			StartTime: "09:00",
			EndTime:   "17:00",
		})
		require.NoError(t, err)
	}

	shifts, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, shifts, 2)
	assert.Equal(t, "Day Shift", shifts[0].Name)
}
