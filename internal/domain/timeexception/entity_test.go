package timeexception

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition_FullTable(t *testing.T) {
	t.Parallel()

	type pair struct{ from, to Status }
	allowed := map[pair]bool{
		{StatusOpen, StatusPending}:       true,
		{StatusOpen, StatusRejected}:      true,
		{StatusPending, StatusApproved}:   true,
		{StatusPending, StatusRejected}:   true,
		{StatusPending, StatusEscalated}:  true,
		{StatusEscalated, StatusApproved}: true,
		{StatusEscalated, StatusRejected}: true,
		{StatusApproved, StatusResolved}:  true,
	}

	// Every (from, to) pair, including self-transitions, must match the
	// table exactly; anything not listed above is illegal.
	for _, from := range AllStatuses() {
		for _, to := range AllStatuses() {
			want := allowed[pair{from, to}]
			assert.Equal(t, want, CanTransition(from, to),
				"transition %s -> %s", from, to)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	t.Parallel()

	assert.True(t, IsTerminal(StatusRejected))
	assert.True(t, IsTerminal(StatusResolved))

	assert.False(t, IsTerminal(StatusOpen))
	assert.False(t, IsTerminal(StatusPending))
	assert.False(t, IsTerminal(StatusEscalated))
	assert.False(t, IsTerminal(StatusApproved))
}

func TestFallbackRecordRef(t *testing.T) {
	t.Parallel()

	recordID := "rec-1"
	empty := ""

	assert.Equal(t, "rec-1", FallbackRecordRef("emp-1", &recordID))
	assert.Equal(t, "emp-1", FallbackRecordRef("emp-1", nil))
	assert.Equal(t, "emp-1", FallbackRecordRef("emp-1", &empty))
}

func TestInvalidTransitionError_Message(t *testing.T) {
	t.Parallel()

	err := &InvalidTransitionError{From: StatusOpen, To: StatusResolved}
	assert.Equal(t, "invalid exception status transition from OPEN to RESOLVED", err.Error())
}
