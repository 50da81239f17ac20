package notification

import (
	"context"
	"testing"

	"github.com/clockwise-hr/timeclock-backend-go/internal/domain/notification"
	"github.com/clockwise-hr/timeclock-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotify_FlushedOnStop(t *testing.T) {
	t.Parallel()

	repo := memory.NewNotificationRepository()
	svc := NewNotificationService(repo, Config{WorkerCount: 1})

	for i := 0; i < 10; i++ {
		svc.Notify(context.Background(), "emp-1", notification.TypeExceptionCreated, "opened for review")
	}

	// Stop drains the queue, so afterwards every entry is persisted.
	svc.Stop()

	entries := repo.All()
	assert.Len(t, entries, 10)
	for _, n := range entries {
		assert.NotEmpty(t, n.ID)
		assert.Equal(t, "emp-1", n.EmployeeID)
		assert.False(t, n.CreatedAt.IsZero())
	}
}

func TestListForEmployee_ScopedAndCapped(t *testing.T) {
	t.Parallel()

	repo := memory.NewNotificationRepository()
	svc := NewNotificationService(repo, Config{WorkerCount: 1})

	for i := 0; i < 5; i++ {
		svc.Notify(context.Background(), "emp-1", notification.TypeAssignmentCreated, "awaiting approval")
	}
	svc.Notify(context.Background(), "emp-2", notification.TypeAssignmentCreated, "awaiting approval")
	svc.Stop()

	mine, err := svc.ListForEmployee(context.Background(), "emp-1", 3)
	require.NoError(t, err)
	assert.Len(t, mine, 3)

	// A nonsense limit falls back to the default instead of failing.
	all, err := svc.ListForEmployee(context.Background(), "emp-1", -1)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestStop_IsIdempotent(t *testing.T) {
	t.Parallel()

	svc := NewNotificationService(memory.NewNotificationRepository(), Config{})
	svc.Stop()
	svc.Stop()
}
