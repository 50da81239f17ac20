package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/clockwise-hr/timeclock-backend-go/internal/domain/notification"
)

type NotificationRepository struct {
	mu      sync.RWMutex
	entries []notification.Notification
}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

func (r *NotificationRepository) Append(_ context.Context, n notification.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, n)
	return nil
}

func (r *NotificationRepository) ListByEmployee(_ context.Context, employeeID string, limit int) ([]notification.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []notification.Notification
	for _, n := range r.entries {
		if n.EmployeeID == employeeID {
			result = append(result, n)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// All returns every entry in arrival order. Test helper.
func (r *NotificationRepository) All() []notification.Notification {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]notification.Notification, len(r.entries))
	copy(out, r.entries)
	return out
}
