package notification

import (
	"context"
)

// Service writes human-readable events to the sink. Writes are best-effort:
// a sink failure is logged and suppressed, never surfaced to the caller,
// because the triggering mutation has already succeeded.
type Service interface {
	Notify(ctx context.Context, employeeID string, t NotificationType, message string)
	ListForEmployee(ctx context.Context, employeeID string, limit int) ([]Notification, error)
	Stop()
}
