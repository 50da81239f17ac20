package notification

import (
	"context"
)

// Repository is the append-only notification sink.
type Repository interface {
	Append(ctx context.Context, n Notification) error

	// ListByEmployee returns the employee's entries, newest first.
	ListByEmployee(ctx context.Context, employeeID string, limit int) ([]Notification, error)
}
