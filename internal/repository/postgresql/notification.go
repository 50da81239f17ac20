package postgresql

import (
	"context"
	"fmt"

	"github.com/clockwise-hr/timeclock-backend-go/internal/domain/notification"
	"github.com/clockwise-hr/timeclock-backend-go/internal/pkg/database"
)

type notificationRepository struct {
	db *database.DB
}

func NewNotificationRepository(db *database.DB) notification.Repository {
	return &notificationRepository{db: db}
}

// Append implements notification.Repository.
func (r *notificationRepository) Append(ctx context.Context, n notification.Notification) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO notifications (id, employee_id, type, message, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := q.Exec(ctx, query, n.ID, n.EmployeeID, string(n.Type), n.Message, n.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to append notification: %w", err)
	}

	return nil
}

// ListByEmployee implements notification.Repository.
func (r *notificationRepository) ListByEmployee(ctx context.Context, employeeID string, limit int) ([]notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, type, message, created_at
		FROM notifications
		WHERE employee_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, employeeID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []notification.Notification
	for rows.Next() {
		var (
			n     notification.Notification
			nType string
		)
		if err := rows.Scan(&n.ID, &n.EmployeeID, &nType, &n.Message, &n.CreatedAt); err != nil {
			return nil, err
		}
		n.Type = notification.NotificationType(nType)
		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}
