package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clockwise-hr/timeclock-backend-go/internal/domain/timeexception"
	"github.com/clockwise-hr/timeclock-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type exceptionRepository struct {
	db *database.DB
}

func NewExceptionRepository(db *database.DB) timeexception.ExceptionRepository {
	return &exceptionRepository{db: db}
}

const exceptionColumns = `
	id, employee_id, attendance_record_id, assigned_to, type, reason,
	status, reviewed_by, review_comment, synced, synced_at,
	created_at, updated_at
`

// Create implements timeexception.ExceptionRepository.
func (r *exceptionRepository) Create(ctx context.Context, exc timeexception.TimeException) (timeexception.TimeException, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO time_exceptions (` + exceptionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := q.Exec(ctx, query,
		exc.ID, exc.EmployeeID, exc.AttendanceRecordID, exc.AssignedTo,
		string(exc.Type), exc.Reason, string(exc.Status),
		exc.ReviewedBy, exc.ReviewComment, exc.Synced, exc.SyncedAt,
		exc.CreatedAt, exc.UpdatedAt,
	)
	if err != nil {
		return timeexception.TimeException{}, fmt.Errorf("failed to create time exception: %w", err)
	}

	return exc, nil
}

// GetByID implements timeexception.ExceptionRepository.
func (r *exceptionRepository) GetByID(ctx context.Context, id string) (timeexception.TimeException, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + exceptionColumns + `
		FROM time_exceptions
		WHERE id = $1
	`

	exc, err := scanException(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timeexception.TimeException{}, timeexception.ErrExceptionNotFound
		}
		return timeexception.TimeException{}, err
	}
	return exc, nil
}

// Update implements timeexception.ExceptionRepository.
func (r *exceptionRepository) Update(ctx context.Context, exc timeexception.TimeException) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE time_exceptions
		SET assigned_to = $1, status = $2, reviewed_by = $3,
		    review_comment = $4, synced = $5, synced_at = $6, updated_at = $7
		WHERE id = $8
	`

	tag, err := q.Exec(ctx, query,
		exc.AssignedTo, string(exc.Status), exc.ReviewedBy,
		exc.ReviewComment, exc.Synced, exc.SyncedAt, exc.UpdatedAt, exc.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update time exception: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timeexception.ErrExceptionNotFound
	}

	return nil
}

// List implements timeexception.ExceptionRepository.
func (r *exceptionRepository) List(ctx context.Context, filter timeexception.ExceptionFilter) ([]timeexception.TimeException, error) {
	query := `
		SELECT ` + exceptionColumns + `
		FROM time_exceptions
		WHERE 1=1
	`

	var args []interface{}
	argPos := 1

	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argPos)
		args = append(args, string(*filter.Status))
		argPos++
	}
	if filter.EmployeeID != nil {
		query += fmt.Sprintf(" AND employee_id = $%d", argPos)
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.AssignedTo != nil {
		query += fmt.Sprintf(" AND assigned_to = $%d", argPos)
		args = append(args, *filter.AssignedTo)
		argPos++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, filter.Limit, filter.Skip)

	return r.queryExceptions(ctx, query, args...)
}

// ListPendingUpdatedBefore implements timeexception.ExceptionRepository.
func (r *exceptionRepository) ListPendingUpdatedBefore(ctx context.Context, cutoff time.Time) ([]timeexception.TimeException, error) {
	query := `
		SELECT ` + exceptionColumns + `
		FROM time_exceptions
		WHERE status = 'PENDING' AND updated_at <= $1
		ORDER BY updated_at
	`
	return r.queryExceptions(ctx, query, cutoff)
}

// CountUnresolvedByEmployee implements timeexception.ExceptionRepository.
func (r *exceptionRepository) CountUnresolvedByEmployee(ctx context.Context, employeeID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM time_exceptions
		WHERE employee_id = $1 AND status NOT IN ('REJECTED', 'RESOLVED')
	`

	var count int
	if err := q.QueryRow(ctx, query, employeeID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count unresolved exceptions: %w", err)
	}
	return count, nil
}

func (r *exceptionRepository) queryExceptions(ctx context.Context, query string, args ...interface{}) ([]timeexception.TimeException, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exceptions []timeexception.TimeException
	for rows.Next() {
		exc, err := scanException(rows)
		if err != nil {
			return nil, err
		}
		exceptions = append(exceptions, exc)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return exceptions, nil
}

func scanException(row pgx.Row) (timeexception.TimeException, error) {
	var (
		exc     timeexception.TimeException
		excType string
		status  string
	)

	err := row.Scan(
		&exc.ID, &exc.EmployeeID, &exc.AttendanceRecordID, &exc.AssignedTo,
		&excType, &exc.Reason, &status,
		&exc.ReviewedBy, &exc.ReviewComment, &exc.Synced, &exc.SyncedAt,
		&exc.CreatedAt, &exc.UpdatedAt,
	)
	if err != nil {
		return timeexception.TimeException{}, err
	}

	exc.Type = timeexception.Type(excType)
	exc.Status = timeexception.Status(status)
	return exc, nil
}
