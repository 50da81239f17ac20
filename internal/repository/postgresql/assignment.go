package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clockwise-hr/timeclock-backend-go/internal/domain/assignment"
	"github.com/clockwise-hr/timeclock-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type assignmentRepository struct {
	db *database.DB
}

func NewAssignmentRepository(db *database.DB) assignment.AssignmentRepository {
	return &assignmentRepository{db: db}
}

const assignmentColumns = `
	id, employee_id, shift_id, department_id, position_id,
	start_date, end_date, status, created_at, updated_at
`

// Create implements assignment.AssignmentRepository.
func (r *assignmentRepository) Create(ctx context.Context, a assignment.ShiftAssignment) (assignment.ShiftAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_assignments (` + assignmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := q.Exec(ctx, query,
		a.ID, a.EmployeeID, a.ShiftID, a.DepartmentID, a.PositionID,
		a.StartDate, a.EndDate, string(a.Status), a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return assignment.ShiftAssignment{}, fmt.Errorf("failed to create assignment: %w", err)
	}

	return a, nil
}

// GetByID implements assignment.AssignmentRepository.
func (r *assignmentRepository) GetByID(ctx context.Context, id string) (assignment.ShiftAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + assignmentColumns + `
		FROM shift_assignments
		WHERE id = $1
	`

	a, err := scanAssignment(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return assignment.ShiftAssignment{}, assignment.ErrAssignmentNotFound
		}
		return assignment.ShiftAssignment{}, err
	}
	return a, nil
}

// Update implements assignment.AssignmentRepository.
func (r *assignmentRepository) Update(ctx context.Context, a assignment.ShiftAssignment) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shift_assignments
		SET shift_id = $1, department_id = $2, position_id = $3,
		    start_date = $4, end_date = $5, status = $6, updated_at = $7
		WHERE id = $8
	`

	tag, err := q.Exec(ctx, query,
		a.ShiftID, a.DepartmentID, a.PositionID,
		a.StartDate, a.EndDate, string(a.Status), a.UpdatedAt, a.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return assignment.ErrAssignmentNotFound
	}

	return nil
}

// List implements assignment.AssignmentRepository.
func (r *assignmentRepository) List(ctx context.Context) ([]assignment.ShiftAssignment, error) {
	query := `
		SELECT ` + assignmentColumns + `
		FROM shift_assignments
		ORDER BY start_date DESC
	`
	return r.queryAssignments(ctx, query)
}

// ListByEmployee implements assignment.AssignmentRepository.
func (r *assignmentRepository) ListByEmployee(ctx context.Context, employeeID string) ([]assignment.ShiftAssignment, error) {
	query := `
		SELECT ` + assignmentColumns + `
		FROM shift_assignments
		WHERE employee_id = $1
		ORDER BY start_date DESC
	`
	return r.queryAssignments(ctx, query, employeeID)
}

// ListBlockingByEmployee implements assignment.AssignmentRepository.
func (r *assignmentRepository) ListBlockingByEmployee(ctx context.Context, employeeID string) ([]assignment.ShiftAssignment, error) {
	query := `
		SELECT ` + assignmentColumns + `
		FROM shift_assignments
		WHERE employee_id = $1 AND status IN ('PENDING', 'APPROVED')
		ORDER BY start_date DESC
	`
	return r.queryAssignments(ctx, query, employeeID)
}

// ListApprovedEndingBefore implements assignment.AssignmentRepository.
func (r *assignmentRepository) ListApprovedEndingBefore(ctx context.Context, t time.Time) ([]assignment.ShiftAssignment, error) {
	query := `
		SELECT ` + assignmentColumns + `
		FROM shift_assignments
		WHERE status = 'APPROVED' AND end_date IS NOT NULL AND end_date < $1
		ORDER BY end_date
	`
	return r.queryAssignments(ctx, query, t)
}

// ListApprovedEndingBetween implements assignment.AssignmentRepository.
func (r *assignmentRepository) ListApprovedEndingBetween(ctx context.Context, from, to time.Time) ([]assignment.ShiftAssignment, error) {
	query := `
		SELECT ` + assignmentColumns + `
		FROM shift_assignments
		WHERE status = 'APPROVED' AND end_date BETWEEN $1 AND $2
		ORDER BY end_date
	`
	return r.queryAssignments(ctx, query, from, to)
}

func (r *assignmentRepository) queryAssignments(ctx context.Context, query string, args ...interface{}) ([]assignment.ShiftAssignment, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []assignment.ShiftAssignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}

func scanAssignment(row pgx.Row) (assignment.ShiftAssignment, error) {
	var (
		a      assignment.ShiftAssignment
		status string
	)

	err := row.Scan(
		&a.ID, &a.EmployeeID, &a.ShiftID, &a.DepartmentID, &a.PositionID,
		&a.StartDate, &a.EndDate, &status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return assignment.ShiftAssignment{}, err
	}

	a.Status = assignment.Status(status)
	return a, nil
}
