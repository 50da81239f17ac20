package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/clockwise-hr/timeclock-backend-go/internal/domain/shift"
	"github.com/clockwise-hr/timeclock-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type shiftRepository struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepository{db: db}
}

const shiftColumns = `
	id, name, shift_type, start_time, end_time, punch_policy,
	grace_in_minutes, grace_out_minutes, requires_approval_for_overtime,
	created_at, updated_at
`

// Create implements shift.ShiftRepository.
func (r *shiftRepository) Create(ctx context.Context, s shift.ShiftDefinition) (shift.ShiftDefinition, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_definitions (` + shiftColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := q.Exec(ctx, query,
		s.ID, s.Name, s.ShiftType, s.StartTime, s.EndTime, string(s.PunchPolicy),
		s.GraceInMinutes, s.GraceOutMinutes, s.RequiresApprovalForOvertime,
		s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return shift.ShiftDefinition{}, fmt.Errorf("failed to create shift definition: %w", err)
	}

	return s, nil
}

// GetByID implements shift.ShiftRepository.
func (r *shiftRepository) GetByID(ctx context.Context, id string) (shift.ShiftDefinition, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shift_definitions
		WHERE id = $1
	`

	s, err := scanShift(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.ShiftDefinition{}, shift.ErrShiftNotFound
		}
		return shift.ShiftDefinition{}, err
	}
	return s, nil
}

// List implements shift.ShiftRepository.
func (r *shiftRepository) List(ctx context.Context) ([]shift.ShiftDefinition, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shift_definitions
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shifts []shift.ShiftDefinition
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return shifts, nil
}

// Update implements shift.ShiftRepository.
func (r *shiftRepository) Update(ctx context.Context, s shift.ShiftDefinition) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shift_definitions
		SET name = $1, shift_type = $2, start_time = $3, end_time = $4,
		    punch_policy = $5, grace_in_minutes = $6, grace_out_minutes = $7,
		    requires_approval_for_overtime = $8, updated_at = $9
		WHERE id = $10
	`

	tag, err := q.Exec(ctx, query,
		s.Name, s.ShiftType, s.StartTime, s.EndTime,
		string(s.PunchPolicy), s.GraceInMinutes, s.GraceOutMinutes,
		s.RequiresApprovalForOvertime, s.UpdatedAt, s.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update shift definition: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}

func scanShift(row pgx.Row) (shift.ShiftDefinition, error) {
	var (
		s      shift.ShiftDefinition
		policy string
	)

	err := row.Scan(
		&s.ID, &s.Name, &s.ShiftType, &s.StartTime, &s.EndTime, &policy,
		&s.GraceInMinutes, &s.GraceOutMinutes, &s.RequiresApprovalForOvertime,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return shift.ShiftDefinition{}, err
	}

	s.PunchPolicy = shift.PunchPolicy(policy)
	return s, nil
}
