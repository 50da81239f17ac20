package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/clockwise-hr/timeclock-backend-go/internal/domain/attendance"
	"github.com/clockwise-hr/timeclock-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepository) Create(ctx context.Context, record attendance.AttendanceRecord) (attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	punchesJSON, err := json.Marshal(record.Punches)
	if err != nil {
		return attendance.AttendanceRecord{}, fmt.Errorf("failed to marshal punches: %w", err)
	}

	query := `
		INSERT INTO attendance_records (
			id, employee_id, day, punches, total_work_minutes,
			day_status, finalised_for_payroll, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err = q.Exec(ctx, query,
		record.ID, record.EmployeeID, record.Day, punchesJSON,
		record.TotalWorkMinutes, string(record.DayStatus),
		record.FinalisedForPayroll, record.CreatedAt, record.UpdatedAt,
	)
	if err != nil {
		return attendance.AttendanceRecord{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return record, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepository) Update(ctx context.Context, record attendance.AttendanceRecord) error {
	q := GetQuerier(ctx, r.db)

	punchesJSON, err := json.Marshal(record.Punches)
	if err != nil {
		return fmt.Errorf("failed to marshal punches: %w", err)
	}

	query := `
		UPDATE attendance_records
		SET punches = $1, total_work_minutes = $2, day_status = $3,
		    finalised_for_payroll = $4, updated_at = $5
		WHERE id = $6
	`

	tag, err := q.Exec(ctx, query,
		punchesJSON, record.TotalWorkMinutes, string(record.DayStatus),
		record.FinalisedForPayroll, record.UpdatedAt, record.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// GetByEmployeeAndDay implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByEmployeeAndDay(ctx context.Context, employeeID string, day time.Time) (attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, day, punches, total_work_minutes,
		       day_status, finalised_for_payroll, created_at, updated_at
		FROM attendance_records
		WHERE employee_id = $1 AND day = $2
	`

	record, err := scanRecord(q.QueryRow(ctx, query, employeeID, day))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceRecord{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceRecord{}, err
	}
	return record, nil
}

// ListByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.AttendanceRecord, error) {
	query := `
		SELECT id, employee_id, day, punches, total_work_minutes,
		       day_status, finalised_for_payroll, created_at, updated_at
		FROM attendance_records
		WHERE employee_id = $1
		ORDER BY day DESC
	`
	return r.queryRecords(ctx, query, employeeID)
}

// ListByEmployeeBetween implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.AttendanceRecord, error) {
	query := `
		SELECT id, employee_id, day, punches, total_work_minutes,
		       day_status, finalised_for_payroll, created_at, updated_at
		FROM attendance_records
		WHERE employee_id = $1 AND day BETWEEN $2 AND $3
		ORDER BY day
	`
	return r.queryRecords(ctx, query, employeeID, from, to)
}

func (r *attendanceRepository) queryRecords(ctx context.Context, query string, args ...interface{}) ([]attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []attendance.AttendanceRecord
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func scanRecord(row pgx.Row) (attendance.AttendanceRecord, error) {
	var (
		record      attendance.AttendanceRecord
		punchesJSON []byte
		dayStatus   string
	)

	err := row.Scan(
		&record.ID, &record.EmployeeID, &record.Day, &punchesJSON,
		&record.TotalWorkMinutes, &dayStatus,
		&record.FinalisedForPayroll, &record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		return attendance.AttendanceRecord{}, err
	}

	record.DayStatus = attendance.DayStatus(dayStatus)
	if len(punchesJSON) > 0 {
		if err := json.Unmarshal(punchesJSON, &record.Punches); err != nil {
			return attendance.AttendanceRecord{}, fmt.Errorf("failed to unmarshal punches: %w", err)
		}
	}

	return record, nil
}

type latenessRuleRepository struct {
	db *database.DB
}

func NewLatenessRuleRepository(db *database.DB) attendance.LatenessRuleRepository {
	return &latenessRuleRepository{db: db}
}

// GetActive implements attendance.LatenessRuleRepository. First active rule
// wins; nil when no rule is active.
func (r *latenessRuleRepository) GetActive(ctx context.Context) (*attendance.LatenessRule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, active, grace_period_minutes, created_at, updated_at
		FROM lateness_rules
		WHERE active = TRUE
		ORDER BY created_at
		LIMIT 1
	`

	var rule attendance.LatenessRule
	err := q.QueryRow(ctx, query).Scan(
		&rule.ID, &rule.Active, &rule.GracePeriodMinutes,
		&rule.CreatedAt, &rule.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active lateness rule: %w", err)
	}

	return &rule, nil
}
