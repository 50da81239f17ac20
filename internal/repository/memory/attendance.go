// Package memory provides in-memory repository implementations, used by
// tests and local development.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/clockwise-hr/timeclock-backend-go/internal/domain/attendance"
)

type AttendanceRepository struct {
	mu      sync.RWMutex
	records map[string]attendance.AttendanceRecord // by id
}

func NewAttendanceRepository() *AttendanceRepository {
	return &AttendanceRepository{records: make(map[string]attendance.AttendanceRecord)}
}

func (r *AttendanceRepository) Create(_ context.Context, record attendance.AttendanceRecord) (attendance.AttendanceRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[record.ID] = cloneRecord(record)
	return record, nil
}

func (r *AttendanceRepository) Update(_ context.Context, record attendance.AttendanceRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[record.ID]; !ok {
		return attendance.ErrAttendanceNotFound
	}
	r.records[record.ID] = cloneRecord(record)
	return nil
}

func (r *AttendanceRepository) GetByEmployeeAndDay(_ context.Context, employeeID string, day time.Time) (attendance.AttendanceRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	want := day.Format("2006-01-02")
	for _, rec := range r.records {
		if rec.EmployeeID == employeeID && rec.Day.Format("2006-01-02") == want {
			return cloneRecord(rec), nil
		}
	}
	return attendance.AttendanceRecord{}, attendance.ErrAttendanceNotFound
}

func (r *AttendanceRepository) ListByEmployee(_ context.Context, employeeID string) ([]attendance.AttendanceRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []attendance.AttendanceRecord
	for _, rec := range r.records {
		if rec.EmployeeID == employeeID {
			result = append(result, cloneRecord(rec))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Day.After(result[j].Day)
	})
	return result, nil
}

func (r *AttendanceRepository) ListByEmployeeBetween(_ context.Context, employeeID string, from, to time.Time) ([]attendance.AttendanceRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []attendance.AttendanceRecord
	for _, rec := range r.records {
		if rec.EmployeeID != employeeID {
			continue
		}
		if rec.Day.Before(from) || rec.Day.After(to) {
			continue
		}
		result = append(result, cloneRecord(rec))
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Day.Before(result[j].Day)
	})
	return result, nil
}

func cloneRecord(rec attendance.AttendanceRecord) attendance.AttendanceRecord {
	out := rec
	out.Punches = make([]attendance.Punch, len(rec.Punches))
	copy(out.Punches, rec.Punches)
	return out
}

type LatenessRuleRepository struct {
	mu    sync.RWMutex
	rules []attendance.LatenessRule
}

func NewLatenessRuleRepository() *LatenessRuleRepository {
	return &LatenessRuleRepository{}
}

// Save appends a rule. Rules are consulted in insertion order.
func (r *LatenessRuleRepository) Save(rule attendance.LatenessRule) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules = append(r.rules, rule)
}

// GetActive returns the first active rule, or nil.
func (r *LatenessRuleRepository) GetActive(_ context.Context) (*attendance.LatenessRule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rule := range r.rules {
		if rule.Active {
			out := rule
			return &out, nil
		}
	}
	return nil, nil
}
