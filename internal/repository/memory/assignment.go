package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/clockwise-hr/timeclock-backend-go/internal/domain/assignment"
)

type AssignmentRepository struct {
	mu          sync.RWMutex
	assignments map[string]assignment.ShiftAssignment
}

func NewAssignmentRepository() *AssignmentRepository {
	return &AssignmentRepository{assignments: make(map[string]assignment.ShiftAssignment)}
}

func (r *AssignmentRepository) Create(_ context.Context, a assignment.ShiftAssignment) (assignment.ShiftAssignment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.assignments[a.ID] = a
	return a, nil
}

func (r *AssignmentRepository) GetByID(_ context.Context, id string) (assignment.ShiftAssignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.assignments[id]
	if !ok {
		return assignment.ShiftAssignment{}, assignment.ErrAssignmentNotFound
	}
	return a, nil
}

func (r *AssignmentRepository) Update(_ context.Context, a assignment.ShiftAssignment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.assignments[a.ID]; !ok {
		return assignment.ErrAssignmentNotFound
	}
	r.assignments[a.ID] = a
	return nil
}

func (r *AssignmentRepository) List(_ context.Context) ([]assignment.ShiftAssignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]assignment.ShiftAssignment, 0, len(r.assignments))
	for _, a := range r.assignments {
		result = append(result, a)
	}
	sortByStartDesc(result)
	return result, nil
}

func (r *AssignmentRepository) ListByEmployee(_ context.Context, employeeID string) ([]assignment.ShiftAssignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []assignment.ShiftAssignment
	for _, a := range r.assignments {
		if a.EmployeeID == employeeID {
			result = append(result, a)
		}
	}
	sortByStartDesc(result)
	return result, nil
}

func (r *AssignmentRepository) ListBlockingByEmployee(_ context.Context, employeeID string) ([]assignment.ShiftAssignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []assignment.ShiftAssignment
	for _, a := range r.assignments {
		if a.EmployeeID == employeeID && a.BlocksNewAssignments() {
			result = append(result, a)
		}
	}
	sortByStartDesc(result)
	return result, nil
}

func (r *AssignmentRepository) ListApprovedEndingBefore(_ context.Context, t time.Time) ([]assignment.ShiftAssignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []assignment.ShiftAssignment
	for _, a := range r.assignments {
		if a.Status == assignment.StatusApproved && a.EndDate != nil && a.EndDate.Before(t) {
			result = append(result, a)
		}
	}
	sortByStartDesc(result)
	return result, nil
}

func (r *AssignmentRepository) ListApprovedEndingBetween(_ context.Context, from, to time.Time) ([]assignment.ShiftAssignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []assignment.ShiftAssignment
	for _, a := range r.assignments {
		if a.Status != assignment.StatusApproved || a.EndDate == nil {
			continue
		}
		if a.EndDate.Before(from) || a.EndDate.After(to) {
			continue
		}
		result = append(result, a)
	}
	sortByStartDesc(result)
	return result, nil
}

func sortByStartDesc(assignments []assignment.ShiftAssignment) {
	sort.Slice(assignments, func(i, j int) bool {
		return assignments[i].StartDate.After(assignments[j].StartDate)
	})
}
