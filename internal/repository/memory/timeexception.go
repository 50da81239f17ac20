package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/clockwise-hr/timeclock-backend-go/internal/domain/timeexception"
)

type ExceptionRepository struct {
	mu         sync.RWMutex
	exceptions map[string]timeexception.TimeException
}

func NewExceptionRepository() *ExceptionRepository {
	return &ExceptionRepository{exceptions: make(map[string]timeexception.TimeException)}
}

func (r *ExceptionRepository) Create(_ context.Context, exc timeexception.TimeException) (timeexception.TimeException, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.exceptions[exc.ID] = exc
	return exc, nil
}

func (r *ExceptionRepository) GetByID(_ context.Context, id string) (timeexception.TimeException, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	exc, ok := r.exceptions[id]
	if !ok {
		return timeexception.TimeException{}, timeexception.ErrExceptionNotFound
	}
	return exc, nil
}

func (r *ExceptionRepository) Update(_ context.Context, exc timeexception.TimeException) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.exceptions[exc.ID]; !ok {
		return timeexception.ErrExceptionNotFound
	}
	r.exceptions[exc.ID] = exc
	return nil
}

func (r *ExceptionRepository) List(_ context.Context, filter timeexception.ExceptionFilter) ([]timeexception.TimeException, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []timeexception.TimeException
	for _, exc := range r.exceptions {
		if filter.Status != nil && exc.Status != *filter.Status {
			continue
		}
		if filter.EmployeeID != nil && exc.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.AssignedTo != nil && exc.AssignedTo != *filter.AssignedTo {
			continue
		}
		matched = append(matched, exc)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	if filter.Skip >= len(matched) {
		return nil, nil
	}
	matched = matched[filter.Skip:]
	if filter.Limit > 0 && len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

func (r *ExceptionRepository) ListPendingUpdatedBefore(_ context.Context, cutoff time.Time) ([]timeexception.TimeException, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []timeexception.TimeException
	for _, exc := range r.exceptions {
		if exc.Status == timeexception.StatusPending && !exc.UpdatedAt.After(cutoff) {
			result = append(result, exc)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].UpdatedAt.Before(result[j].UpdatedAt)
	})
	return result, nil
}

func (r *ExceptionRepository) CountUnresolvedByEmployee(_ context.Context, employeeID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	count := 0
	for _, exc := range r.exceptions {
		if exc.EmployeeID == employeeID && !timeexception.IsTerminal(exc.Status) {
			count++
		}
	}
	return count, nil
}
