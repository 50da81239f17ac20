package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/clockwise-hr/timeclock-backend-go/internal/domain/shift"
)

type ShiftRepository struct {
	mu     sync.RWMutex
	shifts map[string]shift.ShiftDefinition
}

func NewShiftRepository() *ShiftRepository {
	return &ShiftRepository{shifts: make(map[string]shift.ShiftDefinition)}
}

func (r *ShiftRepository) Create(_ context.Context, def shift.ShiftDefinition) (shift.ShiftDefinition, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shifts[def.ID] = def
	return def, nil
}

func (r *ShiftRepository) GetByID(_ context.Context, id string) (shift.ShiftDefinition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.shifts[id]
	if !ok {
		return shift.ShiftDefinition{}, shift.ErrShiftNotFound
	}
	return def, nil
}

func (r *ShiftRepository) List(_ context.Context) ([]shift.ShiftDefinition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]shift.ShiftDefinition, 0, len(r.shifts))
	for _, def := range r.shifts {
		result = append(result, def)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result, nil
}

func (r *ShiftRepository) Update(_ context.Context, def shift.ShiftDefinition) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.shifts[def.ID]; !ok {
		return shift.ErrShiftNotFound
	}
	r.shifts[def.ID] = def
	return nil
}
