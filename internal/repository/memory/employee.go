package memory

import (
	"context"
	"sync"

	"github.com/clockwise-hr/timeclock-backend-go/internal/domain/employee"
)

// EmployeeRepository is a read-only directory; Put exists to seed it.
type EmployeeRepository struct {
	mu        sync.RWMutex
	employees map[string]employee.Employee
}

func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{employees: make(map[string]employee.Employee)}
}

func (r *EmployeeRepository) Put(emp employee.Employee) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.employees[emp.ID] = emp
}

func (r *EmployeeRepository) GetByID(_ context.Context, id string) (employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	emp, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}
