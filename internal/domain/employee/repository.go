package employee

import (
	"context"
)

// EmployeeRepository is the read-only identity lookup.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
}
