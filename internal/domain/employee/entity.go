package employee

import (
	"time"
)

// Employee is the engine's view of the identity directory: existence plus
// the organizational attributes snapshotted onto new assignments. The
// directory is never mutated from here.
type Employee struct {
	ID                  string
	Name                string
	PrimaryDepartmentID *string
	PrimaryPositionID   *string
	Status              string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
