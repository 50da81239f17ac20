package timeexception

import (
	"errors"
	"fmt"
)

// Time exception domain errors
var (
	ErrExceptionNotFound = errors.New("time exception not found")
)

// InvalidTransitionError is returned for a status change not in the legal
// transition table. The message names both states for auditability.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid exception status transition from %s to %s", e.From, e.To)
}
