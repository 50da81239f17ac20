package shift

import "errors"

// Shift catalog domain errors
var (
	ErrShiftNotFound = errors.New("shift not found")
)
