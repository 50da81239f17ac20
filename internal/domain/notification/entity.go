package notification

import (
	"time"
)

// NotificationType tags the event a sink entry describes.
type NotificationType string

const (
	TypeExceptionCreated       NotificationType = "EXCEPTION_CREATED"
	TypeExceptionStatusChanged NotificationType = "EXCEPTION_STATUS_CHANGED"
	TypeExceptionEscalated     NotificationType = "EXCEPTION_ESCALATED"
	TypeAssignmentCreated      NotificationType = "ASSIGNMENT_CREATED"
	TypeAssignmentApproved     NotificationType = "ASSIGNMENT_APPROVED"
	TypeAssignmentRejected     NotificationType = "ASSIGNMENT_REJECTED"
	TypeAssignmentExpired      NotificationType = "ASSIGNMENT_EXPIRED"
	TypeAssignmentExpiring     NotificationType = "ASSIGNMENT_EXPIRING_SOON"
)

// Notification is one entry in the append-only sink. Delivery and fan-out
// are another system's concern.
type Notification struct {
	ID         string
	EmployeeID string
	Type       NotificationType
	Message    string
	CreatedAt  time.Time
}
