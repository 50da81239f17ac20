package assignment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/clockwise-hr/timeclock-backend-go/internal/domain/assignment"
	"github.com/clockwise-hr/timeclock-backend-go/internal/domain/employee"
	"github.com/clockwise-hr/timeclock-backend-go/internal/domain/notification"
	"github.com/clockwise-hr/timeclock-backend-go/internal/domain/shift"
	"github.com/clockwise-hr/timeclock-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
)

type AssignmentServiceImpl struct {
	assignmentRepo  assignment.AssignmentRepository
	employeeRepo    employee.EmployeeRepository
	shiftRepo       shift.ShiftRepository
	notificationSvc notification.Service
}

func NewAssignmentService(
	assignmentRepo assignment.AssignmentRepository,
	employeeRepo employee.EmployeeRepository,
	shiftRepo shift.ShiftRepository,
	notificationSvc notification.Service,
) assignment.AssignmentService {
	return &AssignmentServiceImpl{
		assignmentRepo:  assignmentRepo,
		employeeRepo:    employeeRepo,
		shiftRepo:       shiftRepo,
		notificationSvc: notificationSvc,
	}
}

// Create implements assignment.AssignmentService.
func (s *AssignmentServiceImpl) Create(ctx context.Context, req assignment.CreateAssignmentRequest) (assignment.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return assignment.AssignmentResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return assignment.AssignmentResponse{}, err
	}

	if _, err := s.shiftRepo.GetByID(ctx, req.ShiftID); err != nil {
		return assignment.AssignmentResponse{}, err
	}

	departmentID, positionID, err := snapshotOrgAttributes(emp)
	if err != nil {
		return assignment.AssignmentResponse{}, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	var endDate *time.Time
	if req.EndDate != nil {
		d, _ := time.Parse("2006-01-02", *req.EndDate)
		endDate = &d
	}

	existing, err := s.assignmentRepo.ListBlockingByEmployee(ctx, req.EmployeeID)
	if err != nil {
		return assignment.AssignmentResponse{}, fmt.Errorf("failed to load existing assignments: %w", err)
	}
	for _, a := range existing {
		if a.Overlaps(startDate, endDate) {
			return assignment.AssignmentResponse{}, assignment.ErrOverlappingAssignment
		}
	}

	now := time.Now().UTC()
	created, err := s.assignmentRepo.Create(ctx, assignment.ShiftAssignment{
		ID:           uuid.New().String(),
		EmployeeID:   req.EmployeeID,
		ShiftID:      req.ShiftID,
		DepartmentID: departmentID,
		PositionID:   positionID,
		StartDate:    startDate,
		EndDate:      endDate,
		Status:       assignment.StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return assignment.AssignmentResponse{}, fmt.Errorf("failed to create assignment: %w", err)
	}

	s.notificationSvc.Notify(ctx, created.EmployeeID, notification.TypeAssignmentCreated,
		fmt.Sprintf("A shift assignment starting %s is awaiting approval", req.StartDate))

	return toResponse(created), nil
}

// snapshotOrgAttributes copies the employee's primary department and position
// onto the new assignment. A malformed department reference is a validation
// failure; a malformed position is dropped.
func snapshotOrgAttributes(emp employee.Employee) (*string, *string, error) {
	var departmentID, positionID *string

	if emp.PrimaryDepartmentID != nil && *emp.PrimaryDepartmentID != "" {
		if !validator.IsValidUUID(*emp.PrimaryDepartmentID) {
			return nil, nil, validator.ValidationErrors{{
				Field:   "department_id",
				Message: "employee carries a malformed department reference",
			}}
		}
		departmentID = emp.PrimaryDepartmentID
	}

	if emp.PrimaryPositionID != nil && validator.IsValidUUID(*emp.PrimaryPositionID) {
		positionID = emp.PrimaryPositionID
	}

	return departmentID, positionID, nil
}

// GetByID implements assignment.AssignmentService.
func (s *AssignmentServiceImpl) GetByID(ctx context.Context, id string) (assignment.AssignmentResponse, error) {
	a, err := s.assignmentRepo.GetByID(ctx, id)
	if err != nil {
		return assignment.AssignmentResponse{}, err
	}
	return toResponse(a), nil
}

// List implements assignment.AssignmentService.
func (s *AssignmentServiceImpl) List(ctx context.Context) ([]assignment.AssignmentResponse, error) {
	assignments, err := s.assignmentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	return toResponses(assignments), nil
}

// FindForEmployee implements assignment.AssignmentService.
func (s *AssignmentServiceImpl) FindForEmployee(ctx context.Context, employeeID string) ([]assignment.AssignmentResponse, error) {
	assignments, err := s.assignmentRepo.ListBlockingByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments for employee: %w", err)
	}
	return toResponses(assignments), nil
}

// Update implements assignment.AssignmentService. Only PENDING assignments
// are editable.
func (s *AssignmentServiceImpl) Update(ctx context.Context, id string, req assignment.UpdateAssignmentRequest) (assignment.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return assignment.AssignmentResponse{}, err
	}

	a, err := s.assignmentRepo.GetByID(ctx, id)
	if err != nil {
		return assignment.AssignmentResponse{}, err
	}
	if a.Status != assignment.StatusPending {
		return assignment.AssignmentResponse{}, assignment.ErrAssignmentNotPending
	}

	if req.ShiftID != nil {
		if _, err := s.shiftRepo.GetByID(ctx, *req.ShiftID); err != nil {
			return assignment.AssignmentResponse{}, err
		}
		a.ShiftID = *req.ShiftID
	}
	if req.StartDate != nil {
		d, _ := time.Parse("2006-01-02", *req.StartDate)
		a.StartDate = d
	}
	if req.EndDate != nil {
		d, _ := time.Parse("2006-01-02", *req.EndDate)
		a.EndDate = &d
	}
	if req.DepartmentID != nil {
		a.DepartmentID = req.DepartmentID
	}
	if req.PositionID != nil {
		a.PositionID = req.PositionID
	}

	// A date edit can push the assignment into another one's range, so the
	// non-overlap rule is re-checked against the employee's other assignments.
	if req.StartDate != nil || req.EndDate != nil {
		others, err := s.assignmentRepo.ListBlockingByEmployee(ctx, a.EmployeeID)
		if err != nil {
			return assignment.AssignmentResponse{}, fmt.Errorf("failed to load existing assignments: %w", err)
		}
		for _, other := range others {
			if other.ID == a.ID {
				continue
			}
			if other.Overlaps(a.StartDate, a.EndDate) {
				return assignment.AssignmentResponse{}, assignment.ErrOverlappingAssignment
			}
		}
	}
	a.UpdatedAt = time.Now().UTC()

	if err := s.assignmentRepo.Update(ctx, a); err != nil {
		return assignment.AssignmentResponse{}, fmt.Errorf("failed to update assignment: %w", err)
	}

	return toResponse(a), nil
}

// Approve implements assignment.AssignmentService.
func (s *AssignmentServiceImpl) Approve(ctx context.Context, id string) (assignment.AssignmentResponse, error) {
	return s.decide(ctx, id, assignment.StatusApproved,
		notification.TypeAssignmentApproved, "Your shift assignment has been approved")
}

// Reject implements assignment.AssignmentService.
func (s *AssignmentServiceImpl) Reject(ctx context.Context, id string) (assignment.AssignmentResponse, error) {
	return s.decide(ctx, id, assignment.StatusCancelled,
		notification.TypeAssignmentRejected, "Your shift assignment has been rejected")
}

func (s *AssignmentServiceImpl) decide(ctx context.Context, id string, target assignment.Status, notifType notification.NotificationType, message string) (assignment.AssignmentResponse, error) {
	a, err := s.assignmentRepo.GetByID(ctx, id)
	if err != nil {
		return assignment.AssignmentResponse{}, err
	}
	if a.Status != assignment.StatusPending {
		return assignment.AssignmentResponse{}, assignment.ErrAssignmentNotPending
	}

	a.Status = target
	a.UpdatedAt = time.Now().UTC()
	if err := s.assignmentRepo.Update(ctx, a); err != nil {
		return assignment.AssignmentResponse{}, fmt.Errorf("failed to update assignment status: %w", err)
	}

	s.notificationSvc.Notify(ctx, a.EmployeeID, notifType, message)

	return toResponse(a), nil
}

// ExpireAssignments implements assignment.AssignmentService. A failure on
// one assignment is logged and the sweep continues.
func (s *AssignmentServiceImpl) ExpireAssignments(ctx context.Context) (assignment.SweepReport, error) {
	lapsed, err := s.assignmentRepo.ListApprovedEndingBefore(ctx, time.Now().UTC())
	if err != nil {
		return assignment.SweepReport{}, fmt.Errorf("failed to list lapsed assignments: %w", err)
	}

	report := assignment.SweepReport{Eligible: len(lapsed)}
	for _, a := range lapsed {
		a.Status = assignment.StatusExpired
		a.UpdatedAt = time.Now().UTC()
		if err := s.assignmentRepo.Update(ctx, a); err != nil {
			slog.Error("Failed to expire assignment",
				"assignment_id", a.ID,
				"employee_id", a.EmployeeID,
				"error", err)
			continue
		}
		report.Transitioned++

		s.notificationSvc.Notify(ctx, a.EmployeeID, notification.TypeAssignmentExpired,
			fmt.Sprintf("Your shift assignment ending %s has expired", a.EndDate.Format("2006-01-02")))
	}

	return report, nil
}

// NotifyExpiringSoon implements assignment.AssignmentService. Warning only;
// no state transition.
func (s *AssignmentServiceImpl) NotifyExpiringSoon(ctx context.Context, window time.Duration) (assignment.SweepReport, error) {
	now := time.Now().UTC()
	expiring, err := s.assignmentRepo.ListApprovedEndingBetween(ctx, now, now.Add(window))
	if err != nil {
		return assignment.SweepReport{}, fmt.Errorf("failed to list expiring assignments: %w", err)
	}

	report := assignment.SweepReport{Eligible: len(expiring)}
	for _, a := range expiring {
		s.notificationSvc.Notify(ctx, a.EmployeeID, notification.TypeAssignmentExpiring,
			fmt.Sprintf("Your shift assignment ends on %s", a.EndDate.Format("2006-01-02")))
		report.Transitioned++
	}

	return report, nil
}

func toResponse(a assignment.ShiftAssignment) assignment.AssignmentResponse {
	resp := assignment.AssignmentResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		ShiftID:      a.ShiftID,
		DepartmentID: a.DepartmentID,
		PositionID:   a.PositionID,
		StartDate:    a.StartDate.Format("2006-01-02"),
		Status:       string(a.Status),
		CreatedAt:    a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    a.UpdatedAt.Format(time.RFC3339),
	}
	if a.EndDate != nil {
		end := a.EndDate.Format("2006-01-02")
		resp.EndDate = &end
	}
	return resp
}

func toResponses(assignments []assignment.ShiftAssignment) []assignment.AssignmentResponse {
	responses := make([]assignment.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		responses = append(responses, toResponse(a))
	}
	return responses
}
