package shift

import (
	"context"
	"fmt"
	"time"

	"github.com/clockwise-hr/timeclock-backend-go/internal/domain/shift"
	"github.com/google/uuid"
)

type ShiftServiceImpl struct {
	repo shift.ShiftRepository
}

func NewShiftService(repo shift.ShiftRepository) shift.ShiftService {
	return &ShiftServiceImpl{repo: repo}
}

// Create implements shift.ShiftService.
func (s *ShiftServiceImpl) Create(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	policy := shift.PunchPolicy(req.PunchPolicy)
	if policy == "" {
		policy = shift.PunchPolicyStandard
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, shift.ShiftDefinition{
		ID:                          uuid.New().String(),
		Name:                        req.Name,
		ShiftType:                   req.ShiftType,
		StartTime:                   req.StartTime,
		EndTime:                     req.EndTime,
		PunchPolicy:                 policy,
		GraceInMinutes:              req.GraceInMinutes,
		GraceOutMinutes:             req.GraceOutMinutes,
		RequiresApprovalForOvertime: req.RequiresApprovalForOvertime,
		CreatedAt:                   now,
		UpdatedAt:                   now,
	})
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return toResponse(created), nil
}

// GetByID implements shift.ShiftService.
func (s *ShiftServiceImpl) GetByID(ctx context.Context, id string) (shift.ShiftResponse, error) {
	def, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	return toResponse(def), nil
}

// List implements shift.ShiftService.
func (s *ShiftServiceImpl) List(ctx context.Context) ([]shift.ShiftResponse, error) {
	defs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}

	responses := make([]shift.ShiftResponse, 0, len(defs))
	for _, def := range defs {
		responses = append(responses, toResponse(def))
	}
	return responses, nil
}

// Update implements shift.ShiftService.
func (s *ShiftServiceImpl) Update(ctx context.Context, id string, req shift.UpdateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	def, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	if req.Name != nil {
		def.Name = *req.Name
	}
	if req.ShiftType != nil {
		def.ShiftType = *req.ShiftType
	}
	if req.StartTime != nil {
		def.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		def.EndTime = *req.EndTime
	}
	if req.PunchPolicy != nil {
		def.PunchPolicy = shift.PunchPolicy(*req.PunchPolicy)
	}
	if req.GraceInMinutes != nil {
		def.GraceInMinutes = *req.GraceInMinutes
	}
	if req.GraceOutMinutes != nil {
		def.GraceOutMinutes = *req.GraceOutMinutes
	}
	if req.RequiresApprovalForOvertime != nil {
		def.RequiresApprovalForOvertime = *req.RequiresApprovalForOvertime
	}
	def.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, def); err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to update shift: %w", err)
	}

	return toResponse(def), nil
}

func toResponse(def shift.ShiftDefinition) shift.ShiftResponse {
	return shift.ShiftResponse{
		ID:                          def.ID,
		Name:                        def.Name,
		ShiftType:                   def.ShiftType,
		StartTime:                   def.StartTime,
		EndTime:                     def.EndTime,
		PunchPolicy:                 string(def.PunchPolicy),
		GraceInMinutes:              def.GraceInMinutes,
		GraceOutMinutes:             def.GraceOutMinutes,
		RequiresApprovalForOvertime: def.RequiresApprovalForOvertime,
		IsOvernight:                 def.IsOvernight(),
		CreatedAt:                   def.CreatedAt.Format(time.RFC3339),
		UpdatedAt:                   def.UpdatedAt.Format(time.RFC3339),
	}
}
