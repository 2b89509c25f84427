package services

import (
	"context"
	"errors"

	"github.com/dquispe/sufragio/internal/app/models"
	"github.com/dquispe/sufragio/internal/app/models/dto"
	"github.com/dquispe/sufragio/internal/pkg/apperrors"
)

// AgrupacionStore is the slice of the grouping repository this service needs.
type AgrupacionStore interface {
	GetAll(ctx context.Context, eleccionID int64) ([]*models.AgrupacionPolitica, error)
	GetByID(ctx context.Context, id int64) (*models.AgrupacionPolitica, error)
}

// PlanStore is the slice of the plan repository this service needs.
type PlanStore interface {
	GetByAgrupacionID(ctx context.Context, agrupacionID int64) (*models.PlanGobierno, error)
	GetSectoresByPlanID(ctx context.Context, planID int64) ([]*models.PlanSector, error)
	GetSectorByName(ctx context.Context, planID int64, nombre string) (*models.PlanSector, error)
}

// AgrupacionService defines the interface for grouping and plan operations.
type AgrupacionService interface {
	ListAgrupaciones(ctx context.Context, eleccionID int64) ([]*models.AgrupacionPolitica, error)
	GetAgrupacionDetail(ctx context.Context, id int64) (*dto.AgrupacionDetailResponse, error)
	GetPlan(ctx context.Context, agrupacionID int64) (*dto.PlanResponse, error)
	GetPlanSector(ctx context.Context, agrupacionID int64, sector string) (*dto.PlanSectorResponse, error)
}

// agrupacionServiceImpl implements the AgrupacionService interface
type agrupacionServiceImpl struct {
	agrupacionRepo AgrupacionStore
	planRepo       PlanStore
}

// NewAgrupacionService creates a new grouping service instance
func NewAgrupacionService(agrupacionRepo AgrupacionStore, planRepo PlanStore) AgrupacionService {
	return &agrupacionServiceImpl{
		agrupacionRepo: agrupacionRepo,
		planRepo:       planRepo,
	}
}

// ListAgrupaciones lists groupings, optionally for a single election.
func (s *agrupacionServiceImpl) ListAgrupaciones(ctx context.Context, eleccionID int64) ([]*models.AgrupacionPolitica, error) {
	return s.agrupacionRepo.GetAll(ctx, eleccionID)
}

// GetAgrupacionDetail returns a grouping with its plan summary. A grouping
// without a plan is not an error; plan_gobierno is null.
func (s *agrupacionServiceImpl) GetAgrupacionDetail(ctx context.Context, id int64) (*dto.AgrupacionDetailResponse, error) {
	agrupacion, err := s.agrupacionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	plan, err := s.planRepo.GetByAgrupacionID(ctx, id)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	detail := dto.NewAgrupacionDetailResponse(agrupacion, plan)
	return &detail, nil
}

// GetPlan returns a grouping's full plan with its sectores. The sector
// breakdown is re-read from the store on every request.
func (s *agrupacionServiceImpl) GetPlan(ctx context.Context, agrupacionID int64) (*dto.PlanResponse, error) {
	plan, err := s.planRepo.GetByAgrupacionID(ctx, agrupacionID)
	if err != nil {
		return nil, err
	}

	sectores, err := s.planRepo.GetSectoresByPlanID(ctx, plan.ID)
	if err != nil {
		return nil, err
	}
	plan.Sectores = sectores

	return dto.NewPlanResponse(plan), nil
}

// GetPlanSector returns one sector of a grouping's plan by case-insensitive
// name. Missing plan and missing sector are both 404s, with distinct messages.
func (s *agrupacionServiceImpl) GetPlanSector(ctx context.Context, agrupacionID int64, sector string) (*dto.PlanSectorResponse, error) {
	plan, err := s.planRepo.GetByAgrupacionID(ctx, agrupacionID)
	if err != nil {
		return nil, err
	}

	planSector, err := s.planRepo.GetSectorByName(ctx, plan.ID, sector)
	if err != nil {
		return nil, err
	}

	resp := dto.NewPlanSectorResponse(planSector)
	return &resp, nil
}
