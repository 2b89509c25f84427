package services

import (
	"context"
	"errors"
	"strings"

	"github.com/dquispe/sufragio/internal/app/models"
	"github.com/dquispe/sufragio/internal/app/models/dto"
	"github.com/dquispe/sufragio/internal/app/repositories"
	"github.com/dquispe/sufragio/internal/pkg/apperrors"
)

// cargo that triggers embedding the grouping's plan in candidate detail
const cargoPresidente = "presidente"

// CandidatoStore is the slice of the candidate repository this service needs.
type CandidatoStore interface {
	GetAll(ctx context.Context, filter repositories.CandidatoFilter) ([]*models.Candidato, error)
	GetByID(ctx context.Context, id int64) (*models.Candidato, error)
	GetPostulaciones(ctx context.Context, candidatoID int64) ([]*models.Postulacion, error)
}

// CandidatoService defines the interface for candidate operations.
type CandidatoService interface {
	ListCandidatos(ctx context.Context, filter repositories.CandidatoFilter) ([]dto.CandidatoCardResponse, error)
	GetCandidatoDetail(ctx context.Context, id int64) (*dto.CandidatoDetailResponse, error)
}

// candidatoServiceImpl implements the CandidatoService interface
type candidatoServiceImpl struct {
	candidatoRepo CandidatoStore
	planRepo      PlanStore
}

// NewCandidatoService creates a new candidate service instance
func NewCandidatoService(candidatoRepo CandidatoStore, planRepo PlanStore) CandidatoService {
	return &candidatoServiceImpl{
		candidatoRepo: candidatoRepo,
		planRepo:      planRepo,
	}
}

// ListCandidatos lists candidate cards matching the optional filters.
func (s *candidatoServiceImpl) ListCandidatos(ctx context.Context, filter repositories.CandidatoFilter) ([]dto.CandidatoCardResponse, error) {
	candidatos, err := s.candidatoRepo.GetAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return dto.NewCandidatoCardResponseList(candidatos), nil
}

// GetCandidatoDetail returns the full candidate payload. Presidential
// candidates carry their grouping's full plan when one is registered.
func (s *candidatoServiceImpl) GetCandidatoDetail(ctx context.Context, id int64) (*dto.CandidatoDetailResponse, error) {
	candidato, err := s.candidatoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	postulaciones, err := s.candidatoRepo.GetPostulaciones(ctx, id)
	if err != nil {
		return nil, err
	}
	candidato.Postulaciones = postulaciones

	detail := dto.NewCandidatoDetailResponse(candidato)

	if len(postulaciones) > 0 && candidato.AgrupacionID != nil &&
		strings.ToLower(postulaciones[0].Cargo) == cargoPresidente {
		plan, err := s.planRepo.GetByAgrupacionID(ctx, *candidato.AgrupacionID)
		if err != nil {
			if !errors.Is(err, apperrors.ErrNotFound) {
				return nil, err
			}
		} else {
			sectores, err := s.planRepo.GetSectoresByPlanID(ctx, plan.ID)
			if err != nil {
				return nil, err
			}
			plan.Sectores = sectores
			detail.PlanGobierno = dto.NewPlanResponse(plan)
		}
	}

	return &detail, nil
}
