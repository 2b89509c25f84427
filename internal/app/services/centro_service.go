package services

import (
	"context"

	"github.com/dquispe/sufragio/internal/app/models"
	"github.com/dquispe/sufragio/internal/app/models/dto"
	"github.com/dquispe/sufragio/internal/app/repositories"
)

// CentroStore is the slice of the center repository this service needs.
type CentroStore interface {
	GetAll(ctx context.Context, filter repositories.CentroFilter) ([]*models.CentroVotacion, error)
}

// MesaListStore is the slice of the table repository this service needs.
type MesaListStore interface {
	GetByCentroID(ctx context.Context, centroID string) ([]*models.Mesa, error)
}

// CentroService defines the interface for voting center operations.
type CentroService interface {
	ListCentros(ctx context.Context, filter repositories.CentroFilter) ([]dto.CentroResponse, error)
	ListMesas(ctx context.Context, centroID string) ([]dto.MesaResponse, error)
}

// centroServiceImpl implements the CentroService interface
type centroServiceImpl struct {
	centroRepo CentroStore
	mesaRepo   MesaListStore
}

// NewCentroService creates a new voting center service instance
func NewCentroService(centroRepo CentroStore, mesaRepo MesaListStore) CentroService {
	return &centroServiceImpl{
		centroRepo: centroRepo,
		mesaRepo:   mesaRepo,
	}
}

// ListCentros lists voting centers matching the optional filters.
func (s *centroServiceImpl) ListCentros(ctx context.Context, filter repositories.CentroFilter) ([]dto.CentroResponse, error) {
	centros, err := s.centroRepo.GetAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return dto.NewCentroResponseList(centros), nil
}

// ListMesas lists the tables of a voting center. An unknown center yields
// an empty list, not an error.
func (s *centroServiceImpl) ListMesas(ctx context.Context, centroID string) ([]dto.MesaResponse, error) {
	mesas, err := s.mesaRepo.GetByCentroID(ctx, centroID)
	if err != nil {
		return nil, err
	}
	return dto.NewMesaResponseList(mesas), nil
}
