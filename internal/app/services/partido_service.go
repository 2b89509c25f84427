package services

import (
	"context"

	"github.com/dquispe/sufragio/internal/app/models"
	"github.com/dquispe/sufragio/internal/app/models/dto"
)

// PartidoStore is the slice of the party repository this service needs.
type PartidoStore interface {
	GetAll(ctx context.Context) ([]*models.PartidoPolitico, error)
}

// PartidoService defines the interface for party operations.
type PartidoService interface {
	ListPartidos(ctx context.Context) ([]dto.PartidoResponse, error)
}

// partidoServiceImpl implements the PartidoService interface
type partidoServiceImpl struct {
	partidoRepo PartidoStore
}

// NewPartidoService creates a new party service instance
func NewPartidoService(partidoRepo PartidoStore) PartidoService {
	return &partidoServiceImpl{
		partidoRepo: partidoRepo,
	}
}

// ListPartidos lists all registered parties with their logos as base64.
func (s *partidoServiceImpl) ListPartidos(ctx context.Context) ([]dto.PartidoResponse, error) {
	partidos, err := s.partidoRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewPartidoResponseList(partidos), nil
}
