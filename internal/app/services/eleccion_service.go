package services

import (
	"context"

	"github.com/dquispe/sufragio/internal/app/models"
)

// EleccionStore is the slice of the election repository this service needs.
type EleccionStore interface {
	GetAll(ctx context.Context) ([]*models.Eleccion, error)
}

// EleccionService defines the interface for election operations.
type EleccionService interface {
	ListElecciones(ctx context.Context) ([]*models.Eleccion, error)
}

// eleccionServiceImpl implements the EleccionService interface
type eleccionServiceImpl struct {
	eleccionRepo EleccionStore
}

// NewEleccionService creates a new election service instance
func NewEleccionService(eleccionRepo EleccionStore) EleccionService {
	return &eleccionServiceImpl{
		eleccionRepo: eleccionRepo,
	}
}

// ListElecciones lists all elections.
func (s *eleccionServiceImpl) ListElecciones(ctx context.Context) ([]*models.Eleccion, error) {
	return s.eleccionRepo.GetAll(ctx)
}
