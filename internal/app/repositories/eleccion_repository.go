package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dquispe/sufragio/internal/app/models"
)

// EleccionRepository handles database operations for elections
type EleccionRepository struct {
	db *pgxpool.Pool
}

// NewEleccionRepository creates a new election repository
func NewEleccionRepository(db *pgxpool.Pool) *EleccionRepository {
	return &EleccionRepository{
		db: db,
	}
}

// Create inserts a new election and fills in its generated id.
func (r *EleccionRepository) Create(ctx context.Context, eleccion *models.Eleccion) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO elecciones (nombre, tipo, anio)
		VALUES ($1, $2, $3)
		RETURNING id`,
		eleccion.Nombre, eleccion.Tipo, eleccion.Anio).Scan(&eleccion.ID)
	if err != nil {
		return fmt.Errorf("error creating election: %w", err)
	}

	return nil
}

// GetAll retrieves all elections in insertion order.
func (r *EleccionRepository) GetAll(ctx context.Context) ([]*models.Eleccion, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, nombre, tipo, anio
		FROM elecciones
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// Non-nil so an empty table serializes as [], not null
	elecciones := make([]*models.Eleccion, 0)
	for rows.Next() {
		var eleccion models.Eleccion
		if err := rows.Scan(
			&eleccion.ID,
			&eleccion.Nombre,
			&eleccion.Tipo,
			&eleccion.Anio,
		); err != nil {
			return nil, err
		}
		elecciones = append(elecciones, &eleccion)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return elecciones, nil
}

// HasAny reports whether any election exists.
func (r *EleccionRepository) HasAny(ctx context.Context) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM elecciones)`).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking elections: %w", err)
	}
	return exists, nil
}
