package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dquispe/sufragio/internal/app/models"
	"github.com/dquispe/sufragio/internal/pkg/apperrors"
)

// AgrupacionRepository handles database operations for political groupings
type AgrupacionRepository struct {
	db *pgxpool.Pool
}

// NewAgrupacionRepository creates a new grouping repository
func NewAgrupacionRepository(db *pgxpool.Pool) *AgrupacionRepository {
	return &AgrupacionRepository{
		db: db,
	}
}

// Create inserts a new grouping and fills in its generated id.
func (r *AgrupacionRepository) Create(ctx context.Context, agrupacion *models.AgrupacionPolitica) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO agrupaciones_politicas (nombre, sigla, tipo, id_eleccion)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		agrupacion.Nombre, agrupacion.Sigla, agrupacion.Tipo, agrupacion.EleccionID).Scan(&agrupacion.ID)
	if err != nil {
		return fmt.Errorf("error creating grouping: %w", err)
	}

	return nil
}

// GetAll retrieves groupings, optionally restricted to one election.
// eleccionID 0 means no constraint.
func (r *AgrupacionRepository) GetAll(ctx context.Context, eleccionID int64) ([]*models.AgrupacionPolitica, error) {
	query := `
		SELECT id, nombre, sigla, tipo, id_eleccion
		FROM agrupaciones_politicas`
	var args []any
	if eleccionID != 0 {
		query += ` WHERE id_eleccion = $1`
		args = append(args, eleccionID)
	}
	query += ` ORDER BY id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// Non-nil so an empty result serializes as [], not null
	agrupaciones := make([]*models.AgrupacionPolitica, 0)
	for rows.Next() {
		var agrupacion models.AgrupacionPolitica
		if err := rows.Scan(
			&agrupacion.ID,
			&agrupacion.Nombre,
			&agrupacion.Sigla,
			&agrupacion.Tipo,
			&agrupacion.EleccionID,
		); err != nil {
			return nil, err
		}
		agrupaciones = append(agrupaciones, &agrupacion)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return agrupaciones, nil
}

// GetByID retrieves a grouping by id
func (r *AgrupacionRepository) GetByID(ctx context.Context, id int64) (*models.AgrupacionPolitica, error) {
	var agrupacion models.AgrupacionPolitica
	err := r.db.QueryRow(ctx, `
		SELECT id, nombre, sigla, tipo, id_eleccion
		FROM agrupaciones_politicas
		WHERE id = $1`,
		id).Scan(
		&agrupacion.ID,
		&agrupacion.Nombre,
		&agrupacion.Sigla,
		&agrupacion.Tipo,
		&agrupacion.EleccionID,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("Agrupación no encontrada")
		}
		return nil, fmt.Errorf("error retrieving grouping: %w", err)
	}

	return &agrupacion, nil
}
