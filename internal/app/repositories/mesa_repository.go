package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dquispe/sufragio/internal/app/models"
)

// MesaRepository handles database operations for voting tables
type MesaRepository struct {
	db *pgxpool.Pool
}

// NewMesaRepository creates a new voting table repository
func NewMesaRepository(db *pgxpool.Pool) *MesaRepository {
	return &MesaRepository{
		db: db,
	}
}

// Create inserts a new table and fills in its generated id.
func (r *MesaRepository) Create(ctx context.Context, mesa *models.Mesa) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO mesas (id_centro, numero_mesa, ubicacion_detalle, piso, latitud, longitud, dni_responsable)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id_mesa`,
		mesa.CentroID, mesa.Numero, mesa.UbicacionDetalle, mesa.Piso, mesa.Latitud, mesa.Longitud, mesa.DNIResponsable).Scan(&mesa.ID)
	if err != nil {
		return fmt.Errorf("error creating table: %w", err)
	}

	return nil
}

// GetByCentroID retrieves all tables of a voting center, in table order.
func (r *MesaRepository) GetByCentroID(ctx context.Context, centroID string) ([]*models.Mesa, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id_mesa, id_centro, numero_mesa, ubicacion_detalle, piso, latitud, longitud, dni_responsable
		FROM mesas
		WHERE id_centro = $1
		ORDER BY id_mesa`,
		centroID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var mesas []*models.Mesa
	for rows.Next() {
		var mesa models.Mesa
		if err := rows.Scan(
			&mesa.ID,
			&mesa.CentroID,
			&mesa.Numero,
			&mesa.UbicacionDetalle,
			&mesa.Piso,
			&mesa.Latitud,
			&mesa.Longitud,
			&mesa.DNIResponsable,
		); err != nil {
			return nil, err
		}
		mesas = append(mesas, &mesa)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return mesas, nil
}

// Exists checks whether a table with the given id exists.
func (r *MesaRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM mesas WHERE id_mesa = $1)`,
		id).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking table existence: %w", err)
	}

	return exists, nil
}
