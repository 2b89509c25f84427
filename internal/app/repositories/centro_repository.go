package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dquispe/sufragio/internal/app/models"
)

// CentroFilter holds the optional filters for listing voting centers.
// Absent filter = no constraint; supplied filters compose with AND.
type CentroFilter struct {
	Distrito       string // exact match
	Nombre         string // case-insensitive substring
	DNIResponsable string // join against mesas.dni_responsable
}

// CentroRepository handles database operations for voting centers
type CentroRepository struct {
	db *pgxpool.Pool
}

// NewCentroRepository creates a new voting center repository
func NewCentroRepository(db *pgxpool.Pool) *CentroRepository {
	return &CentroRepository{
		db: db,
	}
}

// Create inserts a new voting center, generating its UUID when absent.
func (r *CentroRepository) Create(ctx context.Context, centro *models.CentroVotacion) error {
	if centro.ID == "" {
		centro.ID = uuid.NewString()
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO centros_votacion (id_centro, nombre, direccion, distrito, latitud, longitud)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		centro.ID, centro.Nombre, centro.Direccion, centro.Distrito, centro.Latitud, centro.Longitud)
	if err != nil {
		return fmt.Errorf("error creating voting center: %w", err)
	}

	return nil
}

// GetAll retrieves voting centers matching the filter, in insertion order.
// The dni filter resolves centers having a table whose responsible person
// matches, through a relational join.
func (r *CentroRepository) GetAll(ctx context.Context, filter CentroFilter) ([]*models.CentroVotacion, error) {
	query := `
		SELECT DISTINCT c.id_centro, c.nombre, c.direccion, c.distrito, c.latitud, c.longitud, c.creado_en
		FROM centros_votacion c`

	var args []any
	where := ""
	appendCond := func(cond string) {
		if where == "" {
			where = " WHERE " + cond
		} else {
			where += " AND " + cond
		}
	}

	if filter.DNIResponsable != "" {
		args = append(args, filter.DNIResponsable)
		query += fmt.Sprintf(" JOIN mesas m ON m.id_centro = c.id_centro AND m.dni_responsable = $%d", len(args))
	}
	if filter.Distrito != "" {
		args = append(args, filter.Distrito)
		appendCond(fmt.Sprintf("c.distrito = $%d", len(args)))
	}
	if filter.Nombre != "" {
		args = append(args, "%"+filter.Nombre+"%")
		appendCond(fmt.Sprintf("c.nombre ILIKE $%d", len(args)))
	}

	query += where + " ORDER BY c.creado_en, c.id_centro"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var centros []*models.CentroVotacion
	for rows.Next() {
		var centro models.CentroVotacion
		if err := rows.Scan(
			&centro.ID,
			&centro.Nombre,
			&centro.Direccion,
			&centro.Distrito,
			&centro.Latitud,
			&centro.Longitud,
			&centro.CreadoEn,
		); err != nil {
			return nil, err
		}
		centros = append(centros, &centro)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return centros, nil
}

// HasAny reports whether any voting center exists.
func (r *CentroRepository) HasAny(ctx context.Context) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM centros_votacion)`).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking voting centers: %w", err)
	}
	return exists, nil
}
