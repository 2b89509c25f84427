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

// PlanRepository handles database operations for government plans and
// their sectors
type PlanRepository struct {
	db *pgxpool.Pool
}

// NewPlanRepository creates a new plan repository
func NewPlanRepository(db *pgxpool.Pool) *PlanRepository {
	return &PlanRepository{
		db: db,
	}
}

// Create inserts a new plan and fills in its generated id.
func (r *PlanRepository) Create(ctx context.Context, plan *models.PlanGobierno) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO planes_gobierno (id_agrupacion, id_eleccion, titulo, url_pdf)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		plan.AgrupacionID, plan.EleccionID, plan.Titulo, plan.URLPDF).Scan(&plan.ID)
	if err != nil {
		return fmt.Errorf("error creating plan: %w", err)
	}

	return nil
}

// CreateSector inserts a new plan sector and fills in its generated id.
func (r *PlanRepository) CreateSector(ctx context.Context, sector *models.PlanSector) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO planes_sectores (id_plan, sector, resumen)
		VALUES ($1, $2, $3)
		RETURNING id`,
		sector.PlanID, sector.Sector, sector.Resumen).Scan(&sector.ID)
	if err != nil {
		return fmt.Errorf("error creating plan sector: %w", err)
	}

	return nil
}

// GetByAgrupacionID retrieves a grouping's plan. When a grouping has more
// than one, the earliest by creation order wins.
func (r *PlanRepository) GetByAgrupacionID(ctx context.Context, agrupacionID int64) (*models.PlanGobierno, error) {
	var plan models.PlanGobierno
	err := r.db.QueryRow(ctx, `
		SELECT id, id_agrupacion, id_eleccion, titulo, url_pdf
		FROM planes_gobierno
		WHERE id_agrupacion = $1
		ORDER BY id
		LIMIT 1`,
		agrupacionID).Scan(
		&plan.ID,
		&plan.AgrupacionID,
		&plan.EleccionID,
		&plan.Titulo,
		&plan.URLPDF,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("La agrupación no tiene plan registrado")
		}
		return nil, fmt.Errorf("error retrieving plan: %w", err)
	}

	return &plan, nil
}

// GetSectoresByPlanID retrieves all sectors of a plan in creation order.
func (r *PlanRepository) GetSectoresByPlanID(ctx context.Context, planID int64) ([]*models.PlanSector, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, id_plan, sector, resumen
		FROM planes_sectores
		WHERE id_plan = $1
		ORDER BY id`,
		planID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sectores []*models.PlanSector
	for rows.Next() {
		var sector models.PlanSector
		if err := rows.Scan(
			&sector.ID,
			&sector.PlanID,
			&sector.Sector,
			&sector.Resumen,
		); err != nil {
			return nil, err
		}
		sectores = append(sectores, &sector)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sectores, nil
}

// GetSectorByName retrieves one sector of a plan by case-insensitive name.
func (r *PlanRepository) GetSectorByName(ctx context.Context, planID int64, nombre string) (*models.PlanSector, error) {
	var sector models.PlanSector
	err := r.db.QueryRow(ctx, `
		SELECT id, id_plan, sector, resumen
		FROM planes_sectores
		WHERE id_plan = $1 AND LOWER(sector) = LOWER($2)
		ORDER BY id
		LIMIT 1`,
		planID, nombre).Scan(
		&sector.ID,
		&sector.PlanID,
		&sector.Sector,
		&sector.Resumen,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("Sector no encontrado en el plan")
		}
		return nil, fmt.Errorf("error retrieving plan sector: %w", err)
	}

	return &sector, nil
}
