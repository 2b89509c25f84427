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

// CandidatoFilter holds the optional filters for listing candidates.
// Absent filter = no constraint; supplied filters compose with AND.
type CandidatoFilter struct {
	Region       string // case-insensitive equality
	Cargo        string // case-insensitive equality on any nomination's office
	AgrupacionID int64  // exact match, 0 = no constraint
	Nombre       string // case-insensitive substring over nombres + apellidos
}

// CandidatoRepository handles database operations for candidates and
// their nominations
type CandidatoRepository struct {
	db *pgxpool.Pool
}

// NewCandidatoRepository creates a new candidate repository
func NewCandidatoRepository(db *pgxpool.Pool) *CandidatoRepository {
	return &CandidatoRepository{
		db: db,
	}
}

// Create inserts a new candidate and fills in its generated id.
func (r *CandidatoRepository) Create(ctx context.Context, candidato *models.Candidato) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO candidatos (nombres, apellidos, profesion, region, id_agrupacion, hoja_vida_url, biografia, foto)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		candidato.Nombres, candidato.Apellidos, candidato.Profesion, candidato.Region,
		candidato.AgrupacionID, candidato.HojaVidaURL, candidato.Biografia, candidato.Foto).Scan(&candidato.ID)
	if err != nil {
		return fmt.Errorf("error creating candidate: %w", err)
	}

	return nil
}

// CreatePostulacion inserts a new nomination and fills in its generated id.
func (r *CandidatoRepository) CreatePostulacion(ctx context.Context, post *models.Postulacion) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO postulaciones (id_candidato, id_eleccion, cargo, ambito, numero)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		post.CandidatoID, post.EleccionID, post.Cargo, post.Ambito, post.Numero).Scan(&post.ID)
	if err != nil {
		return fmt.Errorf("error creating nomination: %w", err)
	}

	return nil
}

// GetAll retrieves candidates matching the filter, in insertion order, with
// the grouping name and first nomination's office resolved relationally.
// Heavy columns (biografia, foto) are not selected for list views.
func (r *CandidatoRepository) GetAll(ctx context.Context, filter CandidatoFilter) ([]*models.Candidato, error) {
	query := `
		SELECT c.id, c.nombres, c.apellidos, c.profesion, c.region, c.id_agrupacion, c.hoja_vida_url,
		       a.nombre, pr.cargo, pr.ambito, pr.numero
		FROM candidatos c
		LEFT JOIN agrupaciones_politicas a ON a.id = c.id_agrupacion
		LEFT JOIN LATERAL (
			SELECT cargo, ambito, numero
			FROM postulaciones
			WHERE id_candidato = c.id
			ORDER BY id
			LIMIT 1
		) pr ON true`

	var args []any
	where := ""
	appendCond := func(cond string) {
		if where == "" {
			where = " WHERE " + cond
		} else {
			where += " AND " + cond
		}
	}

	if filter.Region != "" {
		args = append(args, filter.Region)
		appendCond(fmt.Sprintf("LOWER(c.region) = LOWER($%d)", len(args)))
	}
	if filter.AgrupacionID != 0 {
		args = append(args, filter.AgrupacionID)
		appendCond(fmt.Sprintf("c.id_agrupacion = $%d", len(args)))
	}
	if filter.Cargo != "" {
		args = append(args, filter.Cargo)
		appendCond(fmt.Sprintf(`EXISTS (
			SELECT 1 FROM postulaciones p
			WHERE p.id_candidato = c.id AND LOWER(p.cargo) = LOWER($%d))`, len(args)))
	}
	if filter.Nombre != "" {
		args = append(args, "%"+filter.Nombre+"%")
		appendCond(fmt.Sprintf("(c.nombres || ' ' || c.apellidos) ILIKE $%d", len(args)))
	}

	query += where + " ORDER BY c.id"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var candidatos []*models.Candidato
	for rows.Next() {
		var candidato models.Candidato
		var agrupacionNombre *string
		var cargo, ambito *string
		var numero *int
		if err := rows.Scan(
			&candidato.ID,
			&candidato.Nombres,
			&candidato.Apellidos,
			&candidato.Profesion,
			&candidato.Region,
			&candidato.AgrupacionID,
			&candidato.HojaVidaURL,
			&agrupacionNombre,
			&cargo,
			&ambito,
			&numero,
		); err != nil {
			return nil, err
		}
		if candidato.AgrupacionID != nil && agrupacionNombre != nil {
			candidato.Agrupacion = &models.AgrupacionPolitica{
				ID:     *candidato.AgrupacionID,
				Nombre: *agrupacionNombre,
			}
		}
		if cargo != nil && ambito != nil {
			candidato.Postulaciones = []*models.Postulacion{{
				CandidatoID: candidato.ID,
				Cargo:       *cargo,
				Ambito:      *ambito,
				Numero:      numero,
			}}
		}
		candidatos = append(candidatos, &candidato)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return candidatos, nil
}

// GetByID retrieves a candidate by id, including heavy columns and the
// resolved grouping.
func (r *CandidatoRepository) GetByID(ctx context.Context, id int64) (*models.Candidato, error) {
	var candidato models.Candidato
	var agrupacion models.AgrupacionPolitica
	var agrupacionID *int64
	var agrupacionNombre, agrupacionSigla, agrupacionTipo *string
	var agrupacionEleccion *int64

	err := r.db.QueryRow(ctx, `
		SELECT c.id, c.nombres, c.apellidos, c.profesion, c.region, c.id_agrupacion,
		       c.hoja_vida_url, c.biografia, c.foto,
		       a.id, a.nombre, a.sigla, a.tipo, a.id_eleccion
		FROM candidatos c
		LEFT JOIN agrupaciones_politicas a ON a.id = c.id_agrupacion
		WHERE c.id = $1`,
		id).Scan(
		&candidato.ID,
		&candidato.Nombres,
		&candidato.Apellidos,
		&candidato.Profesion,
		&candidato.Region,
		&candidato.AgrupacionID,
		&candidato.HojaVidaURL,
		&candidato.Biografia,
		&candidato.Foto,
		&agrupacionID,
		&agrupacionNombre,
		&agrupacionSigla,
		&agrupacionTipo,
		&agrupacionEleccion,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("Candidato no encontrado")
		}
		return nil, fmt.Errorf("error retrieving candidate: %w", err)
	}

	if agrupacionID != nil {
		agrupacion.ID = *agrupacionID
		agrupacion.Nombre = *agrupacionNombre
		agrupacion.Sigla = *agrupacionSigla
		agrupacion.Tipo = *agrupacionTipo
		agrupacion.EleccionID = *agrupacionEleccion
		candidato.Agrupacion = &agrupacion
	}

	return &candidato, nil
}

// GetPostulaciones retrieves a candidate's nominations in creation order,
// so "first nomination" is deterministic.
func (r *CandidatoRepository) GetPostulaciones(ctx context.Context, candidatoID int64) ([]*models.Postulacion, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, id_candidato, id_eleccion, cargo, ambito, numero
		FROM postulaciones
		WHERE id_candidato = $1
		ORDER BY id`,
		candidatoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var postulaciones []*models.Postulacion
	for rows.Next() {
		var post models.Postulacion
		if err := rows.Scan(
			&post.ID,
			&post.CandidatoID,
			&post.EleccionID,
			&post.Cargo,
			&post.Ambito,
			&post.Numero,
		); err != nil {
			return nil, err
		}
		postulaciones = append(postulaciones, &post)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return postulaciones, nil
}
