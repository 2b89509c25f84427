package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dquispe/sufragio/internal/app/models"
)

// PartidoRepository handles database operations for political parties
type PartidoRepository struct {
	db *pgxpool.Pool
}

// NewPartidoRepository creates a new party repository
func NewPartidoRepository(db *pgxpool.Pool) *PartidoRepository {
	return &PartidoRepository{
		db: db,
	}
}

// Create inserts a new party, generating its UUID when absent.
func (r *PartidoRepository) Create(ctx context.Context, partido *models.PartidoPolitico) error {
	if partido.ID == "" {
		partido.ID = uuid.NewString()
	}
	if partido.Ideologia == "" {
		partido.Ideologia = models.IdeologiaDesconocido
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO partidos_politicos (
			id_partido, jne_id_simbolo, nombre_partido, siglas, fecha_inscripcion,
			logo, nombre_candidato_principal, foto_candidato_principal,
			direccion_legal, telefonos, sitio_web, email_contacto,
			personero_titular, personero_alterno, ideologia)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		partido.ID, partido.JNEIDSimbolo, partido.NombrePartido, partido.Siglas, partido.FechaInscripcion,
		partido.Logo, partido.NombreCandidatoPrincipal, partido.FotoCandidatoPrincipal,
		partido.DireccionLegal, partido.Telefonos, partido.SitioWeb, partido.EmailContacto,
		partido.PersoneroTitular, partido.PersoneroAlterno, partido.Ideologia)
	if err != nil {
		return fmt.Errorf("error creating party: %w", err)
	}

	return nil
}

// GetAll retrieves all parties in insertion order.
func (r *PartidoRepository) GetAll(ctx context.Context) ([]*models.PartidoPolitico, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id_partido, jne_id_simbolo, nombre_partido, siglas, fecha_inscripcion,
		       logo, nombre_candidato_principal, foto_candidato_principal,
		       direccion_legal, telefonos, sitio_web, email_contacto,
		       personero_titular, personero_alterno, ideologia, creado_en
		FROM partidos_politicos
		ORDER BY creado_en, id_partido`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var partidos []*models.PartidoPolitico
	for rows.Next() {
		var partido models.PartidoPolitico
		if err := rows.Scan(
			&partido.ID,
			&partido.JNEIDSimbolo,
			&partido.NombrePartido,
			&partido.Siglas,
			&partido.FechaInscripcion,
			&partido.Logo,
			&partido.NombreCandidatoPrincipal,
			&partido.FotoCandidatoPrincipal,
			&partido.DireccionLegal,
			&partido.Telefonos,
			&partido.SitioWeb,
			&partido.EmailContacto,
			&partido.PersoneroTitular,
			&partido.PersoneroAlterno,
			&partido.Ideologia,
			&partido.CreadoEn,
		); err != nil {
			return nil, err
		}
		partidos = append(partidos, &partido)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return partidos, nil
}

// HasAny reports whether any party exists.
func (r *PartidoRepository) HasAny(ctx context.Context) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM partidos_politicos)`).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking parties: %w", err)
	}
	return exists, nil
}
