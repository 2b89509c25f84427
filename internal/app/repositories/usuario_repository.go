package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dquispe/sufragio/internal/app/models"
	"github.com/dquispe/sufragio/internal/pkg/apperrors"
	"github.com/dquispe/sufragio/internal/pkg/dberrors"
)

// Unique constraint names from migrations/001_init.sql. The database is the
// final arbiter for concurrent duplicate registrations; violations on these
// constraints map to Conflict, not a generic failure.
const (
	constraintUsuariosDNI   = "usuarios_dni_key"
	constraintUsuariosEmail = "usuarios_email_key"
)

// UsuarioRepository handles database operations for registered users
type UsuarioRepository struct {
	db *pgxpool.Pool
}

// NewUsuarioRepository creates a new user repository
func NewUsuarioRepository(db *pgxpool.Pool) *UsuarioRepository {
	return &UsuarioRepository{
		db: db,
	}
}

// CreateTx inserts a new user inside the given transaction, generating its
// UUID when absent. Duplicate dni/email surfaces as Conflict.
func (r *UsuarioRepository) CreateTx(ctx context.Context, tx pgx.Tx, usuario *models.Usuario) error {
	if usuario.ID == "" {
		usuario.ID = uuid.NewString()
	}

	_, err := tx.Exec(ctx, `
		INSERT INTO usuarios (id_usuario, dni, email, password_hash, rol, id_mesa)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		usuario.ID, usuario.DNI, usuario.Email, usuario.PasswordHash, usuario.Rol, usuario.MesaID)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, constraintUsuariosDNI) {
			return apperrors.NewConflictError("El DNI ya está registrado")
		}
		if dberrors.IsDuplicateConstraintError(err, constraintUsuariosEmail) {
			return apperrors.NewConflictError("El email ya está registrado")
		}
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// GetByDNI retrieves a user by national id
func (r *UsuarioRepository) GetByDNI(ctx context.Context, dni string) (*models.Usuario, error) {
	return r.getByField(ctx, "dni", dni)
}

// GetByEmail retrieves a user by email
func (r *UsuarioRepository) GetByEmail(ctx context.Context, email string) (*models.Usuario, error) {
	return r.getByField(ctx, "email", email)
}

func (r *UsuarioRepository) getByField(ctx context.Context, field, value string) (*models.Usuario, error) {
	usuario := &models.Usuario{}
	query := fmt.Sprintf(`
		SELECT id_usuario, dni, email, password_hash, rol, id_mesa, creado_en
		FROM usuarios
		WHERE %s = $1`, field)

	err := r.db.QueryRow(ctx, query, value).Scan(
		&usuario.ID,
		&usuario.DNI,
		&usuario.Email,
		&usuario.PasswordHash,
		&usuario.Rol,
		&usuario.MesaID,
		&usuario.CreadoEn,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("Usuario no encontrado")
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return usuario, nil
}

// DNIExists checks if a dni is already registered
func (r *UsuarioRepository) DNIExists(ctx context.Context, dni string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM usuarios WHERE dni = $1)`,
		dni).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking dni: %w", err)
	}

	return exists, nil
}

// EmailExists checks if an email is already registered
func (r *UsuarioRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM usuarios WHERE email = $1)`,
		email).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking email: %w", err)
	}

	return exists, nil
}
