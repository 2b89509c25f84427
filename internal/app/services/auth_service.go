package services

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/dquispe/sufragio/internal/app/models"
	"github.com/dquispe/sufragio/internal/app/models/dto"
	"github.com/dquispe/sufragio/internal/db"
	"github.com/dquispe/sufragio/internal/pkg/apperrors"
	"github.com/dquispe/sufragio/internal/pkg/auth"
	"github.com/dquispe/sufragio/internal/pkg/helpers"
	"github.com/dquispe/sufragio/internal/pkg/validation"
)

// UsuarioStore is the slice of the user repository the auth service needs.
type UsuarioStore interface {
	CreateTx(ctx context.Context, tx pgx.Tx, usuario *models.Usuario) error
	DNIExists(ctx context.Context, dni string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	GetByDNI(ctx context.Context, dni string) (*models.Usuario, error)
	GetByEmail(ctx context.Context, email string) (*models.Usuario, error)
}

// MesaStore is the slice of the table repository the auth service needs.
type MesaStore interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// TxManager runs a function within a database transaction.
type TxManager interface {
	WithTransaction(ctx context.Context, fn db.TransactionFn) error
}

// AuthService defines the interface for registration and login.
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UsuarioResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	usuarioRepo UsuarioStore
	mesaRepo    MesaStore
	tx          TxManager
	logger      zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(usuarioRepo UsuarioStore, mesaRepo MesaStore, tx TxManager, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		usuarioRepo: usuarioRepo,
		mesaRepo:    mesaRepo,
		tx:          tx,
		logger:      logger,
	}
}

// Register creates a new user. The uniqueness pre-checks are best-effort;
// the database constraint is the final arbiter under concurrent duplicates,
// and its violation still surfaces as Conflict.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UsuarioResponse, error) {
	dni := strings.TrimSpace(req.DNI)
	// Emails are stored lowercased so uniqueness is case-insensitive.
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if dni == "" || req.Password == "" {
		return nil, apperrors.NewMissingFieldError("Faltan campos obligatorios (dni, password)")
	}
	if !validation.IsValidDNI(dni) {
		return nil, apperrors.NewMissingFieldError("El DNI debe tener 8 dígitos")
	}
	if email != "" && !validation.IsValidEmail(email) {
		return nil, apperrors.NewMissingFieldError("El email no es válido")
	}

	rol := models.RolUsuario(req.Rol)
	if rol == "" {
		rol = models.RolElector
	}
	if rol != models.RolElector && rol != models.RolMiembroMesa {
		return nil, apperrors.NewMissingFieldError("Rol inválido (Elector o MiembroMesa)")
	}

	exists, err := s.usuarioRepo.DNIExists(ctx, dni)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewConflictError("El DNI ya está registrado")
	}

	if email != "" {
		exists, err = s.usuarioRepo.EmailExists(ctx, email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperrors.NewConflictError("El email ya está registrado")
		}
	}

	if req.MesaID != nil {
		mesaExists, err := s.mesaRepo.Exists(ctx, *req.MesaID)
		if err != nil {
			return nil, err
		}
		if !mesaExists {
			return nil, apperrors.NewInvalidReferenceError("La mesa indicada no existe")
		}
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	usuario := &models.Usuario{
		DNI:          dni,
		Email:        helpers.StringOrNil(email),
		PasswordHash: &hash,
		Rol:          rol,
		MesaID:       req.MesaID,
	}

	// Insert wrapped in a transaction: any failure rolls back fully and
	// leaves no partial row.
	err = s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return s.usuarioRepo.CreateTx(ctx, tx, usuario)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("idUsuario", usuario.ID).Str("rol", string(usuario.Rol)).Msg("Usuario registrado")

	return &dto.UsuarioResponse{
		IDUsuario: usuario.ID,
		DNI:       usuario.DNI,
		Email:     usuario.Email,
		Rol:       string(usuario.Rol),
		MesaID:    usuario.MesaID,
	}, nil
}

// Login verifies credentials statelessly. Unknown identifier, missing hash
// and wrong password are indistinguishable from the outside.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	dni := strings.TrimSpace(req.DNI)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if req.Password == "" || (dni == "" && email == "") {
		return nil, apperrors.NewMissingFieldError("Faltan credenciales (dni o email, y password)")
	}
	if dni != "" && email != "" {
		return nil, apperrors.NewMissingFieldError("Use dni o email, no ambos")
	}

	var usuario *models.Usuario
	var err error
	if dni != "" {
		usuario, err = s.usuarioRepo.GetByDNI(ctx, dni)
	} else {
		usuario, err = s.usuarioRepo.GetByEmail(ctx, email)
	}
	if err != nil {
		// Only an unknown identifier is a credential mismatch; a failing
		// store surfaces as an internal error.
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewUnauthorizedError("Credenciales inválidas")
		}
		return nil, err
	}

	if usuario.PasswordHash == nil || !auth.CheckPassword(*usuario.PasswordHash, req.Password) {
		return nil, apperrors.NewUnauthorizedError("Credenciales inválidas")
	}

	return &dto.LoginResponse{
		Success:   true,
		IDUsuario: usuario.ID,
		DNI:       usuario.DNI,
		Email:     usuario.Email,
		Rol:       string(usuario.Rol),
		MesaID:    usuario.MesaID,
	}, nil
}
