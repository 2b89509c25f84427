package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dquispe/sufragio/internal/app/models"
	"github.com/dquispe/sufragio/internal/app/models/dto"
	"github.com/dquispe/sufragio/internal/db"
	"github.com/dquispe/sufragio/internal/pkg/apperrors"
	"github.com/dquispe/sufragio/internal/pkg/auth"
)

// fakeUsuarioStore keeps users in memory, keyed by dni.
type fakeUsuarioStore struct {
	usuarios map[string]*models.Usuario
}

func newFakeUsuarioStore() *fakeUsuarioStore {
	return &fakeUsuarioStore{usuarios: make(map[string]*models.Usuario)}
}

func (f *fakeUsuarioStore) CreateTx(_ context.Context, _ pgx.Tx, usuario *models.Usuario) error {
	if _, ok := f.usuarios[usuario.DNI]; ok {
		return apperrors.NewConflictError("El DNI ya está registrado")
	}
	if usuario.ID == "" {
		usuario.ID = uuid.NewString()
	}
	f.usuarios[usuario.DNI] = usuario
	return nil
}

func (f *fakeUsuarioStore) DNIExists(_ context.Context, dni string) (bool, error) {
	_, ok := f.usuarios[dni]
	return ok, nil
}

func (f *fakeUsuarioStore) EmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range f.usuarios {
		if u.Email != nil && *u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUsuarioStore) GetByDNI(_ context.Context, dni string) (*models.Usuario, error) {
	if u, ok := f.usuarios[dni]; ok {
		return u, nil
	}
	return nil, apperrors.NewNotFoundError("Usuario no encontrado")
}

func (f *fakeUsuarioStore) GetByEmail(_ context.Context, email string) (*models.Usuario, error) {
	for _, u := range f.usuarios {
		if u.Email != nil && *u.Email == email {
			return u, nil
		}
	}
	return nil, apperrors.NewNotFoundError("Usuario no encontrado")
}

// brokenUsuarioStore fails every lookup with an infrastructure error.
type brokenUsuarioStore struct {
	fakeUsuarioStore
	err error
}

func (f *brokenUsuarioStore) GetByDNI(_ context.Context, _ string) (*models.Usuario, error) {
	return nil, f.err
}

func (f *brokenUsuarioStore) GetByEmail(_ context.Context, _ string) (*models.Usuario, error) {
	return nil, f.err
}

// fakeMesaStore knows a fixed set of table ids.
type fakeMesaStore struct {
	ids map[int64]bool
}

func (f *fakeMesaStore) Exists(_ context.Context, id int64) (bool, error) {
	return f.ids[id], nil
}

// fakeTxManager just runs the function; the fake store ignores the tx.
type fakeTxManager struct{}

func (f *fakeTxManager) WithTransaction(ctx context.Context, fn db.TransactionFn) error {
	return fn(ctx, nil)
}

func newTestAuthService(usuarios *fakeUsuarioStore, mesas *fakeMesaStore) AuthService {
	if mesas == nil {
		mesas = &fakeMesaStore{ids: map[int64]bool{}}
	}
	return NewAuthService(usuarios, mesas, &fakeTxManager{}, zerolog.Nop())
}

func TestRegister_Success(t *testing.T) {
	store := newFakeUsuarioStore()
	svc := newTestAuthService(store, nil)

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		DNI:      "12345678",
		Password: "secreta123",
		Email:    "elector@correo.pe",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.IDUsuario)
	assert.Equal(t, "12345678", resp.DNI)
	assert.Equal(t, string(models.RolElector), resp.Rol, "rol defaults to Elector")
	require.NotNil(t, resp.Email)
	assert.Equal(t, "elector@correo.pe", *resp.Email)

	// Stored hash verifies against the plaintext and is not the plaintext
	stored := store.usuarios["12345678"]
	require.NotNil(t, stored.PasswordHash)
	assert.NotEqual(t, "secreta123", *stored.PasswordHash)
	assert.True(t, auth.CheckPassword(*stored.PasswordHash, "secreta123"))
}

func TestRegister_MissingFields(t *testing.T) {
	svc := newTestAuthService(newFakeUsuarioStore(), nil)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{DNI: "12345678"})
	assert.ErrorIs(t, err, apperrors.ErrMissingField)

	_, err = svc.Register(context.Background(), &dto.RegisterRequest{Password: "secreta123"})
	assert.ErrorIs(t, err, apperrors.ErrMissingField)
}

func TestRegister_InvalidDNI(t *testing.T) {
	svc := newTestAuthService(newFakeUsuarioStore(), nil)

	for _, dni := range []string{"1234567", "123456789", "1234567a"} {
		_, err := svc.Register(context.Background(), &dto.RegisterRequest{
			DNI:      dni,
			Password: "secreta123",
		})
		require.ErrorIs(t, err, apperrors.ErrMissingField, "dni %q", dni)
		assert.Equal(t, "El DNI debe tener 8 dígitos", err.Error())
	}
}

func TestRegister_InvalidRol(t *testing.T) {
	svc := newTestAuthService(newFakeUsuarioStore(), nil)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		DNI:      "12345678",
		Password: "secreta123",
		Rol:      "Admin",
	})
	assert.ErrorIs(t, err, apperrors.ErrMissingField)
}

func TestRegister_DuplicateDNI(t *testing.T) {
	store := newFakeUsuarioStore()
	svc := newTestAuthService(store, nil)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		DNI:      "12345678",
		Password: "secreta123",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), &dto.RegisterRequest{
		DNI:      "12345678",
		Password: "otraclave",
	})
	require.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Equal(t, "El DNI ya está registrado", err.Error())
}

func TestRegister_DuplicateEmail(t *testing.T) {
	store := newFakeUsuarioStore()
	svc := newTestAuthService(store, nil)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		DNI:      "12345678",
		Password: "secreta123",
		Email:    "elector@correo.pe",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), &dto.RegisterRequest{
		DNI:      "87654321",
		Password: "secreta123",
		Email:    "elector@correo.pe",
	})
	require.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Equal(t, "El email ya está registrado", err.Error())
}

func TestRegister_UnknownMesa(t *testing.T) {
	mesaID := int64(99)
	svc := newTestAuthService(newFakeUsuarioStore(), &fakeMesaStore{ids: map[int64]bool{1: true}})

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		DNI:      "12345678",
		Password: "secreta123",
		Rol:      "MiembroMesa",
		MesaID:   &mesaID,
	})
	require.ErrorIs(t, err, apperrors.ErrInvalidReference)
	assert.Equal(t, "La mesa indicada no existe", err.Error())
}

func TestRegister_MiembroMesaWithMesa(t *testing.T) {
	mesaID := int64(1)
	store := newFakeUsuarioStore()
	svc := newTestAuthService(store, &fakeMesaStore{ids: map[int64]bool{1: true}})

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		DNI:      "12345678",
		Password: "secreta123",
		Rol:      "MiembroMesa",
		MesaID:   &mesaID,
	})
	require.NoError(t, err)
	assert.Equal(t, string(models.RolMiembroMesa), resp.Rol)
	require.NotNil(t, resp.MesaID)
	assert.Equal(t, mesaID, *resp.MesaID)
}

func registerTestUser(t *testing.T, svc AuthService) {
	t.Helper()
	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		DNI:      "12345678",
		Password: "secreta123",
		Email:    "elector@correo.pe",
	})
	require.NoError(t, err)
}

func TestLogin_WithDNI(t *testing.T) {
	svc := newTestAuthService(newFakeUsuarioStore(), nil)
	registerTestUser(t, svc)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		DNI:      "12345678",
		Password: "secreta123",
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "12345678", resp.DNI)
}

func TestLogin_WithEmail(t *testing.T) {
	svc := newTestAuthService(newFakeUsuarioStore(), nil)
	registerTestUser(t, svc)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "elector@correo.pe",
		Password: "secreta123",
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestLogin_MissingCredentials(t *testing.T) {
	svc := newTestAuthService(newFakeUsuarioStore(), nil)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Password: "secreta123"})
	assert.ErrorIs(t, err, apperrors.ErrMissingField)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{DNI: "12345678"})
	assert.ErrorIs(t, err, apperrors.ErrMissingField)
}

func TestLogin_BothIdentifiers(t *testing.T) {
	svc := newTestAuthService(newFakeUsuarioStore(), nil)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		DNI:      "12345678",
		Email:    "elector@correo.pe",
		Password: "secreta123",
	})
	require.ErrorIs(t, err, apperrors.ErrMissingField)
	assert.Equal(t, "Use dni o email, no ambos", err.Error())
}

// Unknown user, wrong password and a user without hash must be
// indistinguishable from the outside.
func TestLogin_IndistinguishableFailures(t *testing.T) {
	store := newFakeUsuarioStore()
	svc := newTestAuthService(store, nil)
	registerTestUser(t, svc)

	// user without a password hash
	store.usuarios["99999999"] = &models.Usuario{
		ID:  uuid.NewString(),
		DNI: "99999999",
		Rol: models.RolElector,
	}

	cases := []dto.LoginRequest{
		{DNI: "00000000", Password: "secreta123"}, // unknown user
		{DNI: "12345678", Password: "incorrecta"}, // wrong password
		{DNI: "99999999", Password: "secreta123"}, // no hash stored
	}
	for _, req := range cases {
		_, err := svc.Login(context.Background(), &req)
		require.ErrorIs(t, err, apperrors.ErrUnauthorized)
		assert.Equal(t, "Credenciales inválidas", err.Error())
	}
}

// A failing store is an internal error, never a credential mismatch.
func TestLogin_StoreFailureIsNotUnauthorized(t *testing.T) {
	storeErr := errors.New("connection refused")
	store := &brokenUsuarioStore{err: storeErr}
	svc := NewAuthService(store, &fakeMesaStore{ids: map[int64]bool{}}, &fakeTxManager{}, zerolog.Nop())

	for _, req := range []dto.LoginRequest{
		{DNI: "12345678", Password: "secreta123"},
		{Email: "elector@correo.pe", Password: "secreta123"},
	} {
		_, err := svc.Login(context.Background(), &req)
		require.ErrorIs(t, err, storeErr)
		assert.NotErrorIs(t, err, apperrors.ErrUnauthorized)
	}
}

// Email uniqueness and login are case-insensitive: emails are stored
// lowercased.
func TestRegister_EmailNormalized(t *testing.T) {
	store := newFakeUsuarioStore()
	svc := newTestAuthService(store, nil)

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		DNI:      "12345678",
		Password: "secreta123",
		Email:    "Elector@Correo.PE",
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Email)
	assert.Equal(t, "elector@correo.pe", *resp.Email)

	_, err = svc.Register(context.Background(), &dto.RegisterRequest{
		DNI:      "87654321",
		Password: "secreta123",
		Email:    "elector@correo.pe",
	})
	require.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Equal(t, "El email ya está registrado", err.Error())

	login, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "ELECTOR@correo.pe",
		Password: "secreta123",
	})
	require.NoError(t, err)
	assert.True(t, login.Success)
}
