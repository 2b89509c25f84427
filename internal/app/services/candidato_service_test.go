package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dquispe/sufragio/internal/app/models"
	"github.com/dquispe/sufragio/internal/app/repositories"
	"github.com/dquispe/sufragio/internal/pkg/apperrors"
)

// fakeCandidatoStore serves candidates from a slice; filtering is not
// re-tested here, the repository owns it.
type fakeCandidatoStore struct {
	candidatos    []*models.Candidato
	postulaciones map[int64][]*models.Postulacion
}

func (f *fakeCandidatoStore) GetAll(_ context.Context, _ repositories.CandidatoFilter) ([]*models.Candidato, error) {
	return f.candidatos, nil
}

func (f *fakeCandidatoStore) GetByID(_ context.Context, id int64) (*models.Candidato, error) {
	for _, c := range f.candidatos {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, apperrors.NewNotFoundError("Candidato no encontrado")
}

func (f *fakeCandidatoStore) GetPostulaciones(_ context.Context, candidatoID int64) ([]*models.Postulacion, error) {
	return f.postulaciones[candidatoID], nil
}

func newCandidatoFixture() *fakeCandidatoStore {
	agrupacionID := int64(1)
	profesion := "Economista"
	return &fakeCandidatoStore{
		candidatos: []*models.Candidato{
			{
				ID:           1,
				Nombres:      "Julio",
				Apellidos:    "Guzmán",
				Profesion:    &profesion,
				Region:       "Lima",
				AgrupacionID: &agrupacionID,
				Agrupacion:   &models.AgrupacionPolitica{ID: 1, Nombre: "Partido Morado"},
			},
			{
				ID:           2,
				Nombres:      "María",
				Apellidos:    "Quispe",
				Region:       "Cusco",
				AgrupacionID: &agrupacionID,
			},
			{ID: 3, Nombres: "Pedro", Apellidos: "Suárez", Region: "Piura"},
		},
		postulaciones: map[int64][]*models.Postulacion{
			1: {{ID: 1, CandidatoID: 1, EleccionID: 1, Cargo: "Presidente", Ambito: "nacional"}},
			2: {{ID: 2, CandidatoID: 2, EleccionID: 1, Cargo: "Congresista", Ambito: "regional"}},
		},
	}
}

func TestListCandidatos_Cards(t *testing.T) {
	svc := NewCandidatoService(newCandidatoFixture(), newPlanFixture())

	cards, err := svc.ListCandidatos(context.Background(), repositories.CandidatoFilter{})
	require.NoError(t, err)
	require.Len(t, cards, 3)

	assert.Equal(t, "Julio", cards[0].Nombres)
	require.NotNil(t, cards[0].Agrupacion)
	assert.Equal(t, "Partido Morado", *cards[0].Agrupacion)
	assert.Nil(t, cards[2].Agrupacion, "unaffiliated candidate has null agrupacion")
}

// A presidential candidate's detail embeds the grouping's plan with sectores.
func TestGetCandidatoDetail_PresidenteEmbedsPlan(t *testing.T) {
	svc := NewCandidatoService(newCandidatoFixture(), newPlanFixture())

	detail, err := svc.GetCandidatoDetail(context.Background(), 1)
	require.NoError(t, err)

	require.NotNil(t, detail.Postulacion)
	assert.Equal(t, "Presidente", detail.Postulacion.Cargo)
	require.NotNil(t, detail.PlanGobierno)
	assert.Equal(t, "Plan 2026", detail.PlanGobierno.Titulo)
	assert.Len(t, detail.PlanGobierno.Sectores, 2)
}

func TestGetCandidatoDetail_NoPresidenteNoPlan(t *testing.T) {
	svc := NewCandidatoService(newCandidatoFixture(), newPlanFixture())

	detail, err := svc.GetCandidatoDetail(context.Background(), 2)
	require.NoError(t, err)

	require.NotNil(t, detail.Postulacion)
	assert.Equal(t, "Congresista", detail.Postulacion.Cargo)
	assert.Nil(t, detail.PlanGobierno)
}

// A presidente whose grouping never registered a plan still resolves;
// plan_gobierno is simply absent.
func TestGetCandidatoDetail_PresidenteWithoutPlan(t *testing.T) {
	fixture := newCandidatoFixture()
	otraAgrupacion := int64(7)
	fixture.candidatos[0].AgrupacionID = &otraAgrupacion
	svc := NewCandidatoService(fixture, newPlanFixture())

	detail, err := svc.GetCandidatoDetail(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, detail.PlanGobierno)
}

func TestGetCandidatoDetail_NotFound(t *testing.T) {
	svc := NewCandidatoService(newCandidatoFixture(), newPlanFixture())

	_, err := svc.GetCandidatoDetail(context.Background(), 99)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, "Candidato no encontrado", err.Error())
}

func TestGetCandidatoDetail_WithoutPostulaciones(t *testing.T) {
	svc := NewCandidatoService(newCandidatoFixture(), newPlanFixture())

	detail, err := svc.GetCandidatoDetail(context.Background(), 3)
	require.NoError(t, err)
	assert.Nil(t, detail.Postulacion)
	assert.Nil(t, detail.PlanGobierno)
}
