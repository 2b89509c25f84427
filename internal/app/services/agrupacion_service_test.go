package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dquispe/sufragio/internal/app/models"
	"github.com/dquispe/sufragio/internal/pkg/apperrors"
)

// fakeAgrupacionStore serves groupings from a slice.
type fakeAgrupacionStore struct {
	agrupaciones []*models.AgrupacionPolitica
}

func (f *fakeAgrupacionStore) GetAll(_ context.Context, eleccionID int64) ([]*models.AgrupacionPolitica, error) {
	if eleccionID == 0 {
		return f.agrupaciones, nil
	}
	out := make([]*models.AgrupacionPolitica, 0)
	for _, a := range f.agrupaciones {
		if a.EleccionID == eleccionID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAgrupacionStore) GetByID(_ context.Context, id int64) (*models.AgrupacionPolitica, error) {
	for _, a := range f.agrupaciones {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, apperrors.NewNotFoundError("Agrupación no encontrada")
}

// fakePlanStore serves plans and sectores, mimicking the repository's
// case-insensitive sector lookup.
type fakePlanStore struct {
	planes   []*models.PlanGobierno
	sectores map[int64][]*models.PlanSector
}

func (f *fakePlanStore) GetByAgrupacionID(_ context.Context, agrupacionID int64) (*models.PlanGobierno, error) {
	for _, p := range f.planes {
		if p.AgrupacionID == agrupacionID {
			return p, nil
		}
	}
	return nil, apperrors.NewNotFoundError("La agrupación no tiene plan registrado")
}

func (f *fakePlanStore) GetSectoresByPlanID(_ context.Context, planID int64) ([]*models.PlanSector, error) {
	return f.sectores[planID], nil
}

func (f *fakePlanStore) GetSectorByName(_ context.Context, planID int64, nombre string) (*models.PlanSector, error) {
	for _, s := range f.sectores[planID] {
		if strings.EqualFold(s.Sector, nombre) {
			return s, nil
		}
	}
	return nil, apperrors.NewNotFoundError("Sector no encontrado en el plan")
}

func newPlanFixture() *fakePlanStore {
	return &fakePlanStore{
		planes: []*models.PlanGobierno{
			{ID: 10, AgrupacionID: 1, EleccionID: 1, Titulo: "Plan 2026", URLPDF: "https://example.pe/plan.pdf"},
		},
		sectores: map[int64][]*models.PlanSector{
			10: {
				{ID: 100, PlanID: 10, Sector: "Salud", Resumen: "Aseguramiento universal."},
				{ID: 101, PlanID: 10, Sector: "Educación", Resumen: "Brecha digital."},
			},
		},
	}
}

func newAgrupacionFixture() *fakeAgrupacionStore {
	return &fakeAgrupacionStore{
		agrupaciones: []*models.AgrupacionPolitica{
			{ID: 1, Nombre: "Partido Morado", Sigla: "PM", Tipo: "partido", EleccionID: 1},
			{ID: 2, Nombre: "Frente Amplio", Sigla: "FA", Tipo: "partido", EleccionID: 2},
		},
	}
}

func TestListAgrupaciones_FilterByEleccion(t *testing.T) {
	svc := NewAgrupacionService(newAgrupacionFixture(), newPlanFixture())

	all, err := svc.ListAgrupaciones(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := svc.ListAgrupaciones(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Frente Amplio", filtered[0].Nombre)
}

func TestGetAgrupacionDetail_WithPlan(t *testing.T) {
	svc := NewAgrupacionService(newAgrupacionFixture(), newPlanFixture())

	detail, err := svc.GetAgrupacionDetail(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Partido Morado", detail.Nombre)
	require.NotNil(t, detail.PlanGobierno)
	assert.Equal(t, "Plan 2026", detail.PlanGobierno.Titulo)
}

// A grouping without a plan is still a valid detail; plan_gobierno is null.
func TestGetAgrupacionDetail_WithoutPlan(t *testing.T) {
	svc := NewAgrupacionService(newAgrupacionFixture(), newPlanFixture())

	detail, err := svc.GetAgrupacionDetail(context.Background(), 2)
	require.NoError(t, err)
	assert.Nil(t, detail.PlanGobierno)
}

func TestGetAgrupacionDetail_NotFound(t *testing.T) {
	svc := NewAgrupacionService(newAgrupacionFixture(), newPlanFixture())

	_, err := svc.GetAgrupacionDetail(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGetPlan_IncludesSectores(t *testing.T) {
	svc := NewAgrupacionService(newAgrupacionFixture(), newPlanFixture())

	plan, err := svc.GetPlan(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Plan 2026", plan.Titulo)
	require.Len(t, plan.Sectores, 2)
	assert.Equal(t, "Salud", plan.Sectores[0].Sector)
}

func TestGetPlan_NoPlan(t *testing.T) {
	svc := NewAgrupacionService(newAgrupacionFixture(), newPlanFixture())

	_, err := svc.GetPlan(context.Background(), 2)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, "La agrupación no tiene plan registrado", err.Error())
}

func TestGetPlanSector_CaseInsensitive(t *testing.T) {
	svc := NewAgrupacionService(newAgrupacionFixture(), newPlanFixture())

	for _, nombre := range []string{"Salud", "salud", "SALUD"} {
		sector, err := svc.GetPlanSector(context.Background(), 1, nombre)
		require.NoError(t, err, "sector %q", nombre)
		assert.Equal(t, "Salud", sector.Sector)
	}
}

func TestGetPlanSector_NotFound(t *testing.T) {
	svc := NewAgrupacionService(newAgrupacionFixture(), newPlanFixture())

	// missing sector on an existing plan
	_, err := svc.GetPlanSector(context.Background(), 1, "Vivienda")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, "Sector no encontrado en el plan", err.Error())

	// missing plan altogether
	_, err = svc.GetPlanSector(context.Background(), 2, "Salud")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, "La agrupación no tiene plan registrado", err.Error())
}
