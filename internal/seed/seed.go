// Package seed loads a small sample dataset on first startup so the API is
// browsable against an empty database. Every block is guarded by a HasAny
// check; a populated table is left untouched.
package seed

import (
	"context"
	"encoding/base64"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/dquispe/sufragio/internal/app/models"
	appRepos "github.com/dquispe/sufragio/internal/app/repositories"
	"github.com/dquispe/sufragio/internal/pkg/helpers"
)

// 1x1 transparent PNG used as placeholder party logo
const placeholderPNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mP8z8BQDwAEhQGAhKmMIQAAAABJRU5ErkJggg=="

// CreateDefaultData loads the sample dataset when the store is empty.
// Errors are returned to the caller, which logs and proceeds: a failed seed
// must not keep the API from starting.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	repos := appRepos.NewRepositories(dbPool)

	if err := seedCentros(ctx, repos, lgr); err != nil {
		return err
	}
	if err := seedPartidos(ctx, repos, lgr); err != nil {
		return err
	}
	return seedElectoral(ctx, repos, lgr)
}

// seedCentros loads two voting centers with their mesas.
func seedCentros(ctx context.Context, repos *appRepos.Repositories, lgr zerolog.Logger) error {
	hasAny, err := repos.CentroRepository.HasAny(ctx)
	if err != nil {
		return err
	}
	if hasAny {
		lgr.Debug().Msg("Voting centers already present, skipping seed")
		return nil
	}

	lat := -12.0464
	lon := -77.0428
	colegio := &appModels.CentroVotacion{
		Nombre:    "IE 1070 Melitón Carvajal",
		Direccion: helpers.StringOrNil("Av. Arequipa 2650"),
		Distrito:  helpers.StringOrNil("Lince"),
		Latitud:   &lat,
		Longitud:  &lon,
	}
	if err := repos.CentroRepository.Create(ctx, colegio); err != nil {
		return err
	}

	universidad := &appModels.CentroVotacion{
		Nombre:   "Universidad Nacional Mayor de San Marcos",
		Distrito: helpers.StringOrNil("Cercado de Lima"),
	}
	if err := repos.CentroRepository.Create(ctx, universidad); err != nil {
		return err
	}

	mesas := []*appModels.Mesa{
		{
			CentroID:         colegio.ID,
			Numero:           "042501",
			UbicacionDetalle: helpers.StringOrNil("Aula 101"),
			Piso:             helpers.StringOrNil("1"),
			DNIResponsable:   helpers.StringOrNil("41234567"),
		},
		{
			CentroID:         colegio.ID,
			Numero:           "042502",
			UbicacionDetalle: helpers.StringOrNil("Aula 102"),
			Piso:             helpers.StringOrNil("1"),
		},
		{
			CentroID:         universidad.ID,
			Numero:           "051201",
			UbicacionDetalle: helpers.StringOrNil("Pabellón A"),
			Piso:             helpers.StringOrNil("2"),
			DNIResponsable:   helpers.StringOrNil("45678901"),
		},
	}
	for _, mesa := range mesas {
		if err := repos.MesaRepository.Create(ctx, mesa); err != nil {
			return err
		}
	}

	lgr.Info().Int("centros", 2).Int("mesas", len(mesas)).Msg("Seeded voting centers")
	return nil
}

// seedPartidos loads the party registry sample.
func seedPartidos(ctx context.Context, repos *appRepos.Repositories, lgr zerolog.Logger) error {
	hasAny, err := repos.PartidoRepository.HasAny(ctx)
	if err != nil {
		return err
	}
	if hasAny {
		lgr.Debug().Msg("Parties already present, skipping seed")
		return nil
	}

	logo, err := base64.StdEncoding.DecodeString(placeholderPNG)
	if err != nil {
		return err
	}

	inscripcion := time.Date(2004, 9, 14, 0, 0, 0, 0, time.UTC)
	jneID := 31
	partidos := []*appModels.PartidoPolitico{
		{
			JNEIDSimbolo:             &jneID,
			NombrePartido:            "Partido Morado",
			Siglas:                   helpers.StringOrNil("PM"),
			FechaInscripcion:         &inscripcion,
			Logo:                     logo,
			NombreCandidatoPrincipal: helpers.StringOrNil("Julio Guzmán"),
			SitioWeb:                 helpers.StringOrNil("https://partidomorado.pe"),
			Ideologia:                appModels.IdeologiaCentro,
		},
		{
			NombrePartido: "Acción Popular",
			Siglas:        helpers.StringOrNil("AP"),
			Ideologia:     appModels.IdeologiaCentroDerecha,
		},
		{
			NombrePartido: "Frente Amplio",
			Siglas:        helpers.StringOrNil("FA"),
			Ideologia:     appModels.IdeologiaIzquierda,
		},
	}
	for _, partido := range partidos {
		if err := repos.PartidoRepository.Create(ctx, partido); err != nil {
			return err
		}
	}

	lgr.Info().Int("partidos", len(partidos)).Msg("Seeded party registry")
	return nil
}

// seedElectoral loads one election with groupings, plans, sectores,
// candidates and nominations.
func seedElectoral(ctx context.Context, repos *appRepos.Repositories, lgr zerolog.Logger) error {
	hasAny, err := repos.EleccionRepository.HasAny(ctx)
	if err != nil {
		return err
	}
	if hasAny {
		lgr.Debug().Msg("Elections already present, skipping seed")
		return nil
	}

	eleccion := &appModels.Eleccion{
		Nombre: "Elecciones Generales 2026",
		Tipo:   "general",
		Anio:   2026,
	}
	if err := repos.EleccionRepository.Create(ctx, eleccion); err != nil {
		return err
	}

	morado := &appModels.AgrupacionPolitica{
		Nombre:     "Partido Morado",
		Sigla:      "PM",
		Tipo:       "partido",
		EleccionID: eleccion.ID,
	}
	if err := repos.AgrupacionRepository.Create(ctx, morado); err != nil {
		return err
	}

	alianza := &appModels.AgrupacionPolitica{
		Nombre:     "Alianza para el Progreso",
		Sigla:      "APP",
		Tipo:       "alianza",
		EleccionID: eleccion.ID,
	}
	if err := repos.AgrupacionRepository.Create(ctx, alianza); err != nil {
		return err
	}

	plan := &appModels.PlanGobierno{
		AgrupacionID: morado.ID,
		EleccionID:   eleccion.ID,
		Titulo:       "Plan de Gobierno 2026-2031",
		URLPDF:       "https://declara.jne.gob.pe/ASSETS/PLANGOBIERNO/FILEPLANGOBIERNO/16490.pdf",
	}
	if err := repos.PlanRepository.Create(ctx, plan); err != nil {
		return err
	}

	sectores := []*appModels.PlanSector{
		{PlanID: plan.ID, Sector: "Salud", Resumen: "Aseguramiento universal y primer nivel de atención."},
		{PlanID: plan.ID, Sector: "Educación", Resumen: "Cierre de brecha digital en escuelas públicas."},
		{PlanID: plan.ID, Sector: "Economía", Resumen: "Formalización laboral e impulso a mipymes."},
	}
	for _, sector := range sectores {
		if err := repos.PlanRepository.CreateSector(ctx, sector); err != nil {
			return err
		}
	}

	presidente := &appModels.Candidato{
		Nombres:      "Julio Armando",
		Apellidos:    "Guzmán Cáceres",
		Profesion:    helpers.StringOrNil("Economista"),
		Region:       "Lima",
		AgrupacionID: &morado.ID,
		Biografia:    helpers.StringOrNil("Economista y ex funcionario público."),
	}
	if err := repos.CandidatoRepository.Create(ctx, presidente); err != nil {
		return err
	}
	if err := repos.CandidatoRepository.CreatePostulacion(ctx, &appModels.Postulacion{
		CandidatoID: presidente.ID,
		EleccionID:  eleccion.ID,
		Cargo:       "Presidente",
		Ambito:      "nacional",
	}); err != nil {
		return err
	}

	numero := 3
	congresista := &appModels.Candidato{
		Nombres:      "María Elena",
		Apellidos:    "Quispe Huamán",
		Profesion:    helpers.StringOrNil("Abogada"),
		Region:       "Cusco",
		AgrupacionID: &alianza.ID,
	}
	if err := repos.CandidatoRepository.Create(ctx, congresista); err != nil {
		return err
	}
	if err := repos.CandidatoRepository.CreatePostulacion(ctx, &appModels.Postulacion{
		CandidatoID: congresista.ID,
		EleccionID:  eleccion.ID,
		Cargo:       "Congresista",
		Ambito:      "regional",
		Numero:      &numero,
	}); err != nil {
		return err
	}

	lgr.Info().Int64("eleccion", eleccion.ID).Msg("Seeded electoral data")
	return nil
}
