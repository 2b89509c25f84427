package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dquispe/sufragio/internal/app/models"
)

func TestBase64OrNil(t *testing.T) {
	assert.Nil(t, Base64OrNil(nil), "absent binary is null")
	assert.Nil(t, Base64OrNil([]byte{}), "empty binary is null, never \"\"")

	got := Base64OrNil([]byte{0x89, 0x50, 0x4e, 0x47})
	require.NotNil(t, got)
	assert.Equal(t, "iVBORw==", *got)
}

func TestISODateOrNil(t *testing.T) {
	assert.Nil(t, ISODateOrNil(nil))

	fecha := time.Date(2004, 9, 14, 15, 30, 0, 0, time.UTC)
	got := ISODateOrNil(&fecha)
	require.NotNil(t, got)
	assert.Equal(t, "2004-09-14", *got, "date only, time of day dropped")
}

// The party payload keeps null logo/fecha explicit on the wire.
func TestPartidoResponse_NullFields(t *testing.T) {
	partido := &models.PartidoPolitico{
		ID:            "0b6a8f2e-3a1d-4a8e-9a7b-111213141516",
		NombrePartido: "Acción Popular",
		Ideologia:     models.IdeologiaCentroDerecha,
	}

	raw, err := json.Marshal(NewPartidoResponse(partido))
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Contains(t, decoded, "logo_base64")
	assert.Nil(t, decoded["logo_base64"])
	assert.Contains(t, decoded, "fecha_inscripcion")
	assert.Nil(t, decoded["fecha_inscripcion"])
}

func TestCandidatoCardResponse_FirstPostulacion(t *testing.T) {
	candidato := &models.Candidato{
		ID:        1,
		Nombres:   "Julio",
		Apellidos: "Guzmán",
		Region:    "Lima",
		Postulaciones: []*models.Postulacion{
			{ID: 1, Cargo: "Presidente"},
			{ID: 2, Cargo: "Congresista"},
		},
	}

	card := NewCandidatoCardResponse(candidato)
	require.NotNil(t, card.Cargo)
	assert.Equal(t, "Presidente", *card.Cargo, "cargo comes from the first nomination in creation order")
}
