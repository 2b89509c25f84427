package dto

import "github.com/dquispe/sufragio/internal/app/models"

// CentroResponse is the JSON shape of a voting center for the map views.
type CentroResponse struct {
	ID        string   `json:"id"`
	Nombre    string   `json:"nombre"`
	Lat       *float64 `json:"lat"`
	Lon       *float64 `json:"lon"`
	Direccion *string  `json:"direccion,omitempty"`
	Distrito  *string  `json:"distrito,omitempty"`
}

// NewCentroResponse maps a CentroVotacion to its canonical JSON shape.
func NewCentroResponse(c *models.CentroVotacion) CentroResponse {
	return CentroResponse{
		ID:        c.ID,
		Nombre:    c.Nombre,
		Lat:       c.Latitud,
		Lon:       c.Longitud,
		Direccion: c.Direccion,
		Distrito:  c.Distrito,
	}
}

// NewCentroResponseList maps a slice of centers.
func NewCentroResponseList(centros []*models.CentroVotacion) []CentroResponse {
	out := make([]CentroResponse, 0, len(centros))
	for _, c := range centros {
		out = append(out, NewCentroResponse(c))
	}
	return out
}

// MesaResponse is the JSON shape of a table within a center.
type MesaResponse struct {
	ID     int64    `json:"id"`
	Numero string   `json:"numero"`
	Aula   *string  `json:"aula"`
	Piso   *string  `json:"piso"`
	Lat    *float64 `json:"lat"`
	Lon    *float64 `json:"lon"`
}

// NewMesaResponse maps a Mesa to its canonical JSON shape.
func NewMesaResponse(m *models.Mesa) MesaResponse {
	return MesaResponse{
		ID:     m.ID,
		Numero: m.Numero,
		Aula:   m.UbicacionDetalle,
		Piso:   m.Piso,
		Lat:    m.Latitud,
		Lon:    m.Longitud,
	}
}

// NewMesaResponseList maps a slice of tables.
func NewMesaResponseList(mesas []*models.Mesa) []MesaResponse {
	out := make([]MesaResponse, 0, len(mesas))
	for _, m := range mesas {
		out = append(out, NewMesaResponse(m))
	}
	return out
}
