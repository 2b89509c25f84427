package dto

import "github.com/dquispe/sufragio/internal/app/models"

// PartidoResponse is the JSON shape of a political party for the mobile app.
// Binary columns travel as base64 text, dates as ISO-8601 strings.
type PartidoResponse struct {
	IDPartido                    string  `json:"id_partido"`
	JNEIDSimbolo                 *int    `json:"jne_id_simbolo"`
	NombrePartido                string  `json:"nombre_partido"`
	Siglas                       *string `json:"siglas"`
	FechaInscripcion             *string `json:"fecha_inscripcion"`
	LogoBase64                   *string `json:"logo_base64"`
	NombreCandidatoPrincipal     *string `json:"nombre_candidato_principal"`
	FotoCandidatoPrincipalBase64 *string `json:"foto_candidato_principal_base64"`
	DireccionLegal               *string `json:"direccion_legal"`
	Telefonos                    *string `json:"telefonos"`
	SitioWeb                     *string `json:"sitio_web"`
	EmailContacto                *string `json:"email_contacto"`
	PersoneroTitular             *string `json:"personero_titular"`
	PersoneroAlterno             *string `json:"personero_alterno"`
	Ideologia                    string  `json:"ideologia"`
}

// NewPartidoResponse maps a PartidoPolitico to its canonical JSON shape.
func NewPartidoResponse(p *models.PartidoPolitico) PartidoResponse {
	return PartidoResponse{
		IDPartido:                    p.ID,
		JNEIDSimbolo:                 p.JNEIDSimbolo,
		NombrePartido:                p.NombrePartido,
		Siglas:                       p.Siglas,
		FechaInscripcion:             ISODateOrNil(p.FechaInscripcion),
		LogoBase64:                   Base64OrNil(p.Logo),
		NombreCandidatoPrincipal:     p.NombreCandidatoPrincipal,
		FotoCandidatoPrincipalBase64: Base64OrNil(p.FotoCandidatoPrincipal),
		DireccionLegal:               p.DireccionLegal,
		Telefonos:                    p.Telefonos,
		SitioWeb:                     p.SitioWeb,
		EmailContacto:                p.EmailContacto,
		PersoneroTitular:             p.PersoneroTitular,
		PersoneroAlterno:             p.PersoneroAlterno,
		Ideologia:                    string(p.Ideologia),
	}
}

// NewPartidoResponseList maps a slice of parties.
func NewPartidoResponseList(partidos []*models.PartidoPolitico) []PartidoResponse {
	out := make([]PartidoResponse, 0, len(partidos))
	for _, p := range partidos {
		out = append(out, NewPartidoResponse(p))
	}
	return out
}
