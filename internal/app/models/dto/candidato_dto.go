package dto

import "github.com/dquispe/sufragio/internal/app/models"

// CandidatoCardResponse is the light candidate shape for list views.
// Heavy fields (biografía, foto, plan) are detail-only.
type CandidatoCardResponse struct {
	ID         int64   `json:"id"`
	Nombres    string  `json:"nombres"`
	Apellidos  string  `json:"apellidos"`
	Profesion  *string `json:"profesion"`
	Region     string  `json:"region"`
	Agrupacion *string `json:"agrupacion"`
	Cargo      *string `json:"cargo"`
}

// NewCandidatoCardResponse maps a candidate to its card shape. The cargo
// comes from the candidate's first postulación in creation order, if any.
func NewCandidatoCardResponse(c *models.Candidato) CandidatoCardResponse {
	card := CandidatoCardResponse{
		ID:        c.ID,
		Nombres:   c.Nombres,
		Apellidos: c.Apellidos,
		Profesion: c.Profesion,
		Region:    c.Region,
	}
	if c.Agrupacion != nil {
		card.Agrupacion = &c.Agrupacion.Nombre
	}
	if len(c.Postulaciones) > 0 {
		card.Cargo = &c.Postulaciones[0].Cargo
	}
	return card
}

// NewCandidatoCardResponseList maps a slice of candidates to cards.
func NewCandidatoCardResponseList(candidatos []*models.Candidato) []CandidatoCardResponse {
	out := make([]CandidatoCardResponse, 0, len(candidatos))
	for _, c := range candidatos {
		out = append(out, NewCandidatoCardResponse(c))
	}
	return out
}

// PostulacionResumen is the nomination excerpt embedded in candidate detail.
type PostulacionResumen struct {
	Cargo  string `json:"cargo"`
	Ambito string `json:"ambito"`
	Numero *int   `json:"numero"`
}

// CandidatoDetailResponse is the full candidate shape. PlanGobierno is only
// present for presidential candidates whose grouping registered a plan.
type CandidatoDetailResponse struct {
	ID           int64               `json:"id"`
	Nombres      string              `json:"nombres"`
	Apellidos    string              `json:"apellidos"`
	Profesion    *string             `json:"profesion"`
	Region       string              `json:"region"`
	Agrupacion   *string             `json:"agrupacion"`
	HojaVidaURL  *string             `json:"hoja_vida_url"`
	Biografia    *string             `json:"biografia"`
	FotoBase64   *string             `json:"foto_base64"`
	Postulacion  *PostulacionResumen `json:"postulacion"`
	PlanGobierno *PlanResponse       `json:"plan_gobierno,omitempty"`
}

// NewCandidatoDetailResponse maps a candidate to its detail shape.
func NewCandidatoDetailResponse(c *models.Candidato) CandidatoDetailResponse {
	detail := CandidatoDetailResponse{
		ID:          c.ID,
		Nombres:     c.Nombres,
		Apellidos:   c.Apellidos,
		Profesion:   c.Profesion,
		Region:      c.Region,
		HojaVidaURL: c.HojaVidaURL,
		Biografia:   c.Biografia,
		FotoBase64:  Base64OrNil(c.Foto),
	}
	if c.Agrupacion != nil {
		detail.Agrupacion = &c.Agrupacion.Nombre
	}
	if len(c.Postulaciones) > 0 {
		post := c.Postulaciones[0]
		detail.Postulacion = &PostulacionResumen{
			Cargo:  post.Cargo,
			Ambito: post.Ambito,
			Numero: post.Numero,
		}
	}
	return detail
}
