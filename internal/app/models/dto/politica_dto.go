package dto

import "github.com/dquispe/sufragio/internal/app/models"

// PlanResumen is a plan without its sector breakdown, used on grouping
// detail pages.
type PlanResumen struct {
	ID           int64  `json:"id"`
	AgrupacionID int64  `json:"id_agrupacion"`
	EleccionID   int64  `json:"id_eleccion"`
	Titulo       string `json:"titulo"`
	URLPDF       string `json:"url_pdf"`
}

// NewPlanResumen maps a plan to its summary shape.
func NewPlanResumen(p *models.PlanGobierno) *PlanResumen {
	if p == nil {
		return nil
	}
	return &PlanResumen{
		ID:           p.ID,
		AgrupacionID: p.AgrupacionID,
		EleccionID:   p.EleccionID,
		Titulo:       p.Titulo,
		URLPDF:       p.URLPDF,
	}
}

// PlanResponse is a full plan including its sectores.
type PlanResponse struct {
	ID           int64                `json:"id"`
	AgrupacionID int64                `json:"id_agrupacion"`
	EleccionID   int64                `json:"id_eleccion"`
	Titulo       string               `json:"titulo"`
	URLPDF       string               `json:"url_pdf"`
	Sectores     []PlanSectorResponse `json:"sectores"`
}

// NewPlanResponse maps a plan plus sectores to its full shape.
func NewPlanResponse(p *models.PlanGobierno) *PlanResponse {
	if p == nil {
		return nil
	}
	sectores := make([]PlanSectorResponse, 0, len(p.Sectores))
	for _, s := range p.Sectores {
		sectores = append(sectores, NewPlanSectorResponse(s))
	}
	return &PlanResponse{
		ID:           p.ID,
		AgrupacionID: p.AgrupacionID,
		EleccionID:   p.EleccionID,
		Titulo:       p.Titulo,
		URLPDF:       p.URLPDF,
		Sectores:     sectores,
	}
}

// PlanSectorResponse is the JSON shape of one plan sector.
type PlanSectorResponse struct {
	ID      int64  `json:"id"`
	PlanID  int64  `json:"id_plan"`
	Sector  string `json:"sector"`
	Resumen string `json:"resumen"`
}

// NewPlanSectorResponse maps a sector.
func NewPlanSectorResponse(s *models.PlanSector) PlanSectorResponse {
	return PlanSectorResponse{
		ID:      s.ID,
		PlanID:  s.PlanID,
		Sector:  s.Sector,
		Resumen: s.Resumen,
	}
}

// AgrupacionDetailResponse is a grouping plus its plan summary (null when
// the grouping has no registered plan).
type AgrupacionDetailResponse struct {
	ID           int64        `json:"id"`
	Nombre       string       `json:"nombre"`
	Sigla        string       `json:"sigla"`
	Tipo         string       `json:"tipo"`
	EleccionID   int64        `json:"id_eleccion"`
	PlanGobierno *PlanResumen `json:"plan_gobierno"`
}

// NewAgrupacionDetailResponse assembles the grouping detail payload.
func NewAgrupacionDetailResponse(a *models.AgrupacionPolitica, plan *models.PlanGobierno) AgrupacionDetailResponse {
	return AgrupacionDetailResponse{
		ID:           a.ID,
		Nombre:       a.Nombre,
		Sigla:        a.Sigla,
		Tipo:         a.Tipo,
		EleccionID:   a.EleccionID,
		PlanGobierno: NewPlanResumen(plan),
	}
}
