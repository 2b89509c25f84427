package models

// PlanGobierno is a grouping's governance platform document.
type PlanGobierno struct {
	ID           int64         `json:"id" db:"id"`
	AgrupacionID int64         `json:"id_agrupacion" db:"id_agrupacion"`
	EleccionID   int64         `json:"id_eleccion" db:"id_eleccion"`
	Titulo       string        `json:"titulo" db:"titulo"`
	URLPDF       string        `json:"url_pdf" db:"url_pdf"`
	Sectores     []*PlanSector `json:"sectores,omitempty"` // Relation, no db tag
}

// PlanSector is one topical section of a government plan (Salud, Educación...).
type PlanSector struct {
	ID      int64  `json:"id" db:"id"`
	PlanID  int64  `json:"id_plan" db:"id_plan"`
	Sector  string `json:"sector" db:"sector"`
	Resumen string `json:"resumen" db:"resumen"`
}
