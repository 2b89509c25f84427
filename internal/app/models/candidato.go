package models

// Candidato is a person running in an election. The grouping is optional:
// registry data may arrive before the candidate is attached to one.
type Candidato struct {
	ID            int64               `json:"id" db:"id"`
	Nombres       string              `json:"nombres" db:"nombres"`
	Apellidos     string              `json:"apellidos" db:"apellidos"`
	Profesion     *string             `json:"profesion" db:"profesion"`
	Region        string              `json:"region" db:"region"`
	AgrupacionID  *int64              `json:"id_agrupacion" db:"id_agrupacion"`
	HojaVidaURL   *string             `json:"hoja_vida_url" db:"hoja_vida_url"`
	Biografia     *string             `json:"biografia" db:"biografia"`
	Foto          []byte              `json:"-" db:"foto"`
	Agrupacion    *AgrupacionPolitica `json:"agrupacion,omitempty"`    // Relation, no db tag
	Postulaciones []*Postulacion      `json:"postulaciones,omitempty"` // Relation, no db tag
}

// Postulacion is a candidate's registered run for an office in one election.
type Postulacion struct {
	ID          int64  `json:"id" db:"id"`
	CandidatoID int64  `json:"id_candidato" db:"id_candidato"`
	EleccionID  int64  `json:"id_eleccion" db:"id_eleccion"`
	Cargo       string `json:"cargo" db:"cargo"`   // Presidente, Congresista...
	Ambito      string `json:"ambito" db:"ambito"` // nacional / regional
	Numero      *int   `json:"numero" db:"numero"`
}
