package models

// AgrupacionPolitica is a political grouping competing in one election.
type AgrupacionPolitica struct {
	ID         int64  `json:"id" db:"id"`
	Nombre     string `json:"nombre" db:"nombre"`
	Sigla      string `json:"sigla" db:"sigla"`
	Tipo       string `json:"tipo" db:"tipo"` // partido, alianza...
	EleccionID int64  `json:"id_eleccion" db:"id_eleccion"`
}
