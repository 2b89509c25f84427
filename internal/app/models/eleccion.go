package models

// Eleccion is an electoral process (e.g. "EG 2026").
type Eleccion struct {
	ID     int64  `json:"id" db:"id"`
	Nombre string `json:"nombre" db:"nombre"`
	Tipo   string `json:"tipo" db:"tipo"` // general, regional...
	Anio   int    `json:"anio" db:"anio"`
}
