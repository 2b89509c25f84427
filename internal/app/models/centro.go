package models

import "time"

// CentroVotacion is a physical voting location (schools, etc.), keyed by UUID.
type CentroVotacion struct {
	ID        string    `json:"id" db:"id_centro"`
	Nombre    string    `json:"nombre" db:"nombre"`
	Direccion *string   `json:"direccion,omitempty" db:"direccion"`
	Distrito  *string   `json:"distrito,omitempty" db:"distrito"`
	Latitud   *float64  `json:"lat" db:"latitud"`
	Longitud  *float64  `json:"lon" db:"longitud"`
	CreadoEn  time.Time `json:"-" db:"creado_en"`
	Mesas     []*Mesa   `json:"mesas,omitempty"` // Relation, no db tag
}
