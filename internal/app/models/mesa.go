package models

// Mesa is a voting table inside a center. numero_mesa is globally unique.
type Mesa struct {
	ID               int64    `json:"id" db:"id_mesa"`
	CentroID         string   `json:"id_centro" db:"id_centro"`
	Numero           string   `json:"numero" db:"numero_mesa"`
	UbicacionDetalle *string  `json:"aula,omitempty" db:"ubicacion_detalle"`
	Piso             *string  `json:"piso,omitempty" db:"piso"`
	Latitud          *float64 `json:"lat" db:"latitud"`
	Longitud         *float64 `json:"lon" db:"longitud"`
	DNIResponsable   *string  `json:"-" db:"dni_responsable"`
}
