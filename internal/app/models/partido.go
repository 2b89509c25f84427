package models

import "time"

// PartidoPolitico holds party registry metadata, including the logo stored
// as raw bytes. Distinct from AgrupacionPolitica, which models per-election
// contenders.
type PartidoPolitico struct {
	ID                       string     `json:"id_partido" db:"id_partido"`
	JNEIDSimbolo             *int       `json:"jne_id_simbolo" db:"jne_id_simbolo"`
	NombrePartido            string     `json:"nombre_partido" db:"nombre_partido"`
	Siglas                   *string    `json:"siglas" db:"siglas"`
	FechaInscripcion         *time.Time `json:"-" db:"fecha_inscripcion"`
	Logo                     []byte     `json:"-" db:"logo"`
	NombreCandidatoPrincipal *string    `json:"nombre_candidato_principal" db:"nombre_candidato_principal"`
	FotoCandidatoPrincipal   []byte     `json:"-" db:"foto_candidato_principal"`
	DireccionLegal           *string    `json:"direccion_legal" db:"direccion_legal"`
	Telefonos                *string    `json:"telefonos" db:"telefonos"`
	SitioWeb                 *string    `json:"sitio_web" db:"sitio_web"`
	EmailContacto            *string    `json:"email_contacto" db:"email_contacto"`
	PersoneroTitular         *string    `json:"personero_titular" db:"personero_titular"`
	PersoneroAlterno         *string    `json:"personero_alterno" db:"personero_alterno"`
	Ideologia                Ideologia  `json:"ideologia" db:"ideologia"`
	CreadoEn                 time.Time  `json:"-" db:"creado_en"`
}
