package models

import "time"

// Usuario is a registered app user, keyed by UUID. Only users created through
// the register endpoint live here; electors that never register do not.
type Usuario struct {
	ID           string     `json:"id_usuario" db:"id_usuario"`
	DNI          string     `json:"dni" db:"dni"`
	Email        *string    `json:"email" db:"email"`
	PasswordHash *string    `json:"-" db:"password_hash"` // excluded from JSON
	Rol          RolUsuario `json:"rol" db:"rol"`
	MesaID       *int64     `json:"id_mesa" db:"id_mesa"`
	CreadoEn     time.Time  `json:"-" db:"creado_en"`
	Mesa         *Mesa      `json:"mesa,omitempty"` // Relation, no db tag
}
