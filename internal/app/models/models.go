package models

// RolUsuario defines the role of a registered app user
type RolUsuario string

const (
	RolElector     RolUsuario = "Elector"
	RolMiembroMesa RolUsuario = "MiembroMesa"
)

// Ideologia is the closed ideology classification used for political parties
type Ideologia string

const (
	IdeologiaIzquierda       Ideologia = "Izquierda"
	IdeologiaCentroIzquierda Ideologia = "CentroIzquierda"
	IdeologiaCentro          Ideologia = "Centro"
	IdeologiaCentroDerecha   Ideologia = "CentroDerecha"
	IdeologiaDerecha         Ideologia = "Derecha"
	IdeologiaOtro            Ideologia = "Otro"
	IdeologiaDesconocido     Ideologia = "Desconocido"
)
