package dto

// RegisterRequest is the payload for POST /api/register.
// Rol defaults to Elector when omitted.
type RegisterRequest struct {
	DNI      string `json:"dni"`
	Password string `json:"password"`
	Email    string `json:"email"`
	MesaID   *int64 `json:"id_mesa"`
	Rol      string `json:"rol"`
}

// LoginRequest is the payload for POST /api/login. Exactly one of dni or
// email identifies the user.
type LoginRequest struct {
	DNI      string `json:"dni"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UsuarioResponse is the public shape of a registered user.
// The password hash is never part of any response.
type UsuarioResponse struct {
	IDUsuario string  `json:"id_usuario"`
	DNI       string  `json:"dni"`
	Email     *string `json:"email"`
	Rol       string  `json:"rol"`
	MesaID    *int64  `json:"id_mesa"`
}

// LoginResponse is UsuarioResponse plus the success flag the mobile
// client keys on.
type LoginResponse struct {
	Success   bool    `json:"success"`
	IDUsuario string  `json:"id_usuario"`
	DNI       string  `json:"dni"`
	Email     *string `json:"email"`
	Rol       string  `json:"rol"`
	MesaID    *int64  `json:"id_mesa"`
}
