package entity

import "time"

// Roles válidos para Usuario.
const (
	RolAdmin      = "admin"
	RolOperador   = "operador"
	RolSupervisor = "supervisor"
)

// Usuario representa un usuario del panel administrativo. El backend nunca
// devuelve la contraseña; en la edición el campo tampoco se pre-carga.
type Usuario struct {
	ID        int        `json:"id"`
	Username  string     `json:"username"`
	Nombre    string     `json:"nombre"`
	Email     string     `json:"email"`
	Rol       string     `json:"rol"` // admin, operador, supervisor
	Activo    bool       `json:"activo"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
