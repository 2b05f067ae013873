package entity

import "time"

// Servicio representa un servicio del catálogo municipal (poda, recolección,
// fumigación, etc.) que el vecino puede solicitar.
type Servicio struct {
	ID          int        `json:"id"`
	Nombre      string     `json:"nombre"`
	Descripcion string     `json:"descripcion"`
	Icono       string     `json:"icono"`
	Activo      bool       `json:"activo"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}
