package entity

import "time"

// TipoTramite representa un tipo de trámite administrativo (habilitación
// comercial, libre deuda, etc.) gestionable desde el panel.
type TipoTramite struct {
	ID          int        `json:"id"`
	Nombre      string     `json:"nombre"`
	Descripcion string     `json:"descripcion"`
	Activo      bool       `json:"activo"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}
