package entity

import "time"

// Categoria representa una categoría de reclamos (bacheo, alumbrado, etc.).
// El Icono es un identificador simbólico que se resuelve contra el registro
// fijo de iconos; Color es un hexadecimal "#RRGGBB" elegido por el operador.
type Categoria struct {
	ID          int        `json:"id"`
	Nombre      string     `json:"nombre"`
	Descripcion string     `json:"descripcion"`
	Color       string     `json:"color"`
	Icono       string     `json:"icono"`
	Activo      bool       `json:"activo"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// CategoriaResumen es la versión embebida que el backend adjunta junto al
// foreign key en otras entidades. Nunca se re-deriva desde el id: ambos se
// confían tal como llegan en la misma respuesta.
type CategoriaResumen struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
	Color  string `json:"color"`
	Icono  string `json:"icono"`
}
