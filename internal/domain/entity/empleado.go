package entity

import "time"

// Empleado representa a un agente municipal asignable a reclamos.
// CategoriaPrincipal viene embebida por el backend junto con su id.
type Empleado struct {
	ID                   int               `json:"id"`
	Nombre               string            `json:"nombre"`
	Apellido             string            `json:"apellido"`
	Email                string            `json:"email"`
	Telefono             string            `json:"telefono"`
	CategoriaPrincipalID int               `json:"categoria_principal_id"`
	CategoriaPrincipal   *CategoriaResumen `json:"categoria_principal,omitempty"`
	Activo               bool              `json:"activo"`
	CreatedAt            time.Time         `json:"created_at"`
	UpdatedAt            *time.Time        `json:"updated_at,omitempty"`
}

// NombreCompleto devuelve "Nombre Apellido" para listados y búsqueda.
func (e Empleado) NombreCompleto() string {
	if e.Apellido == "" {
		return e.Nombre
	}
	return e.Nombre + " " + e.Apellido
}
