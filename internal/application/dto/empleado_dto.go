package dto

import (
	"fmt"
	"strings"

	"github.com/municipio-digital/reclamos-admin/internal/domain"
)

// EmpleadoForm estado del formulario de empleados. CategoriaPrincipalID
// sale del desplegable cargado como lista auxiliar de referencia.
type EmpleadoForm struct {
	Nombre               string `json:"nombre"`
	Apellido             string `json:"apellido"`
	Email                string `json:"email"`
	Telefono             string `json:"telefono"`
	CategoriaPrincipalID int    `json:"categoria_principal_id"`
}

// Validar aplica las precondiciones locales antes de tocar la red.
func (f EmpleadoForm) Validar() error {
	if strings.TrimSpace(f.Nombre) == "" {
		return fmt.Errorf("%w: nombre requerido", domain.ErrEntradaInvalida)
	}
	if strings.TrimSpace(f.Apellido) == "" {
		return fmt.Errorf("%w: apellido requerido", domain.ErrEntradaInvalida)
	}
	if f.Email != "" && !strings.Contains(f.Email, "@") {
		return fmt.Errorf("%w: email inválido", domain.ErrEntradaInvalida)
	}
	if f.CategoriaPrincipalID <= 0 {
		return fmt.Errorf("%w: categoría principal requerida", domain.ErrEntradaInvalida)
	}
	return nil
}
