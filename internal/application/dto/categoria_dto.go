package dto

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/municipio-digital/reclamos-admin/internal/domain"
)

var colorHex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// CategoriaForm estado del formulario de alta/edición de categorías.
// El icono puede ser cualquier identificador: si no está en el registro fijo
// se renderiza el icono por defecto, no es un error de validación.
type CategoriaForm struct {
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
	Color       string `json:"color"`
	Icono       string `json:"icono"`
}

// Validar aplica las precondiciones locales antes de tocar la red.
func (f CategoriaForm) Validar() error {
	if strings.TrimSpace(f.Nombre) == "" {
		return fmt.Errorf("%w: nombre requerido", domain.ErrEntradaInvalida)
	}
	if f.Color != "" && !colorHex.MatchString(f.Color) {
		return fmt.Errorf("%w: color debe ser hexadecimal #RRGGBB", domain.ErrEntradaInvalida)
	}
	return nil
}
