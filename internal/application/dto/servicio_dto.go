package dto

import (
	"fmt"
	"strings"

	"github.com/municipio-digital/reclamos-admin/internal/domain"
)

// ServicioForm estado del formulario del catálogo de servicios.
type ServicioForm struct {
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
	Icono       string `json:"icono"`
}

// Validar aplica las precondiciones locales antes de tocar la red.
func (f ServicioForm) Validar() error {
	if strings.TrimSpace(f.Nombre) == "" {
		return fmt.Errorf("%w: nombre requerido", domain.ErrEntradaInvalida)
	}
	return nil
}

// TipoTramiteForm estado del formulario de tipos de trámite.
type TipoTramiteForm struct {
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

// Validar aplica las precondiciones locales antes de tocar la red.
func (f TipoTramiteForm) Validar() error {
	if strings.TrimSpace(f.Nombre) == "" {
		return fmt.Errorf("%w: nombre requerido", domain.ErrEntradaInvalida)
	}
	return nil
}
