package dto

import (
	"fmt"
	"strings"

	"github.com/municipio-digital/reclamos-admin/internal/domain"
	"github.com/municipio-digital/reclamos-admin/internal/domain/entity"
)

// UsuarioForm estado del formulario de usuarios del panel. Password solo
// viaja en el alta o cuando el operador decide cambiarla: al abrir la
// edición el campo nunca se pre-carga desde el registro.
type UsuarioForm struct {
	Username string `json:"username"`
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Rol      string `json:"rol"`
	Password string `json:"password,omitempty"`
	// EsAlta lo fija el controlador al abrir la hoja; en alta la password
	// es obligatoria, en edición es opcional.
	EsAlta bool `json:"-"`
}

// Validar aplica las precondiciones locales antes de tocar la red.
func (f UsuarioForm) Validar() error {
	if strings.TrimSpace(f.Username) == "" {
		return fmt.Errorf("%w: username requerido", domain.ErrEntradaInvalida)
	}
	if strings.TrimSpace(f.Nombre) == "" {
		return fmt.Errorf("%w: nombre requerido", domain.ErrEntradaInvalida)
	}
	switch f.Rol {
	case entity.RolAdmin, entity.RolOperador, entity.RolSupervisor:
	default:
		return fmt.Errorf("%w: rol desconocido %q", domain.ErrEntradaInvalida, f.Rol)
	}
	if f.EsAlta && len(f.Password) < 8 {
		return fmt.Errorf("%w: la contraseña debe tener al menos 8 caracteres", domain.ErrEntradaInvalida)
	}
	if !f.EsAlta && f.Password != "" && len(f.Password) < 8 {
		return fmt.Errorf("%w: la contraseña debe tener al menos 8 caracteres", domain.ErrEntradaInvalida)
	}
	return nil
}
