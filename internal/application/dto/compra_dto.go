package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/municipio-digital/reclamos-admin/internal/domain"
)

// CompraForm estado del formulario de compras. Fecha llega como "2006-01-02"
// (el selector de fecha trabaja por día calendario).
type CompraForm struct {
	Descripcion string          `json:"descripcion"`
	Proveedor   string          `json:"proveedor"`
	Monto       decimal.Decimal `json:"monto"`
	Fecha       string          `json:"fecha"`
}

// Validar aplica las precondiciones locales antes de tocar la red.
func (f CompraForm) Validar() error {
	if strings.TrimSpace(f.Descripcion) == "" {
		return fmt.Errorf("%w: descripción requerida", domain.ErrEntradaInvalida)
	}
	if strings.TrimSpace(f.Fecha) == "" {
		return fmt.Errorf("%w: fecha requerida", domain.ErrEntradaInvalida)
	}
	if _, err := time.Parse("2006-01-02", f.Fecha); err != nil {
		return fmt.Errorf("%w: fecha debe tener formato AAAA-MM-DD", domain.ErrEntradaInvalida)
	}
	if f.Monto.IsNegative() {
		return fmt.Errorf("%w: el monto no puede ser negativo", domain.ErrEntradaInvalida)
	}
	return nil
}
