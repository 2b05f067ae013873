package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/municipio-digital/reclamos-admin/internal/domain"
	"github.com/municipio-digital/reclamos-admin/internal/domain/entity"
)

// PedidoForm estado del formulario de pedidos. FechaEntrega es opcional y
// llega como "2006-01-02".
type PedidoForm struct {
	Descripcion  string          `json:"descripcion"`
	Estado       string          `json:"estado"`
	Monto        decimal.Decimal `json:"monto"`
	FechaEntrega string          `json:"fecha_entrega,omitempty"`
}

// Validar aplica las precondiciones locales antes de tocar la red.
func (f PedidoForm) Validar() error {
	if strings.TrimSpace(f.Descripcion) == "" {
		return fmt.Errorf("%w: descripción requerida", domain.ErrEntradaInvalida)
	}
	switch f.Estado {
	case entity.PedidoPendiente, entity.PedidoAprobado, entity.PedidoEntregado, entity.PedidoCancelado:
	default:
		return fmt.Errorf("%w: estado de pedido desconocido %q", domain.ErrEntradaInvalida, f.Estado)
	}
	if f.FechaEntrega != "" {
		if _, err := time.Parse("2006-01-02", f.FechaEntrega); err != nil {
			return fmt.Errorf("%w: fecha de entrega debe tener formato AAAA-MM-DD", domain.ErrEntradaInvalida)
		}
	}
	if f.Monto.IsNegative() {
		return fmt.Errorf("%w: el monto no puede ser negativo", domain.ErrEntradaInvalida)
	}
	return nil
}
