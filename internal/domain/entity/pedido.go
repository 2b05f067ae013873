package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Pedido.
const (
	PedidoPendiente = "pendiente"
	PedidoAprobado  = "aprobado"
	PedidoEntregado = "entregado"
	PedidoCancelado = "cancelado"
)

// Pedido representa un pedido de materiales asociado a las cuadrillas.
type Pedido struct {
	ID           int             `json:"id"`
	Descripcion  string          `json:"descripcion"`
	Estado       string          `json:"estado"` // pendiente, aprobado, entregado, cancelado
	Monto        decimal.Decimal `json:"monto"`
	FechaEntrega *time.Time      `json:"fecha_entrega,omitempty"`
	Activo       bool            `json:"activo"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    *time.Time      `json:"updated_at,omitempty"`
}
