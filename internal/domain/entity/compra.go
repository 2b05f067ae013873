package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Compra representa una compra de insumos o servicios del municipio.
type Compra struct {
	ID          int             `json:"id"`
	Descripcion string          `json:"descripcion"`
	Proveedor   string          `json:"proveedor"`
	Monto       decimal.Decimal `json:"monto"`
	Fecha       time.Time       `json:"fecha"`
	Activo      bool            `json:"activo"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   *time.Time      `json:"updated_at,omitempty"`
}
