package dto

import (
	"time"

	"github.com/municipio-digital/reclamos-admin/internal/domain/entity"
)

// ConsultaReclamos filtros del tablero de tarjetas de reclamos.
type ConsultaReclamos struct {
	Texto       string
	Estado      string
	Desde       *time.Time
	Hasta       *time.Time
	Orden       string
	Descendente bool
}

// TarjetaReclamo es un reclamo anotado con los hechos derivados que la
// tarjeta necesita para renderizarse. Nada de esto se persiste.
type TarjetaReclamo struct {
	entity.Reclamo
	ActividadReciente bool   `json:"actividad_reciente"`
	Vencimiento       string `json:"vencimiento"`
	VenceEnDias       int    `json:"vence_en_dias,omitempty"`
	IconoGlifo        string `json:"icono_glifo"`
	Revelado          bool   `json:"revelado"`
}

// DescargaImagenesRequest pedido de descarga masiva de imágenes de categorías.
type DescargaImagenesRequest struct {
	MunicipioID string   `json:"municipio_id"`
	Nombres     []string `json:"nombres"`
}

// DescargaImagenesResponse resultado de la descarga masiva. Omitida indica
// que la bandera local ya estaba puesta y no se llamó al backend.
type DescargaImagenesResponse struct {
	Omitida     bool `json:"omitida"`
	Descargadas int  `json:"descargadas"`
	Fallidas    int  `json:"fallidas"`
}
