package entity

import "time"

// Estados de un reclamo. Los tres últimos son terminales: sobre ellos no se
// calcula vencimiento.
const (
	ReclamoNuevo      = "nuevo"
	ReclamoEnProceso  = "en_proceso"
	ReclamoProgramado = "programado"
	ReclamoFinalizado = "finalizado"
	ReclamoRechazado  = "rechazado"
	ReclamoResuelto   = "resuelto"
)

// Reclamo representa un reclamo vecinal. Desde el panel es de solo lectura:
// se muestra en tarjetas con hechos derivados (actividad reciente,
// vencimiento) que nunca se persisten.
type Reclamo struct {
	ID              int               `json:"id"`
	Titulo          string            `json:"titulo"`
	Descripcion     string            `json:"descripcion"`
	Direccion       string            `json:"direccion"`
	Estado          string            `json:"estado"`
	CategoriaID     int               `json:"categoria_id"`
	Categoria       *CategoriaResumen `json:"categoria,omitempty"`
	FechaProgramada *time.Time        `json:"fecha_programada,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       *time.Time        `json:"updated_at,omitempty"`
}

// EsTerminal informa si el estado suprime el cálculo de vencimiento.
func (r Reclamo) EsTerminal() bool {
	switch r.Estado {
	case ReclamoFinalizado, ReclamoRechazado, ReclamoResuelto:
		return true
	}
	return false
}
