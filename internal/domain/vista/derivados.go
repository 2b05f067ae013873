// Package vista calcula hechos derivados de presentación sobre un registro:
// actividad reciente y clasificación de vencimiento. Son funciones puras del
// registro y del instante actual; nunca mutan el registro ni se persisten.
package vista

import (
	"time"

	"github.com/municipio-digital/reclamos-admin/internal/domain/entity"
)

// UmbralActividad es la diferencia mínima entre creación y última
// actualización para considerar que el registro tuvo actividad posterior.
const UmbralActividad = time.Minute

// Clases de vencimiento derivadas de la fecha programada.
type ClaseVencimiento int

const (
	VencimientoNinguno ClaseVencimiento = iota
	VencimientoVencido
	VencimientoHoy
	VencimientoProximo // vence en 1 a 3 días; Dias lleva el valor exacto
)

// Vencimiento es la clasificación derivada de urgencia. Dias solo es
// significativo cuando Clase es VencimientoProximo.
type Vencimiento struct {
	Clase ClaseVencimiento `json:"clase"`
	Dias  int              `json:"dias,omitempty"`
}

// String devuelve la etiqueta serializable de la clase.
func (c ClaseVencimiento) String() string {
	switch c {
	case VencimientoVencido:
		return "vencido"
	case VencimientoHoy:
		return "vence_hoy"
	case VencimientoProximo:
		return "vence_pronto"
	}
	return "ninguno"
}

// ActividadReciente informa si el registro fue modificado después de creado:
// true sii existe updated_at y updated_at − created_at supera UmbralActividad.
// Sin updated_at devuelve false, nunca error.
func ActividadReciente(creado time.Time, actualizado *time.Time) bool {
	if actualizado == nil {
		return false
	}
	return actualizado.Sub(creado) > UmbralActividad
}

// EstadoVencimiento clasifica la fecha programada respecto de ahora. La
// comparación es por día calendario: se truncan ambos instantes a su fecha
// local antes de contar días. Estados terminales y fecha ausente devuelven
// VencimientoNinguno.
func EstadoVencimiento(programada *time.Time, estado string, ahora time.Time) Vencimiento {
	if programada == nil || esTerminal(estado) {
		return Vencimiento{Clase: VencimientoNinguno}
	}

	dias := diasCalendario(ahora, *programada)
	switch {
	case dias < 0:
		return Vencimiento{Clase: VencimientoVencido}
	case dias == 0:
		return Vencimiento{Clase: VencimientoHoy}
	case dias <= 3:
		return Vencimiento{Clase: VencimientoProximo, Dias: dias}
	}
	return Vencimiento{Clase: VencimientoNinguno}
}

// VencimientoDe es el atajo para reclamos.
func VencimientoDe(r entity.Reclamo, ahora time.Time) Vencimiento {
	return EstadoVencimiento(r.FechaProgramada, r.Estado, ahora)
}

func esTerminal(estado string) bool {
	switch estado {
	case entity.ReclamoFinalizado, entity.ReclamoRechazado, entity.ReclamoResuelto:
		return true
	}
	return false
}

// diasCalendario cuenta días entre las fechas locales de desde y hasta,
// ignorando la hora. Redondea para absorber saltos de horario de verano.
func diasCalendario(desde, hasta time.Time) int {
	d := inicioDelDia(desde)
	h := inicioDelDia(hasta.In(desde.Location()))
	return int(h.Sub(d).Round(24*time.Hour) / (24 * time.Hour))
}

func inicioDelDia(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
