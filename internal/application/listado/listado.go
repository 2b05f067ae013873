// Package listado deriva el subconjunto visible y ordenado de una lista
// canónica ya cargada en memoria. Nunca muta la lista de entrada: el
// resultado es siempre un slice nuevo, recalculado sincrónicamente en cada
// cambio de consulta.
package listado

import (
	"sort"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Consulta describe qué subconjunto mostrar y en qué orden.
//   - Texto se compara como substring, insensible a mayúsculas y acentos,
//     contra los campos configurados (semántica OR entre campos).
//   - Exactos son filtros conjuntivos independientes del texto.
//   - Orden extrae la clave de ordenamiento; los empates conservan el orden
//     canónico (orden estable).
type Consulta[T any] struct {
	Texto       string
	CamposTexto []func(T) string
	Exactos     []func(T) bool
	Orden       func(T) string
	Descendente bool
}

// Visibles aplica filtro y orden en un solo paso.
func Visibles[T any](canonica []T, c Consulta[T]) []T {
	return Ordenar(Filtrar(canonica, c), c.Orden, c.Descendente)
}

// Filtrar devuelve los registros que superan el texto y todos los filtros
// exactos. Con texto vacío y sin filtros devuelve una copia completa en el
// orden original.
func Filtrar[T any](canonica []T, c Consulta[T]) []T {
	texto := Normalizar(c.Texto)
	out := make([]T, 0, len(canonica))
	for _, reg := range canonica {
		if !pasaExactos(reg, c.Exactos) {
			continue
		}
		if texto != "" && !coincideTexto(reg, texto, c.CamposTexto) {
			continue
		}
		out = append(out, reg)
	}
	return out
}

// Ordenar devuelve una copia ordenada por la clave; clave nil devuelve la
// copia tal cual. Usa orden estable: empates conservan posición relativa.
func Ordenar[T any](regs []T, clave func(T) string, descendente bool) []T {
	out := make([]T, len(regs))
	copy(out, regs)
	if clave == nil {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := Normalizar(clave(out[i])), Normalizar(clave(out[j]))
		if descendente {
			return a > b
		}
		return a < b
	})
	return out
}

func pasaExactos[T any](reg T, filtros []func(T) bool) bool {
	for _, f := range filtros {
		if !f(reg) {
			return false
		}
	}
	return true
}

func coincideTexto[T any](reg T, texto string, campos []func(T) string) bool {
	for _, campo := range campos {
		if strings.Contains(Normalizar(campo(reg)), texto) {
			return true
		}
	}
	return false
}

// ── Filtros exactos reutilizables ─────────────────────────────────────────────

// PorActivo filtra por la bandera de baja lógica.
func PorActivo[T any](campo func(T) bool, valor bool) func(T) bool {
	return func(reg T) bool { return campo(reg) == valor }
}

// PorIgual filtra por igualdad exacta de un campo de texto (estado, rol).
func PorIgual[T any](campo func(T) string, valor string) func(T) bool {
	return func(reg T) bool { return campo(reg) == valor }
}

// PorRangoFechas filtra por día calendario sobre un campo de fecha opcional.
// Cualquier extremo en nil deja ese lado sin restricción; el registro sin
// fecha solo pasa cuando no hay restricción alguna.
func PorRangoFechas[T any](campo func(T) *time.Time, desde, hasta *time.Time) func(T) bool {
	return func(reg T) bool {
		f := campo(reg)
		if f == nil {
			return desde == nil && hasta == nil
		}
		dia := soloFecha(*f)
		if desde != nil && dia.Before(soloFecha(*desde)) {
			return false
		}
		if hasta != nil && dia.After(soloFecha(*hasta)) {
			return false
		}
		return true
	}
}

func soloFecha(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ── Normalización ─────────────────────────────────────────────────────────────

var sinDiacriticos = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Normalizar baja a minúsculas y quita diacríticos, de modo que "Bacheo"
// coincida con "bache" y "Jardín" con "jardin". Si la transformación falla
// (entrada no UTF-8 válida) se degrada a minúsculas simples.
func Normalizar(s string) string {
	plano, _, err := transform.String(sinDiacriticos, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(plano)
}
