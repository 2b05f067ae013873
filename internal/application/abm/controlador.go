// Package abm implementa el controlador genérico de páginas de
// administración (Altas/Bajas/Modificaciones). Un único motor orquesta el
// ciclo cargar → filtrar → editar → enviar → recargar; cada entidad se
// enchufa con una Config que declara sus campos de búsqueda, columnas de
// orden y validación.
package abm

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/municipio-digital/reclamos-admin/internal/application/listado"
	"github.com/municipio-digital/reclamos-admin/internal/application/reveal"
	"github.com/municipio-digital/reclamos-admin/internal/domain"
)

// Estados de carga del listado.
type EstadoCarga int

const (
	CargaInactiva EstadoCarga = iota
	Cargando
	Cargado
	ErrorCarga
)

// Estados de la hoja de detalle/edición.
type EstadoHoja int

const (
	HojaCerrada EstadoHoja = iota
	HojaCrear
	HojaEditar
	HojaEnviando
)

// Cliente es el puerto hacia el módulo de backend de una entidad. Delete es
// semánticamente una desactivación (baja lógica), no un borrado de fila.
type Cliente[T any, P any] interface {
	GetAll(ctx context.Context, filtros map[string]string) ([]T, error)
	Create(ctx context.Context, form P) (*T, error)
	Update(ctx context.Context, id int, form P) (*T, error)
	Delete(ctx context.Context, id int) error
}

// Config declara cómo una entidad se enchufa al motor genérico.
type Config[T any, P any] struct {
	// Entidad es el nombre en singular para logs y notificaciones.
	Entidad string
	// ID extrae el identificador estable asignado por el backend.
	ID func(T) int
	// Activo extrae la bandera de baja lógica.
	Activo func(T) bool
	// CamposBusqueda son los campos de texto sobre los que busca la consulta
	// libre (semántica OR).
	CamposBusqueda []func(T) string
	// Columnas mapea nombre de columna → extractor de la clave de orden.
	Columnas map[string]func(T) string
	// CamposFiltro mapea nombre de filtro exacto (estado, rol) → extractor.
	CamposFiltro map[string]func(T) string
	// CampoFecha habilita el filtro por rango de fechas si no es nil.
	CampoFecha func(T) *time.Time
	// SoloActivosPorDefecto define la política de la pantalla cuando el
	// operador no eligió filtro de activo. Es deliberadamente por entidad.
	SoloActivosPorDefecto bool
	// Validar aplica las precondiciones locales del formulario.
	Validar func(P) error
	// FormularioNuevo arma los valores por defecto del alta.
	FormularioNuevo func() P
	// FormularioDe copia los valores del registro a editar. Los campos
	// sensibles (contraseñas) no deben copiarse nunca.
	FormularioDe func(T) P
	// Reveal son las demoras de la aparición escalonada de la primera carga.
	Reveal reveal.Config
}

// Criterios son los filtros vivos de la pantalla: se recalculan sincrónicos
// sobre la lista canónica en cada cambio, sin tocar la red.
type Criterios struct {
	Texto       string
	Activo      *bool // nil aplica la política por defecto de la entidad
	Exactos     map[string]string
	Desde       *time.Time
	Hasta       *time.Time
	Orden       string
	Descendente bool
}

// Controlador es una instancia de página ABM: dueña exclusiva de su lista
// canónica y de las máquinas de estado de carga y de hoja.
type Controlador[T any, P any] struct {
	cfg     Config[T, P]
	cliente Cliente[T, P]
	notif   Notificador
	log     zerolog.Logger

	mu         sync.Mutex
	estado     EstadoCarga
	canonica   []T
	generacion uint64
	hoja       EstadoHoja
	seleccion  *int
	formulario P

	secuencia *reveal.Secuenciador
}

// Nuevo construye el controlador de una entidad.
func Nuevo[T any, P any](cfg Config[T, P], cliente Cliente[T, P], notif Notificador, log zerolog.Logger) *Controlador[T, P] {
	return &Controlador[T, P]{
		cfg:       cfg,
		cliente:   cliente,
		notif:     notif,
		log:       log.With().Str("entidad", cfg.Entidad).Logger(),
		secuencia: reveal.Nuevo(cfg.Reveal),
	}
}

// Cargar pide el listado completo al backend y lo vuelve la lista canónica.
// Ante fallo conserva intacta la lista anterior (nunca hay sobreescritura
// parcial) y notifica. Cada carga lleva un número de generación: una
// respuesta lenta cuya generación ya no es la vigente se descarta, así un
// fetch viejo no puede pisar un listado más nuevo.
func (c *Controlador[T, P]) Cargar(ctx context.Context) error {
	c.mu.Lock()
	c.estado = Cargando
	c.generacion++
	gen := c.generacion
	c.mu.Unlock()

	regs, err := c.cliente.GetAll(ctx, nil)

	c.mu.Lock()
	if gen != c.generacion {
		c.mu.Unlock()
		c.log.Debug().Uint64("generacion", gen).Msg("respuesta de carga obsoleta descartada")
		return nil
	}
	if err != nil {
		if c.canonica == nil {
			c.estado = ErrorCarga
		} else {
			c.estado = Cargado
		}
		c.mu.Unlock()
		c.log.Error().Err(err).Msg("carga de listado fallida")
		c.notif.Error("No se pudo cargar el listado de " + c.cfg.Entidad)
		return fmt.Errorf("%w: %v", domain.ErrCargaFallida, err)
	}

	c.canonica = regs
	c.estado = Cargado
	ids := make([]int, 0, len(regs))
	for _, r := range regs {
		ids = append(ids, c.cfg.ID(r))
	}
	c.mu.Unlock()

	c.secuencia.Iniciar(ids)
	return nil
}

// Visibles deriva el subconjunto visible desde la lista canónica según los
// criterios. No toca la red ni muta la canónica.
func (c *Controlador[T, P]) Visibles(cr Criterios) []T {
	c.mu.Lock()
	canonica := make([]T, len(c.canonica))
	copy(canonica, c.canonica)
	c.mu.Unlock()

	consulta := listado.Consulta[T]{
		Texto:       cr.Texto,
		CamposTexto: c.cfg.CamposBusqueda,
		Descendente: cr.Descendente,
	}
	if cr.Orden != "" {
		consulta.Orden = c.cfg.Columnas[cr.Orden]
	}

	activo := cr.Activo
	if activo == nil && c.cfg.SoloActivosPorDefecto {
		v := true
		activo = &v
	}
	if activo != nil && c.cfg.Activo != nil {
		consulta.Exactos = append(consulta.Exactos, listado.PorActivo(c.cfg.Activo, *activo))
	}
	for campo, valor := range cr.Exactos {
		if extractor, ok := c.cfg.CamposFiltro[campo]; ok && valor != "" {
			consulta.Exactos = append(consulta.Exactos, listado.PorIgual(extractor, valor))
		}
	}
	if c.cfg.CampoFecha != nil && (cr.Desde != nil || cr.Hasta != nil) {
		consulta.Exactos = append(consulta.Exactos, listado.PorRangoFechas(c.cfg.CampoFecha, cr.Desde, cr.Hasta))
	}

	return listado.Visibles(canonica, consulta)
}

// Obtener busca un registro en la lista canónica por id.
func (c *Controlador[T, P]) Obtener(id int) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, r := range c.canonica {
		if c.cfg.ID(r) == id {
			r := r
			return &r, nil
		}
	}
	return nil, domain.ErrNoEncontrado
}

// AbrirCrear abre la hoja en modo alta con el formulario en sus valores por
// defecto.
func (c *Controlador[T, P]) AbrirCrear() P {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hoja = HojaCrear
	c.seleccion = nil
	c.formulario = c.cfg.FormularioNuevo()
	return c.formulario
}

// AbrirEditar abre la hoja en modo edición con el formulario cargado desde
// el registro seleccionado.
func (c *Controlador[T, P]) AbrirEditar(id int) (P, error) {
	var vacio P
	reg, err := c.Obtener(id)
	if err != nil {
		return vacio, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hoja = HojaEditar
	c.seleccion = &id
	c.formulario = c.cfg.FormularioDe(*reg)
	return c.formulario, nil
}

// CerrarHoja descarta la edición en curso sin enviar nada.
func (c *Controlador[T, P]) CerrarHoja() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hoja = HojaCerrada
	c.seleccion = nil
}

// Enviar valida y envía el formulario: alta o modificación según el modo de
// la hoja. Con éxito cierra la hoja y recarga la lista canónica completa;
// con fallo la hoja queda abierta con lo tipeado preservado.
func (c *Controlador[T, P]) Enviar(ctx context.Context, form P) (*T, error) {
	c.mu.Lock()
	if c.hoja != HojaCrear && c.hoja != HojaEditar {
		c.mu.Unlock()
		return nil, fmt.Errorf("%w: la hoja no está abierta", domain.ErrEntradaInvalida)
	}
	modo := c.hoja
	objetivo := c.seleccion
	c.formulario = form

	if c.cfg.Validar != nil {
		if err := c.cfg.Validar(form); err != nil {
			c.mu.Unlock()
			c.notif.Error(err.Error())
			return nil, err
		}
	}
	c.hoja = HojaEnviando
	c.mu.Unlock()

	var reg *T
	var err error
	if objetivo != nil {
		reg, err = c.cliente.Update(ctx, *objetivo, form)
	} else {
		reg, err = c.cliente.Create(ctx, form)
	}

	c.mu.Lock()
	if err != nil {
		// La hoja vuelve a su modo anterior con el formulario intacto.
		c.hoja = modo
		c.mu.Unlock()
		c.log.Error().Err(err).Msg("envío de formulario rechazado")
		c.notif.Error("No se pudo guardar " + c.cfg.Entidad)
		return nil, fmt.Errorf("%w: %v", domain.ErrEnvioFallido, err)
	}
	c.hoja = HojaCerrada
	c.seleccion = nil
	c.mu.Unlock()

	c.notif.Exito("Se guardó " + c.cfg.Entidad + " correctamente")
	if err := c.Cargar(ctx); err != nil {
		c.log.Warn().Err(err).Msg("recarga posterior al envío fallida")
	}
	return reg, nil
}

// Desactivar pide la baja lógica al backend y recarga. Nunca remueve el
// registro de la lista canónica antes de la confirmación.
func (c *Controlador[T, P]) Desactivar(ctx context.Context, id int) error {
	if err := c.cliente.Delete(ctx, id); err != nil {
		c.log.Error().Err(err).Int("id", id).Msg("desactivación rechazada")
		c.notif.Error("No se pudo desactivar " + c.cfg.Entidad)
		return fmt.Errorf("%w: %v", domain.ErrDesactivacionFallida, err)
	}
	c.notif.Exito("Se desactivó " + c.cfg.Entidad)
	if err := c.Cargar(ctx); err != nil {
		c.log.Warn().Err(err).Msg("recarga posterior a la desactivación fallida")
	}
	return nil
}

// ── Accesores de estado ───────────────────────────────────────────────────────

// Estado devuelve el estado de carga actual.
func (c *Controlador[T, P]) Estado() EstadoCarga {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.estado
}

// Hoja devuelve el estado actual de la hoja de edición.
func (c *Controlador[T, P]) Hoja() EstadoHoja {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hoja
}

// Formulario devuelve el estado vigente del formulario (preservado tras un
// envío fallido).
func (c *Controlador[T, P]) Formulario() P {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.formulario
}

// Canonica devuelve una copia de la lista canónica.
func (c *Controlador[T, P]) Canonica() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.canonica))
	copy(out, c.canonica)
	return out
}

// Revelado informa si el registro ya apareció en la secuencia escalonada.
func (c *Controlador[T, P]) Revelado(id int) bool { return c.secuencia.Revelado(id) }

// Detener cancela los timers pendientes de la secuencia (apagado).
func (c *Controlador[T, P]) Detener() { c.secuencia.Detener() }
