package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/municipio-digital/reclamos-admin/internal/application/abm"
	"github.com/municipio-digital/reclamos-admin/internal/application/dto"
	"github.com/municipio-digital/reclamos-admin/internal/domain"
)

// Parámetros de query reservados para criterios de listado; cualquier otro
// parámetro se interpreta como filtro exacto por campo (ej. ?estado=pendiente).
var parametrosReservados = map[string]bool{
	"q": true, "activo": true, "orden": true, "dir": true,
	"desde": true, "hasta": true,
}

// ABMHandler expone por HTTP un controlador de página ABM. Todas las
// entidades del panel comparten este handler: cambia el tipo, no el flujo.
type ABMHandler[T any, P any] struct {
	ctrl *abm.Controlador[T, P]
}

// RegistrarABM monta las rutas CRUD de una entidad bajo el router dado.
func RegistrarABM[T any, P any](r fiber.Router, ctrl *abm.Controlador[T, P]) {
	h := &ABMHandler[T, P]{ctrl: ctrl}
	r.Get("/", h.List)
	r.Get("/:id", h.GetByID)
	r.Post("/", h.Create)
	r.Put("/:id", h.Update)
	r.Delete("/:id", h.Delete)
}

// List devuelve el subconjunto visible según los criterios de la query.
// La primera petición dispara la carga del listado canónico desde el backend;
// las siguientes filtran y ordenan en memoria sin tocar la red, salvo que se
// pida ?recargar=1.
func (h *ABMHandler[T, P]) List(c *fiber.Ctx) error {
	if c.QueryBool("recargar") {
		if err := h.ctrl.Cargar(c.Context()); err != nil && h.ctrl.Estado() == abm.ErrorCarga {
			return responderError(c, err)
		}
	} else if err := h.cargarSiHaceFalta(c); err != nil {
		return responderError(c, err)
	}

	cr, err := criteriosDeQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}

	items := h.ctrl.Visibles(cr)
	return c.JSON(dto.ListadoResponse[T]{Items: items, Total: len(items)})
}

// GetByID devuelve un registro de la lista canónica por su id.
func (h *ABMHandler[T, P]) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	if err := h.cargarSiHaceFalta(c); err != nil {
		return responderError(c, err)
	}
	reg, err := h.ctrl.Obtener(id)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(reg)
}

// Create abre la hoja en modo alta y envía el formulario recibido. El body
// se parsea sobre el formulario por defecto, así los campos que no viajan
// conservan el valor inicial de la hoja.
func (h *ABMHandler[T, P]) Create(c *fiber.Ctx) error {
	form := h.ctrl.AbrirCrear()
	if err := c.BodyParser(&form); err != nil {
		h.ctrl.CerrarHoja()
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	reg, err := h.ctrl.Enviar(c.Context(), form)
	if err != nil {
		h.ctrl.CerrarHoja()
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(reg)
}

// Update abre la hoja en modo edición sobre el id y envía el formulario.
func (h *ABMHandler[T, P]) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	if err := h.cargarSiHaceFalta(c); err != nil {
		return responderError(c, err)
	}
	form, err := h.ctrl.AbrirEditar(id)
	if err != nil {
		return responderError(c, err)
	}
	if err := c.BodyParser(&form); err != nil {
		h.ctrl.CerrarHoja()
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	reg, err := h.ctrl.Enviar(c.Context(), form)
	if err != nil {
		h.ctrl.CerrarHoja()
		return responderError(c, err)
	}
	return c.JSON(reg)
}

// Delete pide la baja lógica del registro.
func (h *ABMHandler[T, P]) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	if err := h.ctrl.Desactivar(c.Context(), id); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Mensaje: "registro desactivado"})
}

// cargarSiHaceFalta dispara la primera carga del listado canónico. Solo
// propaga el error cuando no hay datos previos que mostrar.
func (h *ABMHandler[T, P]) cargarSiHaceFalta(c *fiber.Ctx) error {
	if h.ctrl.Estado() != abm.CargaInactiva {
		return nil
	}
	if err := h.ctrl.Cargar(c.Context()); err != nil && h.ctrl.Estado() == abm.ErrorCarga {
		return err
	}
	return nil
}

// criteriosDeQuery arma los criterios de listado desde la query string.
func criteriosDeQuery(c *fiber.Ctx) (abm.Criterios, error) {
	cr := abm.Criterios{
		Texto:       c.Query("q"),
		Orden:       c.Query("orden"),
		Descendente: c.Query("dir") == "desc",
	}

	if v := c.Query("activo"); v != "" {
		activo := v == "true" || v == "1"
		cr.Activo = &activo
	}

	var err error
	if cr.Desde, err = fechaDeQuery(c.Query("desde")); err != nil {
		return cr, err
	}
	if cr.Hasta, err = fechaDeQuery(c.Query("hasta")); err != nil {
		return cr, err
	}

	for clave, valor := range c.Queries() {
		if parametrosReservados[clave] || clave == "recargar" || valor == "" {
			continue
		}
		if cr.Exactos == nil {
			cr.Exactos = map[string]string{}
		}
		cr.Exactos[clave] = valor
	}
	return cr, nil
}

// fechaDeQuery parsea una fecha YYYY-MM-DD; vacío devuelve nil.
func fechaDeQuery(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return nil, errors.New("fecha inválida, se espera YYYY-MM-DD")
	}
	return &t, nil
}

// responderError traduce los errores de dominio a estados HTTP consistentes.
func responderError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrEntradaInvalida):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNoEncontrado):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro no encontrado"})
	case errors.Is(err, domain.ErrNoAutorizado):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión no autorizada"})
	case errors.Is(err, domain.ErrAccesoDenegado):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	case errors.Is(err, domain.ErrBackendNoDisponible):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "BACKEND_UNAVAILABLE", Message: "el backend de reclamos no responde"})
	case errors.Is(err, domain.ErrCargaFallida),
		errors.Is(err, domain.ErrEnvioFallido),
		errors.Is(err, domain.ErrDesactivacionFallida):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "BACKEND_ERROR", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
