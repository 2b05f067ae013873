package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/municipio-digital/reclamos-admin/internal/application/dto"
	"github.com/municipio-digital/reclamos-admin/internal/application/usecase"
)

// ReclamoHandler expone el tablero de tarjetas de reclamos (solo lectura).
type ReclamoHandler struct {
	uc *usecase.ReclamoUseCase
}

// NewReclamoHandler construye el handler.
func NewReclamoHandler(uc *usecase.ReclamoUseCase) *ReclamoHandler {
	return &ReclamoHandler{uc: uc}
}

// List godoc
// @Summary      Tablero de reclamos
// @Description  Lista de tarjetas de reclamos con hechos derivados (actividad reciente, vencimiento, ícono).
// @Tags         reclamos
// @Security     Bearer
// @Produce      json
// @Param        q       query  string  false  "Búsqueda por texto"
// @Param        estado  query  string  false  "Filtrar por estado"
// @Param        desde   query  string  false  "Fecha programada desde (YYYY-MM-DD)"
// @Param        hasta   query  string  false  "Fecha programada hasta (YYYY-MM-DD)"
// @Param        orden   query  string  false  "Columna de orden: titulo | estado | fecha"
// @Param        dir     query  string  false  "asc | desc"
// @Success      200  {object}  dto.ListadoResponse[dto.TarjetaReclamo]
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/reclamos [get]
func (h *ReclamoHandler) List(c *fiber.Ctx) error {
	consulta := dto.ConsultaReclamos{
		Texto:       c.Query("q"),
		Estado:      c.Query("estado"),
		Orden:       c.Query("orden"),
		Descendente: c.Query("dir") == "desc",
	}

	var err error
	if consulta.Desde, err = fechaDeQuery(c.Query("desde")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	if consulta.Hasta, err = fechaDeQuery(c.Query("hasta")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}

	tarjetas, err := h.uc.Tarjetas(c.Context(), consulta, time.Now())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.ListadoResponse[dto.TarjetaReclamo]{Items: tarjetas, Total: len(tarjetas)})
}
