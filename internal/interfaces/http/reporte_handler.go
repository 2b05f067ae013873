package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/municipio-digital/reclamos-admin/internal/application/dto"
	"github.com/municipio-digital/reclamos-admin/internal/application/usecase"
)

// ReporteHandler expone la descarga del reporte PDF de compras.
type ReporteHandler struct {
	uc *usecase.ReporteComprasUseCase
}

// NewReporteHandler construye el handler.
func NewReporteHandler(uc *usecase.ReporteComprasUseCase) *ReporteHandler {
	return &ReporteHandler{uc: uc}
}

// Compras godoc
// @Summary      Reporte PDF de compras
// @Description  Genera el PDF de compras activas del período y lo devuelve como descarga.
// @Tags         reportes
// @Security     Bearer
// @Produce      application/pdf
// @Param        desde  query  string  false  "Fecha desde (YYYY-MM-DD)"
// @Param        hasta  query  string  false  "Fecha hasta (YYYY-MM-DD)"
// @Success      200  {file}  binary
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/reportes/compras [get]
func (h *ReporteHandler) Compras(c *fiber.Ctx) error {
	desde, err := fechaDeQuery(c.Query("desde"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	hasta, err := fechaDeQuery(c.Query("hasta"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}

	pdf, nombre, err := h.uc.Descargar(c.Context(), desde, hasta)
	if err != nil {
		return responderError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+nombre+`"`)
	return c.Send(pdf)
}
