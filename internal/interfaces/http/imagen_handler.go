package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/municipio-digital/reclamos-admin/internal/application/dto"
	"github.com/municipio-digital/reclamos-admin/internal/application/usecase"
)

// ImagenHandler maneja la descarga masiva y la resolución de imágenes de categorías.
type ImagenHandler struct {
	uc *usecase.ImagenUseCase
}

// NewImagenHandler construye el handler.
func NewImagenHandler(uc *usecase.ImagenUseCase) *ImagenHandler {
	return &ImagenHandler{uc: uc}
}

// DescargarTodas godoc
// @Summary      Descarga masiva de imágenes de categorías
// @Description  Descarga una sola vez por municipio; si la bandera local ya está puesta, la operación se omite.
// @Tags         imagenes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DescargaImagenesRequest  true  "Municipio y nombres de categorías"
// @Success      200   {object}  dto.DescargaImagenesResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/imagenes/descargar-todas [post]
func (h *ImagenHandler) DescargarTodas(c *fiber.Ctx) error {
	var in dto.DescargaImagenesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.MunicipioID == "" {
		in.MunicipioID = GetMunicipioID(c)
	}
	out, err := h.uc.DescargarTodas(c.Context(), in.MunicipioID, in.Nombres)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// URLCategoria godoc
// @Summary      URL de la imagen de una categoría
// @Tags         imagenes
// @Security     Bearer
// @Produce      json
// @Param        nombre  query  string  true  "Nombre de la categoría"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/imagenes/categoria [get]
func (h *ImagenHandler) URLCategoria(c *fiber.Ctx) error {
	nombre := c.Query("nombre")
	if nombre == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre es requerido"})
	}
	url, err := h.uc.URLCategoria(c.Context(), nombre)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(fiber.Map{"nombre": nombre, "url": url})
}
