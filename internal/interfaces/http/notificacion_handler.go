package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/municipio-digital/reclamos-admin/internal/application/abm"
	"github.com/municipio-digital/reclamos-admin/internal/application/dto"
)

// NotificacionHandler expone las notificaciones recientes del panel (toasts).
type NotificacionHandler struct {
	notif *abm.NotificadorMemoria
}

// NewNotificacionHandler construye el handler.
func NewNotificacionHandler(notif *abm.NotificadorMemoria) *NotificacionHandler {
	return &NotificacionHandler{notif: notif}
}

// Recientes godoc
// @Summary      Notificaciones recientes
// @Tags         notificaciones
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListadoResponse[abm.Notificacion]
// @Router       /api/notificaciones [get]
func (h *NotificacionHandler) Recientes(c *fiber.Ctx) error {
	items := h.notif.Recientes()
	return c.JSON(dto.ListadoResponse[abm.Notificacion]{Items: items, Total: len(items)})
}
