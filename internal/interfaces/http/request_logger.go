package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// RequestLogger registra cada petición con método, ruta, estado y duración.
func RequestLogger(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		inicio := time.Now()
		err := c.Next()

		evento := log.Info()
		if err != nil || c.Response().StatusCode() >= fiber.StatusInternalServerError {
			evento = log.Error().Err(err)
		}
		evento.
			Str("metodo", c.Method()).
			Str("ruta", c.Path()).
			Int("estado", c.Response().StatusCode()).
			Dur("duracion", time.Since(inicio)).
			Msg("petición atendida")
		return err
	}
}
