package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// HeaderRequestID cabecera de correlación; se respeta la del cliente si viene.
const HeaderRequestID = "X-Request-ID"

// RequestLogger registra cada petición (método, ruta, estado, duración) con un request_id.
// Los 5xx salen en error, los 4xx en warn y el resto en debug.
func RequestLogger(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		reqID := c.Get(HeaderRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set(HeaderRequestID, reqID)

		err := c.Next()
		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}

		ev := log.Debug()
		switch {
		case status >= fiber.StatusInternalServerError || (err != nil && status < fiber.StatusBadRequest):
			ev = log.Error().Err(err)
		case status >= fiber.StatusBadRequest:
			ev = log.Warn()
		}
		ev.Str("request_id", reqID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Str("company_id", GetCompanyID(c)).
			Msg("petición HTTP")
		return err
	}
}
