package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"
)

// requestRecorder lo implementa *metrics.Collector.
type requestRecorder interface {
	RecordRequest(method, route string, status int, d time.Duration)
}

// RequestLogger registra una línea por petición. Usa la plantilla de ruta
// (p. ej. /blog/posts/:id) para no disparar la cardinalidad de las métricas.
func RequestLogger(logger zerolog.Logger, metrics requestRecorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		if err != nil {
			// el ErrorHandler escribe la respuesta; aquí solo se fija el status final
			_ = c.App().ErrorHandler(c, err)
			err = nil
		}
		latency := time.Since(start)
		status := c.Response().StatusCode()
		route := c.Route().Path

		ev := logger.Info()
		switch {
		case status >= 500:
			ev = logger.Error()
		case status >= 400:
			ev = logger.Warn()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Str("route", route).
			Int("status", status).
			Dur("latency", latency).
			Str("request_id", requestID(c)).
			Msg("request")

		if metrics != nil {
			metrics.RecordRequest(c.Method(), route, status, latency)
		}
		return err
	}
}

func requestID(c *fiber.Ctx) string {
	if v, ok := c.Locals(requestid.ConfigDefault.ContextKey).(string); ok {
		return v
	}
	return c.GetRespHeader(fiber.HeaderXRequestID)
}
