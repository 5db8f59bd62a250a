package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/practica-api/internal/infrastructure/metrics"
)

// NewServer crea la app Fiber con el ErrorHandler JSON, request id, log por
// petición y recover. collector puede ser nil.
// Immutable: params y query se guardan tal cual en el store en memoria.
func NewServer(name string, logger zerolog.Logger, collector *metrics.Collector) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      name,
		ErrorHandler: ErrorHandler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		BodyLimit:    1 << 20,
		Immutable:    true,
	})

	var recorder requestRecorder
	if collector != nil {
		recorder = collector
	}
	app.Use(requestid.New())
	app.Use(RequestLogger(logger, recorder))
	app.Use(recover.New())
	return app
}
