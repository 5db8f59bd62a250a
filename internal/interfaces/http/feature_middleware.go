package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/practica-api/internal/application/dto"
)

// featureChecker contrato mínimo para consultar flags.
// Lo implementa *usecase.FeatureService.
type featureChecker interface {
	IsEnabled(ctx context.Context, name string) (bool, error)
}

// RequireFeature deja pasar solo si el flag está activo.
//
// Comportamiento:
//   - 403 Forbidden → flag apagado o inexistente.
//   - 503 Service Unavailable → fallo al consultar el store.
func RequireFeature(flagName string, checker featureChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		enabled, err := checker.IsEnabled(c.UserContext(), flagName)
		if err != nil {
			log.Error().Err(err).Str("flag", flagName).Msg("consulta de feature flag")
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "FEATURE_CHECK_FAILED",
				Message: "no se pudo verificar la funcionalidad, intente más tarde",
			})
		}
		if !enabled {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FEATURE_DISABLED",
				Message: "la funcionalidad '" + flagName + "' está deshabilitada",
			})
		}
		return c.Next()
	}
}
