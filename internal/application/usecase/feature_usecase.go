package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/jhoicas/practica-api/internal/application/dto"
	"github.com/jhoicas/practica-api/internal/domain"
	"github.com/jhoicas/practica-api/internal/domain/entity"
	"github.com/jhoicas/practica-api/internal/domain/repository"
)

// FeatureService lee y cambia los feature flags persistidos.
// Es el único punto de la aplicación que conoce cómo se activan las funcionalidades.
type FeatureService struct {
	flags repository.FeatureFlagRepository
}

// NewFeatureService construye el servicio de flags.
func NewFeatureService(flags repository.FeatureFlagRepository) *FeatureService {
	return &FeatureService{flags: flags}
}

// IsEnabled informa si el flag está activo.
// Un flag inexistente cuenta como apagado (false, sin error).
// Devuelve error solo ante fallos de infraestructura (DB caída, timeout, etc.).
func (s *FeatureService) IsEnabled(ctx context.Context, name string) (bool, error) {
	if name == "" {
		return false, fmt.Errorf("feature: name es obligatorio")
	}
	f, err := s.flags.Get(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return f.Enabled, nil
}

// List todos los flags ordenados por nombre.
func (s *FeatureService) List(ctx context.Context) ([]dto.FeatureResponse, error) {
	flags, err := s.flags.List(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Map(flags, func(f *entity.FeatureFlag, _ int) dto.FeatureResponse { return toFeatureResponse(f) }), nil
}

// Get un flag; inexistente es domain.ErrNotFound.
func (s *FeatureService) Get(ctx context.Context, name string) (*dto.FeatureResponse, error) {
	f, err := s.flags.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	out := toFeatureResponse(f)
	return &out, nil
}

// SetEnabled cambia un flag existente; no crea flags nuevos.
func (s *FeatureService) SetEnabled(ctx context.Context, in dto.UpdateFeatureRequest) (*dto.FeatureResponse, error) {
	if in.Enabled == nil {
		return nil, domain.NewFieldError("enabled", "required")
	}
	f, err := s.flags.SetEnabled(ctx, strings.TrimSpace(in.FlagName), *in.Enabled)
	if err != nil {
		return nil, err
	}
	out := toFeatureResponse(f)
	return &out, nil
}

func toFeatureResponse(f *entity.FeatureFlag) dto.FeatureResponse {
	return dto.FeatureResponse{Name: f.Name, Enabled: f.Enabled, UpdatedAt: f.UpdatedAt}
}
