package repository

import (
	"context"

	"github.com/jhoicas/practica-api/internal/domain/entity"
)

// FeatureFlagRepository los flags se crean por migración; aquí solo se leen y cambian.
type FeatureFlagRepository interface {
	Get(ctx context.Context, name string) (*entity.FeatureFlag, error)
	List(ctx context.Context) ([]*entity.FeatureFlag, error)
	SetEnabled(ctx context.Context, name string, enabled bool) (*entity.FeatureFlag, error)
}
