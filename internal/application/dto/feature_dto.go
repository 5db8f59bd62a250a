package dto

import "time"

// UpdateFeatureRequest cuerpo de PUT /features.
type UpdateFeatureRequest struct {
	FlagName string `json:"flag_name" validate:"required,max=64"`
	Enabled  *bool  `json:"enabled" validate:"required"`
}

// FeatureResponse estado de un flag.
type FeatureResponse struct {
	Name      string    `json:"name"`
	Enabled   bool      `json:"enabled"`
	UpdatedAt time.Time `json:"updated_at"`
}
