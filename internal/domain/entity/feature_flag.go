package entity

import "time"

// Flags sembrados por la migración inicial.
const (
	FlagDarkMode   = "dark_mode"
	FlagReset      = "reset"
	FlagAutoBright = "auto_bright"
)

// FeatureFlag interruptor de funcionalidad persistido.
type FeatureFlag struct {
	Name      string
	Enabled   bool
	UpdatedAt time.Time
}
