package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/practica-api/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "practica-api", cfg.App.Name)
	assert.Equal(t, config.StorePostgres, cfg.App.StoreDriver)
	assert.Equal(t, 30, cfg.JWT.Expiration, "la expiración por defecto es de 30 minutos")
	assert.NotEmpty(t, cfg.JWT.Secret, "en development se asigna un secreto de desarrollo")
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestLoad_EnvTienePrioridad(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "super-secreto")
	t.Setenv("JWT_EXPIRATION_MINUTES", "15")
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("DB_AUTO_MIGRATE", "false")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "super-secreto", cfg.JWT.Secret)
	assert.Equal(t, 15, cfg.JWT.Expiration)
	assert.Equal(t, config.StoreMemory, cfg.App.StoreDriver)
	assert.False(t, cfg.DB.AutoMigrate)
}

func TestLoad_ProduccionSinSecretoFalla(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_DriverDesconocidoFalla(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("STORE_DRIVER", "sqlite")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:w/rd", DBName: "practica", SSLMode: "disable"}

	assert.Equal(t, "postgres://app:p%40ss%3Aw%2Frd@db:5432/practica?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://otro@host/db"
	assert.Equal(t, "postgres://otro@host/db", c.ConnectionString(), "DATABASE_URL tiene prioridad")
}
