package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/practica-api/internal/infrastructure/postgres"
	"github.com/jhoicas/practica-api/pkg/config"
	"github.com/jhoicas/practica-api/pkg/logger"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migraciones de la base PostgreSQL",
	Long: `Aplica o revierte las migraciones embebidas en el binario.

Subcomandos:
  up       aplica las migraciones pendientes
  down     revierte la última migración
  version  muestra la versión aplicada`,
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Aplica las migraciones pendientes",
	RunE: func(cmd *cobra.Command, args []string) error {
		url, log, err := migrateSetup()
		if err != nil {
			return err
		}
		return postgres.RunMigrations(url, log)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Revierte la última migración",
	RunE: func(cmd *cobra.Command, args []string) error {
		url, log, err := migrateSetup()
		if err != nil {
			return err
		}
		return postgres.RollbackMigrations(url, log)
	},
}

var migrateVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Muestra la versión aplicada",
	RunE: func(cmd *cobra.Command, args []string) error {
		url, _, err := migrateSetup()
		if err != nil {
			return err
		}
		v, dirty, err := postgres.MigrationVersion(url)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "versión %d (dirty=%t)\n", v, dirty)
		return nil
	},
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateVersionCmd)
}

func migrateSetup() (string, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return "", nil, fmt.Errorf("cargar configuración: %w", err)
	}
	return cfg.DB.ConnectionString(), logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}), nil
}
