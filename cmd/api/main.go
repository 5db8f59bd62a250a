// Comando principal de la API: servidor HTTP y migraciones.
//
//	api            # igual que "api serve"
//	api serve
//	api migrate up|down|version
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	_ "github.com/jhoicas/practica-api/docs"
)

var rootCmd = &cobra.Command{
	Use:           "api",
	Short:         "Práctica API: usuarios, blog, tareas, tienda, notas, biblioteca y feature flags",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
