// @title Bird Service API
// @version 1.0
// @description API para registrar birds (id, species, size) sobre el storage configurado.
// @BasePath /
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "bird-service",
		Short:         "Bird service: HTTP API, migraciones y cliente",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "archivo .env opcional")

	root.AddCommand(
		newServeCmd(&envFile),
		newMigrateCmd(&envFile),
		newBirdsCmd(),
	)
	return root
}
