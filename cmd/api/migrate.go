package main

import (
	"fmt"

	"bird-service/internal/adapters/storage"
	"bird-service/internal/config"

	"github.com/spf13/cobra"
)

func newMigrateCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Crea la tabla/colección de birds para el storage configurado",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*envFile)
			if err != nil {
				return err
			}
			if err := storage.Migrate(cmd.Context(), cfg.Storage); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "migrated %s storage\n", cfg.Storage.Driver)
			return err
		},
	}
}
