package main

import (
	"encoding/json"
	"time"

	"bird-service/internal/client"
	"bird-service/internal/domain/birds"
	"bird-service/internal/platform/httpclient"

	"github.com/spf13/cobra"
)

func newBirdsCmd() *cobra.Command {
	var (
		server  string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "birds",
		Short: "Cliente de la API de birds",
	}
	cmd.PersistentFlags().StringVar(&server, "server", "http://localhost:8080", "URL base de la API")
	cmd.PersistentFlags().DurationVar(&timeout, "timeout", httpclient.DefaultTimeout, "timeout por request")

	newClient := func() (*client.Client, error) {
		return client.New(server, httpclient.WithTimeout(timeout))
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Lista todos los birds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			items, err := c.List(cmd.Context())
			if err != nil {
				return err
			}
			out := make([]birds.Record, 0, len(items))
			for _, b := range items {
				out = append(out, b.Record())
			}
			return printJSON(cmd, out)
		},
	}

	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Muestra un bird",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			b, err := c.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, b.Record())
		},
	}

	var id, species, size string
	putCmd := &cobra.Command{
		Use:   "put",
		Short: "Guarda un bird (sin --id el servidor asigna uno)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}

			b := birds.New()
			b.SetID(id)
			b.SetSpecies(species)
			b.SetSize(size)

			saved, err := c.Put(cmd.Context(), *b)
			if err != nil {
				return err
			}
			return printJSON(cmd, saved.Record())
		},
	}
	putCmd.Flags().StringVar(&id, "id", "", "id del bird")
	putCmd.Flags().StringVar(&species, "species", "", "especie")
	putCmd.Flags().StringVar(&size, "size", "", "tamaño")

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Elimina un bird",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			return c.Delete(cmd.Context(), args[0])
		},
	}

	cmd.AddCommand(listCmd, getCmd, putCmd, deleteCmd)
	return cmd
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
