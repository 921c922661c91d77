package main

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aretw0/notes"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the resolved store file and its state",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveStorePath()
		if err != nil {
			return err
		}

		store, err := notes.Open(context.Background(), path,
			notes.WithReadOnly(true),
			notes.WithLogger(slog.Default()),
		)
		if err != nil {
			return err
		}
		defer store.Close()

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(store.State())
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
