package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/notes"
	"github.com/aretw0/notes/pkg/adapters/fs"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write all notes as JSON, YAML or CSV",
	Long:  `Export reads the store without modifying it and writes the notes to stdout or --output.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		serializer, err := fs.SerializerByName(exportFormat)
		if err != nil {
			return err
		}

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

		data, err := serializer.Encode(store.List())
		if err != nil {
			return fmt.Errorf("encoding notes: %w", err)
		}

		if exportOutput == "" {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}

		if err := os.WriteFile(exportOutput, data, 0644); err != nil {
			return fmt.Errorf("writing export: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d notes to %s\n", store.Len(), exportOutput)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Output format: json, yaml or csv")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to file instead of stdout")
}
