package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/notes"
	"github.com/aretw0/notes/internal/config"
)

var (
	verbose   bool
	storeFile string

	listFlag  bool
	addText   string
	deleteArg string
	resetFlag bool
	matchGlob string
	listJSON  bool

	userConfig = &config.Config{}
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "notes",
	Short: "Add, list and delete short text notes",
	Long: `notes keeps a list of short text notes in a single JSON file
in your home directory (~/.notes.json by default).

Examples:
  notes -a "buy milk"
  notes -l
  notes -d 1
  notes -r`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		userConfig = cfg

		level := slog.LevelWarn
		if verbose || cfg.Verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		acts := actions{
			list:   listFlag,
			add:    cmd.Flags().Changed("add"),
			text:   addText,
			reset:  resetFlag,
			match:  matchGlob,
			asJSON: listJSON,
		}

		if cmd.Flags().Changed("delete") {
			position, err := parsePosition(deleteArg)
			if err != nil {
				return err
			}
			acts.delete = true
			acts.position = position
		}

		if acts.none() {
			return cmd.Help()
		}

		path, err := resolveStorePath()
		if err != nil {
			return err
		}

		ctx := context.Background()
		store, err := notes.Open(ctx, path, notes.WithLogger(slog.Default()))
		if err != nil {
			return err
		}
		defer store.Close()

		return runActions(ctx, store, acts, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func resolveStorePath() (string, error) {
	return notes.ResolvePath(storeFile, userConfig.StorePath)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&storeFile, "file", "", "Store file (default ~/.notes.json, or $NOTES_FILE)")

	rootCmd.Flags().BoolVarP(&listFlag, "list", "l", false, "List notes")
	rootCmd.Flags().StringVarP(&addText, "add", "a", "", "Add a note with the given text")
	rootCmd.Flags().StringVarP(&deleteArg, "delete", "d", "", "Delete the note at the given position (1-based)")
	rootCmd.Flags().BoolVarP(&resetFlag, "reset", "r", false, "Delete all notes")
	rootCmd.Flags().StringVar(&matchGlob, "match", "", "Only list notes whose text matches the glob")
	rootCmd.Flags().BoolVar(&listJSON, "json", false, "List notes as JSON")
}
