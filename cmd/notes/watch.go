package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/aretw0/notes"
	"github.com/aretw0/notes/pkg/core"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print the notes again every time the store file changes",
	Long:  `Watch keeps running until interrupted (Ctrl+C). It never writes to the store.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveStorePath()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		store, err := notes.Open(ctx, path,
			notes.WithReadOnly(true),
			notes.WithLogger(slog.Default()),
		)
		if err != nil {
			return err
		}
		defer store.Close()

		events, err := store.Watch(ctx)
		if err != nil {
			return err
		}

		return watchLoop(ctx, store, events, matchGlob, cmd.OutOrStdout())
	},
}

// watchLoop prints the list, then reloads and reprints it on every event.
func watchLoop(ctx context.Context, store *core.Store, events <-chan core.Event, match string, out io.Writer) error {
	if err := printList(out, store.List(), match, false); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case e, ok := <-events:
			if !ok {
				return nil
			}
			if err := store.Load(ctx); err != nil {
				slog.Default().Error("reload failed", "event", e.String(), "error", err)
				continue
			}
			fmt.Fprintf(out, "\n# %s\n", e.String())
			if err := printList(out, store.List(), match, false); err != nil {
				return err
			}
		}
	}
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVar(&matchGlob, "match", "", "Only list notes whose text matches the glob")
}
