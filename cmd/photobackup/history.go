package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/MKhiriev/photo-backup/internal/config"
	"github.com/MKhiriev/photo-backup/internal/logger"
	"github.com/MKhiriev/photo-backup/internal/service"
	"github.com/MKhiriev/photo-backup/internal/store"
	"github.com/MKhiriev/photo-backup/models"
)

const defaultHistoryRuns = 20

// newHistoryCmd creates the `history` command.
func newHistoryCmd() *cobra.Command {
	var runs int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent sync runs recorded in the journal.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHistory(cmd.Context(), cmd.Flags(), runs, cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVarP(&runs, "runs", "n", defaultHistoryRuns, "Number of runs to list, 0 lists all")

	return cmd
}

func runHistory(ctx context.Context, fs *pflag.FlagSet, limit int, w io.Writer) error {
	cfg, err := config.GetStorageConfig(fs)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.NewLogger("history", true)

	storages, err := store.NewStorages(ctx, *cfg, afero.NewOsFs(), log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer storages.Close()

	runs, err := service.NewHistoryService(storages.Journal).History(ctx, limit)
	if err != nil {
		return err
	}

	return printRuns(w, runs)
}

// printRuns renders runs as an aligned table, newest first.
func printRuns(w io.Writer, runs []models.JournalRun) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "RUN\tSTARTED\tTOOK\tSTATUS\tUNITS\tSCOPE\tERROR")
	for _, r := range runs {
		took := "-"
		if r.FinishedAt != nil {
			took = r.FinishedAt.Sub(r.StartedAt).Round(time.Second).String()
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			r.ID,
			r.StartedAt.Local().Format(models.TimestampLayout),
			took,
			r.Status,
			r.Units,
			r.Scope,
			r.Error,
		)
	}

	return tw.Flush()
}
