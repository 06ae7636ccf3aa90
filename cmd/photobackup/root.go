// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/MKhiriev/photo-backup/internal/adapter"
	"github.com/MKhiriev/photo-backup/internal/config"
	"github.com/MKhiriev/photo-backup/internal/logger"
	"github.com/MKhiriev/photo-backup/internal/service"
	"github.com/MKhiriev/photo-backup/internal/store"
	"github.com/MKhiriev/photo-backup/internal/telemetry"
	"github.com/MKhiriev/photo-backup/models"
)

const shutdownTimeout = 5 * time.Second

// newRootCmd creates the `photobackup` command. Positional arguments are the
// ids of the collections, sets or photos to sync.
func newRootCmd(info models.AppBuildInfo) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "photobackup [flags] [ID...]",
		Short: "Back up a photo account into a tree of XML files.",
		Long: "Back up the contacts, favorites, groups, collections, sets, galleries,\n" +
			"photos and profile of one account into a directory of XML files.\n" +
			"Given ids, only the named collections, sets or photos are refreshed\n" +
			"and merged into the files of an earlier full sync.",
		Version: info.BuildVersion(),
		Args:    cobra.ArbitraryArgs,

		// main logs the returned error
		SilenceUsage:  true,
		SilenceErrors: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(cmd.Context(), cmd.Flags(), args, info)
		},
	}

	config.RegisterFlags(cmd.PersistentFlags())
	cmd.AddCommand(newHistoryCmd())

	return cmd
}

func runSync(ctx context.Context, fs *pflag.FlagSet, args []string, info models.AppBuildInfo) error {
	cfg, err := config.GetStructuredConfig(fs)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.NewLogger("sync", cfg.Sync.Quiet)

	scope, err := models.NewSyncScope(cfg.Sync.Limit, args, cfg.Sync.Date, cfg.Sync.Recurse)
	if err != nil {
		return fmt.Errorf("invalid selection: %w", err)
	}

	tel, err := telemetry.Init(ctx, cfg.Telemetry, info.BuildVersion(), log)
	if err != nil {
		return fmt.Errorf("error initializing telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := tel.Shutdown(shutdownCtx); err != nil {
			log.Err(err).Msg("error flushing traces")
		}
	}()

	remote, err := adapter.NewRESTAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		return fmt.Errorf("error creating remote adapter: %w", err)
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, afero.NewOsFs(), log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer storages.Close()

	services := service.NewServices(remote, storages, cfg.Sync, log)

	return services.SyncService.Sync(ctx, scope)
}
