package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/photo-backup/internal/logger"
	"github.com/MKhiriev/photo-backup/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(info)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd(info).ExecuteContext(ctx)
	stop()

	if err != nil {
		log := logger.NewLogger("photobackup", false)
		log.Error().Err(err).Msg("photobackup failed")
		os.Exit(1)
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Fprint(os.Stderr, info.String())
}
