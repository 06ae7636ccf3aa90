package service

import (
	"github.com/MKhiriev/photo-backup/internal/adapter"
	"github.com/MKhiriev/photo-backup/internal/config"
	"github.com/MKhiriev/photo-backup/internal/logger"
	"github.com/MKhiriev/photo-backup/internal/store"
)

type Services struct {
	SyncService    SyncService
	HistoryService HistoryService
}

func NewServices(remote adapter.RemoteAdapter, storages *store.Storages, cfg config.Sync, logger *logger.Logger) *Services {
	return &Services{
		SyncService:    NewSyncService(remote, storages.Output, storages.Journal, cfg, logger),
		HistoryService: NewHistoryService(storages.Journal),
	}
}
