package service

import (
	"github.com/MKhiriev/summarium/internal/adapter"
	"github.com/MKhiriev/summarium/internal/logger"
	"github.com/MKhiriev/summarium/internal/store"
	"github.com/MKhiriev/summarium/internal/utils"
)

type ClientServices struct {
	AuthService      ClientAuthService
	Gateway          PersistenceGateway
	NoteService      ClientNoteService
	JournalService   ClientJournalService
	TaskService      ClientTaskService
	SearchService    ClientSearchService
	AIService        ClientAIService
	RetentionService ClientRetentionService
	// Snapshots is the local version history written by editor sessions.
	Snapshots store.SnapshotRepository
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, retention RetentionPolicy, logger *logger.Logger) *ClientServices {
	gateway := NewPersistenceGateway(serverAdapter, logger)
	ids := utils.NewUUIDGenerator()

	return &ClientServices{
		AuthService:      NewClientAuthService(serverAdapter, logger),
		Gateway:          gateway,
		NoteService:      NewClientNoteService(serverAdapter, gateway, ids, logger),
		JournalService:   NewClientJournalService(serverAdapter, gateway, utils.RealClock{}, logger),
		TaskService:      NewClientTaskService(serverAdapter, gateway, ids, logger),
		SearchService:    NewClientSearchService(serverAdapter, logger),
		AIService:        NewClientAIService(serverAdapter, logger),
		RetentionService: NewClientRetentionService(localStore.SnapshotRepository, retention, utils.RealClock{}, logger),
		Snapshots:        localStore.SnapshotRepository,
	}
}
