package service

import (
	"github.com/MKhiriev/summarium/internal/ai"
	"github.com/MKhiriev/summarium/internal/config"
	"github.com/MKhiriev/summarium/internal/logger"
	"github.com/MKhiriev/summarium/internal/search"
	"github.com/MKhiriev/summarium/internal/store"
	"github.com/MKhiriev/summarium/internal/utils"
	"github.com/MKhiriev/summarium/internal/validators"
)

type Services struct {
	AuthService     AuthService
	AppInfoService  AppInfoService
	NoteService     NoteService
	JournalService  JournalService
	TaskService     TaskService
	ActivityService ActivityService
	SearchService   SearchService
	AIService       AIService
}

func NewServices(storages *store.Storages, searchService *search.Service, provider ai.Provider, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewRequestValidator()
	taskService := NewTaskService(storages.TaskRepository, searchService, validator, NewDueDateParser(utils.RealClock{}), logger)

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, storages.RevocationStore, cfg.App, logger),
		AppInfoService:  appInfoService,
		NoteService:     NewNoteService(storages.NoteRepository, searchService, validator, logger),
		JournalService:  NewJournalService(storages.JournalRepository, searchService, validator, logger),
		TaskService:     taskService,
		ActivityService: NewActivityService(storages.ActivityRepository, validator, logger),
		SearchService:   searchService,
		AIService:       NewAIService(provider, taskService, storages.AudioStore, cfg.AI, logger),
	}, nil
}
