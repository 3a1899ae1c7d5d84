package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/summarium/internal/ai"
	"github.com/MKhiriev/summarium/internal/config"
	"github.com/MKhiriev/summarium/internal/handler"
	"github.com/MKhiriev/summarium/internal/logger"
	"github.com/MKhiriev/summarium/internal/search"
	"github.com/MKhiriev/summarium/internal/server"
	"github.com/MKhiriev/summarium/internal/service"
	"github.com/MKhiriev/summarium/internal/store"
	"github.com/MKhiriev/summarium/models"
)

const serverRole = "summarium-server"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger(serverRole, "").Err(err).Msg("error getting configs")
		os.Exit(2)
	}
	log := logger.NewLogger(serverRole, cfg.App.LogLevel)

	// a version set in the config wins over the linker flag
	if cfg.App.Version == "" && buildVersion != "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	if err = run(context.Background(), cfg, log); err != nil {
		log.Err(err).Msg("server stopped with an error")
		os.Exit(1)
	}
}

// run wires storage, search, the AI provider and the HTTP layer, then
// serves until a shutdown signal. Deferred closes run in reverse order.
func run(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) error {
	storages, err := store.NewStorages(ctx, *cfg, log)
	if err != nil {
		return fmt.Errorf("create storages: %w", err)
	}
	defer storages.Close()

	// nil engine means postgres-only search
	var engine search.Engine
	if cfg.Storage.Search.URL != "" {
		meili := search.NewMeili(cfg.Storage.Search.URL, cfg.Storage.Search.APIKey, 0, log)
		defer meili.Close()
		engine = meili
	}
	searchService := search.NewService(engine, storages.SearchRepository, log)
	defer searchService.Wait()

	services, err := service.NewServices(storages, searchService, ai.NewClient(cfg.AI, log), *cfg, log)
	if err != nil {
		return fmt.Errorf("create services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		return fmt.Errorf("create handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}
	return srv.RunServer()
}
