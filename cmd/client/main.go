package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/summarium/internal/adapter"
	"github.com/MKhiriev/summarium/internal/client"
	"github.com/MKhiriev/summarium/internal/config"
	"github.com/MKhiriev/summarium/internal/logger"
	"github.com/MKhiriev/summarium/internal/service"
	"github.com/MKhiriev/summarium/internal/store"
	"github.com/MKhiriev/summarium/internal/tui"
	"github.com/MKhiriev/summarium/models"
)

const clientRole = "summarium-client"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewClientLogger(clientRole, "").Err(err).Msg("error getting configs")
		os.Exit(2)
	}
	log := logger.NewClientLogger(clientRole, cfg.App.LogFile)

	if err = run(cfg, buildInfo, log); err != nil {
		log.Err(err).Msg("client stopped with an error")
		fmt.Fprintln(os.Stderr, "summarium:", err)
		os.Exit(1)
	}
}

// run builds the client from cfg and blocks until the user quits. Local
// storage is closed on every return path.
func run(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) error {
	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		return fmt.Errorf("create server adapter: %w", err)
	}

	localStorage, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("open local storage: %w", err)
	}
	defer localStorage.Close()

	retention := service.RetentionPolicy{KeepLast: cfg.Storage.KeepLast, MaxAge: cfg.Storage.MaxAge}
	services := service.NewClientServices(localStorage, serverAdapter, retention, log)

	app, err := client.NewApp(services, tui.New(services, cfg.Editor, buildInfo, log), cfg.Workers, log)
	if err != nil {
		return err
	}
	return app.Run()
}
