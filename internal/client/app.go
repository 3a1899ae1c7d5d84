package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/summarium/internal/config"
	"github.com/MKhiriev/summarium/internal/logger"
	"github.com/MKhiriev/summarium/internal/service"
	"github.com/MKhiriev/summarium/internal/tui"
	"github.com/MKhiriev/summarium/internal/workers"
)

var (
	_ Client  = (*App)(nil)
	_ Screens = (*tui.TUI)(nil)

	_ Background = (*workers.Workers)(nil)
)

var errMissingDependency = errors.New("client app needs services and ui")

type App struct {
	auth       Signer
	screens    Screens
	background Background
	logger     *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, workersCfg config.ClientWorkers, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errMissingDependency
	}
	return newApp(services.AuthService, ui, workers.NewClientWorkers(services, workersCfg, logger), logger), nil
}

func newApp(auth Signer, screens Screens, background Background, logger *logger.Logger) *App {
	return &App{
		auth:       auth,
		screens:    screens,
		background: background,
		logger:     logger,
	}
}

// Run signs the user in and runs the main screens. Logging out returns to
// the sign-in pages; quitting ends Run without an error.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	for {
		if _, err := a.screens.LoginFlow(ctx); err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return fmt.Errorf("login flow: %w", err)
		}
		a.logger.Info().Str("func", "App.run").Msg("signed in")

		logout, err := a.session(ctx)
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}

		if err = a.auth.Logout(ctx); err != nil {
			a.logger.Err(err).Str("func", "App.run").Msg("server logout failed, token dropped locally")
		}
	}
}

// session runs the main screens with the background workers alive.
func (a *App) session(ctx context.Context) (bool, error) {
	a.background.Run(ctx)
	defer a.background.Stop()

	return a.screens.MainLoop(ctx)
}
