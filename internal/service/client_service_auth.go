package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/summarium/internal/adapter"
	"github.com/MKhiriev/summarium/internal/logger"
	"github.com/MKhiriev/summarium/models"
)

type clientAuthService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter, logger: logger}
}

func (a *clientAuthService) Register(ctx context.Context, user models.User) (models.Token, error) {
	token, err := a.adapter.Register(ctx, user)
	if err != nil {
		a.logger.Err(err).Str("func", "clientAuthService.Register").Str("login", user.Login).Msg("registration failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrRegisterOnServer, mapAdapterError(err))
	}

	a.logger.Info().Int64("user_id", token.UserID).Msg("registered")
	return token, nil
}

func (a *clientAuthService) Login(ctx context.Context, user models.User) (models.Token, error) {
	token, err := a.adapter.Login(ctx, user)
	if err != nil {
		a.logger.Err(err).Str("func", "clientAuthService.Login").Str("login", user.Login).Msg("login failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrLoginOnServer, mapAdapterError(err))
	}

	a.logger.Info().Int64("user_id", token.UserID).Msg("logged in")
	return token, nil
}

// Logout forgets the token even when the server could not be reached.
func (a *clientAuthService) Logout(ctx context.Context) error {
	if a.adapter.Token() == "" {
		return nil
	}
	if err := a.adapter.Logout(ctx); err != nil {
		a.adapter.SetToken("")
		a.logger.Err(err).Str("func", "clientAuthService.Logout").Msg("server logout failed")
		return mapAdapterError(err)
	}
	return nil
}

func (a *clientAuthService) ServerVersion(ctx context.Context) (string, error) {
	version, err := a.adapter.ServerVersion(ctx)
	if err != nil {
		return "", mapAdapterError(err)
	}
	return version, nil
}
