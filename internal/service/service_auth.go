package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/summarium/internal/config"
	"github.com/MKhiriev/summarium/internal/logger"
	"github.com/MKhiriev/summarium/internal/store"
	"github.com/MKhiriev/summarium/internal/utils"
	"github.com/MKhiriev/summarium/models"
	"golang.org/x/crypto/bcrypt"
)

// authService handles registration, credential checks and the JWT
// lifecycle. Passwords are stored as bcrypt hashes.
type authService struct {
	userRepository store.UserRepository
	revocations    store.RevocationStore

	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration
	bcryptCost    int

	logger *logger.Logger
}

func NewAuthService(userRepository store.UserRepository, revocations store.RevocationStore, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		revocations:    revocations,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		bcryptCost:     bcrypt.DefaultCost,
		logger:         logger,
	}
}

// RegisterUser hashes the password and stores the user. A taken login
// surfaces as store.ErrLoginAlreadyExists.
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Login == "" || user.Password == "" {
		log.Error().Str("func", "authService.RegisterUser").Str("login", user.Login).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), a.bcryptCost)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	user.PasswordHash = string(hash)
	user.Password = ""

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "authService.RegisterUser").Str("login", user.Login).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login returns the stored user when the password matches. Unknown logins
// and wrong passwords both yield ErrWrongPassword.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Login == "" || user.Password == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByLogin(ctx, user.Login)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrWrongPassword
	}
	if err != nil {
		log.Err(err).Str("func", "authService.Login").Str("login", user.Login).Msg("user search by login failed")
		return models.User{}, fmt.Errorf("user search by login failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(user.Password)); err != nil {
		log.Info().Str("func", "authService.Login").Int64("user_id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	if token.ID != "" {
		revoked, err := a.revocations.IsRevoked(ctx, token.ID)
		if err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "authService.ParseToken").Msg("revocation check failed")
			return models.Token{}, fmt.Errorf("revocation check failed: %w", err)
		}
		if revoked {
			return models.Token{}, ErrTokenIsExpiredOrInvalid
		}
	}

	return token, nil
}

func (a *authService) Logout(ctx context.Context, token models.Token) error {
	if token.ID == "" {
		return ErrTokenIsExpiredOrInvalid
	}

	if err := a.revocations.Revoke(ctx, token.ID, token.ExpiresAtOrZero()); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "authService.Logout").Msg("token revocation failed")
		return fmt.Errorf("token revocation failed: %w", err)
	}
	return nil
}
