package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/summarium/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidTokenParams = errors.New("issuer, duration and sign key are required")
	ErrNoTokenSubject     = errors.New("token has no user id in its subject")

	// ErrNotBearer is returned for any Authorization value but "Bearer <token>".
	ErrNotBearer        = errors.New("authorization value is not a bearer token")
	ErrEmptyBearerToken = errors.New("empty bearer token")
)

// GenerateJWTToken signs an HS256 token for userID. The jti claim is a
// fresh uuid so a single token can be revoked on logout.
func GenerateJWTToken(issuer string, userID int64, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	issuedAt := time.Now()
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    issuer,
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(tokenDuration)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("sign token: %w", err)
	}

	return models.Token{Token: token, RegisteredClaims: claims, SignedString: signed, UserID: userID}, nil
}

// ValidateAndParseJWTToken checks the signature, issuer and expiry of
// tokenString and reads the user id from its subject.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	)

	var claims jwt.RegisteredClaims
	token, err := parser.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	})
	if err != nil {
		return models.Token{}, fmt.Errorf("parse token: %w", err)
	}

	if claims.Subject == "" {
		return models.Token{}, ErrNoTokenSubject
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrNoTokenSubject, err)
	}

	return models.Token{Token: token, RegisteredClaims: claims, SignedString: tokenString, UserID: userID}, nil
}

// ParseBearerToken extracts the token from an Authorization value. The
// scheme is matched case-insensitively.
func ParseBearerToken(authorization string) (string, error) {
	scheme, token, found := strings.Cut(strings.TrimSpace(authorization), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrNotBearer
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrEmptyBearerToken
	}
	return token, nil
}
