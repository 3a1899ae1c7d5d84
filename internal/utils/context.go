// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, hashing,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, debouncing, clocks and request-scoped memoization.
package utils

import (
	"context"

	"github.com/MKhiriev/summarium/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

var (
	// UserIDCtxKey stores the authenticated user's int64 identifier.
	UserIDCtxKey = contextKey("userID")

	// TokenCtxKey stores the parsed [models.Token] of the current request.
	// The logout handler needs its "jti" and expiry to revoke it.
	TokenCtxKey = contextKey("token")

	memoCtxKey = contextKey("memo")
)

// GetUserIDFromContext retrieves the user identifier from the context.
//
// Returns the user ID and ok == false when the value is missing or has an
// unexpected type.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// GetTokenFromContext retrieves the token stored by the auth middleware.
func GetTokenFromContext(ctx context.Context) (models.Token, bool) {
	token, ok := ctx.Value(TokenCtxKey).(models.Token)
	return token, ok
}
