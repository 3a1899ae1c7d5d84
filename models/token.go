package models

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrTokenWithoutUser = errors.New("token subject is not a user id")

// Token is a signed JWT together with its registered claims. The jti
// claim names the token in the revocation list; sub carries the user id.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	SignedString string `json:"-"`
	UserID       int64  `json:"-"`
}

// ReadToken decodes signed without checking its signature. The client uses
// it to learn its own user id and expiry; only the server verifies tokens.
func ReadToken(signed string) (Token, error) {
	var claims jwt.RegisteredClaims
	token, _, err := jwt.NewParser().ParseUnverified(signed, &claims)
	if err != nil {
		return Token{}, fmt.Errorf("decode token: %w", err)
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return Token{}, fmt.Errorf("%w: %q", ErrTokenWithoutUser, claims.Subject)
	}

	return Token{Token: token, RegisteredClaims: claims, SignedString: signed, UserID: userID}, nil
}

// ExpiresAtOrZero returns the expiry time or the zero time when the token
// carries no "exp" claim.
func (t *Token) ExpiresAtOrZero() time.Time {
	if t.ExpiresAt == nil {
		return time.Time{}
	}
	return t.ExpiresAt.Time
}

// Expired reports whether the token has an expiry that is not after now.
func (t *Token) Expired(now time.Time) bool {
	exp := t.ExpiresAtOrZero()
	return !exp.IsZero() && !exp.After(now)
}

func (t *Token) String() string {
	return t.SignedString
}
