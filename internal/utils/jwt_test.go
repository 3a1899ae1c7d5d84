package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("summarium", 123, time.Hour, "secret-key")
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	assert.NotEmpty(t, token.ID, "jti must be set for revocation")
	assert.Equal(t, "123", token.Subject)
	assert.Equal(t, int64(123), token.UserID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAtOrZero(), 5*time.Second)
}

func TestGenerateJWTToken_UniqueIDs(t *testing.T) {
	a, err := GenerateJWTToken("iss", 1, time.Hour, "k")
	require.NoError(t, err)
	b, err := GenerateJWTToken("iss", 1, time.Hour, "k")
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "iss", 0, "key"},
		{"empty key", "iss", time.Hour, ""},
		{"negative duration", "iss", -time.Hour, "key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, tt.duration, tt.key)
			assert.ErrorIs(t, err, ErrInvalidTokenParams)
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	generated, err := GenerateJWTToken("summarium", 77, time.Hour, "secret")
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(generated.SignedString, "secret", "summarium")
	require.NoError(t, err)

	assert.Equal(t, int64(77), parsed.UserID)
	assert.Equal(t, generated.ID, parsed.ID)
	assert.Equal(t, generated.SignedString, parsed.SignedString)
}

func TestValidateAndParseJWTToken_Failures(t *testing.T) {
	valid, err := GenerateJWTToken("summarium", 1, time.Hour, "secret")
	require.NoError(t, err)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "summarium",
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	})
	expiredString, err := expired.SignedString([]byte("secret"))
	require.NoError(t, err)

	noSubject := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Issuer: "summarium"})
	noSubjectString, err := noSubject.SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
	}{
		{"wrong key", valid.SignedString, "other", "summarium"},
		{"wrong issuer", valid.SignedString, "secret", "someone-else"},
		{"expired", expiredString, "secret", "summarium"},
		{"no subject", noSubjectString, "secret", "summarium"},
		{"garbage", "not.a.token", "secret", "summarium"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer)
			assert.Error(t, err)
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "bearer", header: "Bearer abc", want: "abc"},
		{name: "lower case scheme", header: "bearer abc", want: "abc"},
		{name: "padded", header: "  Bearer   abc  ", want: "abc"},
		{name: "no token", header: "Bearer", wantErr: ErrNotBearer},
		{name: "blank token", header: "Bearer    ", wantErr: ErrNotBearer},
		{name: "basic auth", header: "Basic dXNlcjpwYXNz", wantErr: ErrNotBearer},
		{name: "empty", header: "", wantErr: ErrNotBearer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
