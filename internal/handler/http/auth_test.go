package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/summarium/internal/app"
	"github.com/MKhiriev/summarium/internal/config"
	"github.com/MKhiriev/summarium/internal/service"
	"github.com/MKhiriev/summarium/internal/store"
	"github.com/MKhiriev/summarium/models"
	"github.com/stretchr/testify/assert"
)

func postJSON(router http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		registerFn func(ctx context.Context, user models.User) (models.User, error)
		wantStatus int
		wantBody   string
		wantToken  string
	}{
		{
			name: "registered",
			body: `{"login":"alice","password":"secret-pass"}`,
			registerFn: func(_ context.Context, user models.User) (models.User, error) {
				user.UserID = testUserID
				return user, nil
			},
			wantStatus: http.StatusOK,
			wantToken:  "Bearer signed-for-alice",
		},
		{
			name:       "invalid json",
			body:       `{"login":`,
			wantStatus: http.StatusBadRequest,
			wantBody:   app.MsgInvalidDataProvided,
		},
		{
			name:       "unknown field",
			body:       `{"login":"alice","password":"secret-pass","admin":true}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   app.MsgInvalidDataProvided,
		},
		{
			name:       "password too short",
			body:       `{"login":"alice","password":"123"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   app.MsgInvalidDataProvided,
		},
		{
			name: "login taken",
			body: `{"login":"alice","password":"secret-pass"}`,
			registerFn: func(context.Context, models.User) (models.User, error) {
				return models.User{}, fmt.Errorf("%w: duplicate key", store.ErrLoginAlreadyExists)
			},
			wantStatus: http.StatusConflict,
			wantBody:   app.MsgLoginAlreadyExists,
		},
		{
			name: "storage failure",
			body: `{"login":"alice","password":"secret-pass"}`,
			registerFn: func(context.Context, models.User) (models.User, error) {
				return models.User{}, fmt.Errorf("connection reset")
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   app.MsgSaveFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := newTestServices()
			services.AuthService = &fakeAuth{registerFn: tt.registerFn}
			router := newTestRouter(t, services, config.StructuredConfig{})

			rr := postJSON(router, "/api/user/register", tt.body)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantToken, rr.Header().Get("Authorization"))
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, responseBody(rr))
			}
		})
	}
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		loginErr   error
		wantStatus int
		wantToken  string
	}{
		{name: "logged in", wantStatus: http.StatusOK, wantToken: "Bearer signed-for-bob"},
		{name: "wrong password", loginErr: service.ErrWrongPassword, wantStatus: http.StatusUnauthorized},
		{name: "unknown login", loginErr: store.ErrNoUserWasFound, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := newTestServices()
			services.AuthService = &fakeAuth{
				loginFn: func(_ context.Context, user models.User) (models.User, error) {
					if tt.loginErr != nil {
						return models.User{}, tt.loginErr
					}
					user.UserID = testUserID
					return user, nil
				},
			}
			router := newTestRouter(t, services, config.StructuredConfig{})

			rr := postJSON(router, "/api/user/login", `{"login":"bob","password":"secret-pass"}`)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantToken, rr.Header().Get("Authorization"))
			if tt.loginErr != nil {
				assert.Equal(t, app.MsgInvalidLoginPassword, responseBody(rr))
			}
		})
	}
}

func TestLogout(t *testing.T) {
	var revoked models.Token
	services := newTestServices()
	services.AuthService = &fakeAuth{
		logoutFn: func(_ context.Context, token models.Token) error {
			revoked = token
			return nil
		},
	}
	router := newTestRouter(t, services, config.StructuredConfig{})

	rr := serve(router, http.MethodPost, "/api/user/logout", "")

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, testToken, revoked.SignedString)
	assert.Equal(t, "jti-1", revoked.ID)
}

func TestLogout_NoTokenInContext(t *testing.T) {
	h := &Handler{services: newTestServices()}

	req := httptest.NewRequest(http.MethodPost, "/api/user/logout", nil)
	rr := httptest.NewRecorder()
	h.logout(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
