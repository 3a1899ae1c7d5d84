package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/summarium/internal/app"
	"github.com/MKhiriev/summarium/internal/logger"
	"github.com/MKhiriev/summarium/internal/utils"
)

// auth enforces bearer-token authentication.
//
// On success the user id and the parsed token are stored in the request
// context under [utils.UserIDCtxKey] and [utils.TokenCtxKey]. Missing,
// malformed, expired and revoked tokens are all answered with 401 and
// [app.MsgTokenIsExpiredOrInvalid].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			if statusFromError(err) == http.StatusUnauthorized {
				log.Err(err).Msg("token rejected")
				http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
				return
			}
			log.Err(err).Msg("error occurred during parsing token")
			http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}

		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)
		ctx = context.WithValue(ctx, utils.TokenCtxKey, token)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// userIDFromRequest returns the id stored by auth. Handlers behind auth can
// rely on it being present.
func userIDFromRequest(r *http.Request) (int64, bool) {
	return utils.GetUserIDFromContext(r.Context())
}
