package http

import (
	"net/http"

	"github.com/MKhiriev/summarium/internal/app"
	"github.com/MKhiriev/summarium/internal/logger"
	"github.com/MKhiriev/summarium/internal/utils"
	"github.com/MKhiriev/summarium/models"
)

// register creates the account and signs it in: the answer carries the
// bearer token just like a login does.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if !h.decodeValid(w, r, "*Handler.register", &user) {
		return
	}

	registered, err := h.services.AuthService.RegisterUser(r.Context(), user)
	if err != nil {
		writeError(w, r, "*Handler.register", err)
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", registered.UserID).Msg("user registered")
	h.writeToken(w, r, registered)
}

// login checks the credentials only against the stored hash. Length rules
// are not applied, so old accounts keep working if the rules change.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var credentials models.User
	if err := utils.DecodeJSON(r, &credentials); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.login").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Login(r.Context(), credentials)
	if err != nil {
		writeError(w, r, "*Handler.login", err)
		return
	}

	logger.FromRequest(r).Debug().Int64("user_id", user.UserID).Msg("user logged in")
	h.writeToken(w, r, user)
}

// writeToken answers with the new bearer token in the Authorization header.
func (h *Handler) writeToken(w http.ResponseWriter, r *http.Request, user models.User) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.writeToken").Msg("creation of token failed")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	w.WriteHeader(http.StatusOK)
}

// logout revokes the token the request was authenticated with.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
		return
	}

	if err := h.services.AuthService.Logout(r.Context(), token); err != nil {
		writeError(w, r, "*Handler.logout", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
