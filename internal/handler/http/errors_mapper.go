package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/summarium/internal/ai"
	"github.com/MKhiriev/summarium/internal/app"
	"github.com/MKhiriev/summarium/internal/logger"
	"github.com/MKhiriev/summarium/internal/service"
	"github.com/MKhiriev/summarium/internal/store"
	"github.com/MKhiriev/summarium/internal/validators"
)

type errorResponse struct {
	status  int
	message string
}

// errorStatusMap lists every sentinel a handler may see. Map order is
// random, so sentinels that can wrap each other must share a response.
var errorStatusMap = map[error]errorResponse{
	service.ErrInvalidDataProvided:     {http.StatusBadRequest, app.MsgInvalidDataProvided},
	service.ErrInvalidDueDate:          {http.StatusBadRequest, app.MsgInvalidDataProvided},
	service.ErrInvalidSpeechID:         {http.StatusBadRequest, app.MsgInvalidDataProvided},
	validators.ErrInvalidRequest:       {http.StatusBadRequest, app.MsgInvalidDataProvided},
	validators.ErrInvalidDay:           {http.StatusBadRequest, app.MsgInvalidDataProvided},
	service.ErrVersionIsNotSpecified:   {http.StatusBadRequest, app.MsgVersionIsNotSpecified},
	service.ErrWrongPassword:           {http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	service.ErrTokenIsExpiredOrInvalid: {http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},

	store.ErrLoginAlreadyExists: {http.StatusConflict, app.MsgLoginAlreadyExists},
	store.ErrNoUserWasFound:     {http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	store.ErrNotFound:           {http.StatusNotFound, app.MsgNotFound},

	ai.ErrProviderUnavailable: {http.StatusBadGateway, app.MsgProviderUnavailable},
	ai.ErrProviderRejected:    {http.StatusBadGateway, app.MsgProviderRejected},
	ai.ErrEmptyCompletion:     {http.StatusBadGateway, app.MsgProviderRejected},
}

func statusFromError(err error) int {
	return responseFromError(err, http.MethodGet).status
}

// responseFromError picks the status and body for err. Unknown errors on
// writes are reported with the message the client shows as a toast.
func responseFromError(err error, method string) errorResponse {
	for target, resp := range errorStatusMap {
		if errors.Is(err, target) {
			return resp
		}
	}

	switch method {
	case http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch:
		return errorResponse{http.StatusInternalServerError, app.MsgSaveFailed}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

// writeError logs err and answers with its mapped status and message.
func writeError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	resp := responseFromError(err, r.Method)

	event := logger.FromRequest(r).Warn()
	if resp.status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", fn).Int("status", resp.status).Send()

	http.Error(w, resp.message, resp.status)
}
