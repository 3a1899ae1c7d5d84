package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/summarium/internal/app"
	"github.com/MKhiriev/summarium/internal/logger"
	"github.com/MKhiriev/summarium/internal/utils"
)

// HashHeader carries the hex HMAC-SHA256 of the request body.
const HashHeader = "HashSHA256"

// withHashCheck verifies HashHeader against the body when the server has a
// hash key and the client sent the header. The body is restored for the
// next handler.
func (h *Handler) withHashCheck(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hashFromRequest := r.Header.Get(HashHeader)
		if h.hashKey == "" || hashFromRequest == "" || r.Body == nil {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Str("func", "*Handler.withHashCheck").Msg("failed to read request body")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		hashedBody := utils.HashHex(body)
		if !utils.EqualHex(hashedBody, hashFromRequest) {
			log.Err(ErrBodyHashMismatch).Str("func", "*Handler.withHashCheck").
				Str("hash from request", hashFromRequest).
				Str("hashed body", hashedBody).
				Msg("hashes are not equal")
			http.Error(w, app.MsgHashMismatch, http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
