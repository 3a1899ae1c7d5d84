package http

import (
	"io"
	"net/http"

	"github.com/MKhiriev/summarium/internal/logger"
)

// getServerVersion answers GET /api/version with the build version as plain
// text. The terminal client shows it on its about page.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, version); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getServerVersion").Msg("failed to write version")
	}
}
