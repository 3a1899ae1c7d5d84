package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/summarium/internal/utils"
)

const maxSearchLimit = 100

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromRequest(r)

	query := r.URL.Query()
	limit, _ := strconv.Atoi(query.Get("limit"))
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	resp, err := h.services.SearchService.Search(r.Context(), userID, query.Get("q"), limit)
	if err != nil {
		writeError(w, r, "*Handler.search", err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}
