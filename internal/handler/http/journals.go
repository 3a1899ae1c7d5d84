package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/MKhiriev/summarium/internal/app"
	"github.com/MKhiriev/summarium/internal/logger"
	"github.com/MKhiriev/summarium/internal/utils"
	"github.com/MKhiriev/summarium/internal/validators"
	"github.com/MKhiriev/summarium/models"
	"github.com/go-chi/chi/v5"
)

const journalRoute = "/api/journal/"

func (h *Handler) listJournals(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromRequest(r)

	journals, err := h.services.JournalService.List(r.Context(), userID)
	if err != nil {
		writeError(w, r, "*Handler.listJournals", err)
		return
	}

	utils.WriteJSON(w, nonNil(journals), http.StatusOK)
}

// getJournal redirects a malformed day to today's entry instead of failing.
func (h *Handler) getJournal(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromRequest(r)

	journal, err := h.services.JournalService.Get(r.Context(), userID, chi.URLParam(r, "day"))
	if errors.Is(err, validators.ErrInvalidDay) {
		today := models.Today(time.Now(), time.UTC)
		logger.FromRequest(r).Debug().Str("func", "*Handler.getJournal").Str("today", today).Msg("redirecting malformed day")
		http.Redirect(w, r, journalRoute+today, http.StatusFound)
		return
	}
	if err != nil {
		writeError(w, r, "*Handler.getJournal", err)
		return
	}

	utils.WriteJSON(w, journal, http.StatusOK)
}

func (h *Handler) saveJournal(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromRequest(r)

	var req models.SaveJournalRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.saveJournal").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	journal, err := h.services.JournalService.Save(r.Context(), userID, chi.URLParam(r, "day"), req)
	if err != nil {
		writeError(w, r, "*Handler.saveJournal", err)
		return
	}

	utils.WriteJSON(w, journal, http.StatusOK)
}

func (h *Handler) deleteJournal(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromRequest(r)

	if err := h.services.JournalService.Delete(r.Context(), userID, chi.URLParam(r, "day")); err != nil {
		writeError(w, r, "*Handler.deleteJournal", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
