package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/summarium/internal/app"
	"github.com/MKhiriev/summarium/internal/logger"
	"github.com/MKhiriev/summarium/internal/utils"
	"github.com/MKhiriev/summarium/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromRequest(r)

	archived, _ := strconv.ParseBool(r.URL.Query().Get("archived"))
	notes, err := h.services.NoteService.List(r.Context(), userID, archived)
	if err != nil {
		writeError(w, r, "*Handler.listNotes", err)
		return
	}

	utils.WriteJSON(w, nonNil(notes), http.StatusOK)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromRequest(r)

	note, err := h.services.NoteService.Get(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "*Handler.getNote", err)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) saveNote(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromRequest(r)

	var req models.SaveNoteRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.saveNote").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	note, err := h.services.NoteService.Save(r.Context(), userID, chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, r, "*Handler.saveNote", err)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) archiveNote(w http.ResponseWriter, r *http.Request) {
	h.setArchived(w, r, true)
}

func (h *Handler) unarchiveNote(w http.ResponseWriter, r *http.Request) {
	h.setArchived(w, r, false)
}

func (h *Handler) setArchived(w http.ResponseWriter, r *http.Request, archived bool) {
	userID, _ := userIDFromRequest(r)

	note, err := h.services.NoteService.Archive(r.Context(), userID, chi.URLParam(r, "id"), archived)
	if err != nil {
		writeError(w, r, "*Handler.setArchived", err)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromRequest(r)

	if err := h.services.NoteService.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, "*Handler.deleteNote", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// nonNil makes empty lists encode as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
