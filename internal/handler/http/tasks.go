package http

import (
	"net/http"

	"github.com/MKhiriev/summarium/internal/app"
	"github.com/MKhiriev/summarium/internal/logger"
	"github.com/MKhiriev/summarium/internal/utils"
	"github.com/MKhiriev/summarium/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listTasks(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromRequest(r)

	query := r.URL.Query()
	filter := models.TaskFilter{
		Status:   models.TaskStatus(query.Get("status")),
		Priority: models.TaskPriority(query.Get("priority")),
	}

	tasks, err := h.services.TaskService.List(r.Context(), userID, filter)
	if err != nil {
		writeError(w, r, "*Handler.listTasks", err)
		return
	}

	utils.WriteJSON(w, nonNil(tasks), http.StatusOK)
}

func (h *Handler) getTask(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromRequest(r)

	task, err := h.services.TaskService.Get(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "*Handler.getTask", err)
		return
	}

	utils.WriteJSON(w, task, http.StatusOK)
}

func (h *Handler) saveTask(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromRequest(r)

	var req models.SaveTaskRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.saveTask").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	task, err := h.services.TaskService.Save(r.Context(), userID, chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, r, "*Handler.saveTask", err)
		return
	}

	utils.WriteJSON(w, task, http.StatusOK)
}

func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromRequest(r)

	if err := h.services.TaskService.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, "*Handler.deleteTask", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ── activities ──

func (h *Handler) listActivities(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromRequest(r)

	activities, err := h.services.ActivityService.List(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "*Handler.listActivities", err)
		return
	}

	utils.WriteJSON(w, nonNil(activities), http.StatusOK)
}

func (h *Handler) createActivity(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromRequest(r)

	var req models.CreateActivityRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.createActivity").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	activity, err := h.services.ActivityService.Create(r.Context(), userID, chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, r, "*Handler.createActivity", err)
		return
	}

	utils.WriteJSON(w, activity, http.StatusCreated)
}

func (h *Handler) deleteActivity(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromRequest(r)

	if err := h.services.ActivityService.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, "*Handler.deleteActivity", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
