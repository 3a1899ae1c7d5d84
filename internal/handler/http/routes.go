package http

import (
	"net/http"

	"github.com/MKhiriev/summarium/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip, withMemo)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Use(h.withHashCheck)

		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Get("/api/version", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth, h.withHashCheck)

		r.Post("/api/user/logout", h.logout)

		r.Get("/api/notes", h.listNotes)
		r.Put("/api/notes/{id}", h.saveNote)
		r.Delete("/api/notes/{id}", h.deleteNote)
		r.Post("/api/notes/{id}/archive", h.archiveNote)
		r.Delete("/api/notes/{id}/archive", h.unarchiveNote)
		r.Get("/api/note/{id}", h.getNote)

		r.Get("/api/journals", h.listJournals)
		r.Put("/api/journals/{day}", h.saveJournal)
		r.Delete("/api/journals/{day}", h.deleteJournal)
		r.Get("/api/journal/{day}", h.getJournal)

		r.Get("/api/tasks", h.listTasks)
		r.Get("/api/tasks/{id}", h.getTask)
		r.Put("/api/tasks/{id}", h.saveTask)
		r.Delete("/api/tasks/{id}", h.deleteTask)
		r.Get("/api/tasks/{id}/activities", h.listActivities)
		r.Post("/api/tasks/{id}/activities", h.createActivity)
		r.Delete("/api/activities/{id}", h.deleteActivity)

		r.Get("/api/search", h.search)

		r.Post("/api/completion", h.completion)
		r.Post("/api/tools", h.tools)
		r.Get("/api/suggestion", h.suggestion)
		r.Post("/api/transcribe", h.transcribe)
		r.Post("/api/speech", h.speech)
	})

	if h.speechDir != "" {
		router.Handle(store.SpeechRoute+"*", http.StripPrefix(store.SpeechRoute, http.FileServer(http.Dir(h.speechDir))))
	}

	router.MethodNotAllowed(CheckHTTPMethod)

	return router
}
