package service

import (
	"context"
	"io"

	"github.com/MKhiriev/summarium/internal/editor"
	"github.com/MKhiriev/summarium/models"
)

// ClientAuthService signs the terminal client in and out. The issued
// token is kept by the server adapter for every later call.
type ClientAuthService interface {
	Register(ctx context.Context, user models.User) (models.Token, error)
	Login(ctx context.Context, user models.User) (models.Token, error)
	Logout(ctx context.Context) error
	ServerVersion(ctx context.Context) (string, error)
}

// PersistenceGateway is the only way the client writes to the server.
//
// Every call is a single round trip. A failure is reported to the user
// through the notifier and is not retried: the next edit saves again.
// Concurrent saves of one entity are not ordered, the response that
// arrives last wins.
type PersistenceGateway interface {
	SaveNote(ctx context.Context, note models.Note) (models.Note, error)
	SaveJournal(ctx context.Context, journal models.Journal) (models.Journal, error)
	SaveTask(ctx context.Context, task models.Task) (models.Task, error)
	DeleteNote(ctx context.Context, id string) error
	DeleteJournal(ctx context.Context, day string) error
	DeleteTask(ctx context.Context, id string) error
	CreateActivity(ctx context.Context, taskID, comment string) (models.Activity, error)
	DeleteActivity(ctx context.Context, id string) error
	// SetNotifier replaces the function that shows failures to the user.
	SetNotifier(notify func(message string))
}

type ClientNoteService interface {
	List(ctx context.Context, archived bool) ([]models.Note, error)
	// Create stores an empty note under a fresh id.
	Create(ctx context.Context) (models.Note, error)
	Archive(ctx context.Context, id string, archived bool) (models.Note, error)
	Delete(ctx context.Context, id string) error
	Capability() editor.Capability[models.Note]
}

type ClientJournalService interface {
	List(ctx context.Context) ([]models.Journal, error)
	// Today returns today's entry, or an unsaved empty one.
	Today(ctx context.Context) (models.Journal, error)
	Delete(ctx context.Context, day string) error
	Capability() editor.Capability[models.Journal]
}

type ClientTaskService interface {
	List(ctx context.Context, filter models.TaskFilter) ([]models.Task, error)
	Create(ctx context.Context, title string) (models.Task, error)
	// Update saves the task's fields as they are. A non-empty due phrase
	// replaces the due date.
	Update(ctx context.Context, task models.Task, due string) (models.Task, error)
	Delete(ctx context.Context, id string) error
	Activities(ctx context.Context, taskID string) ([]models.Activity, error)
	AddActivity(ctx context.Context, taskID, comment string) (models.Activity, error)
	DeleteActivity(ctx context.Context, id string) error
	Capability() editor.Capability[models.Task]
}

type ClientSearchService interface {
	Search(ctx context.Context, query string, limit int) (models.SearchResponse, error)
}

// ClientAIService backs the assistant surfaces of the editor. Errors leave
// the editor untouched and are only reported.
type ClientAIService interface {
	// OnTabRequested returns the text to insert at the cursor for the
	// paragraph currently being edited. Blank text asks nothing.
	OnTabRequested(ctx context.Context, currentNodeText string) (string, error)
	Complete(ctx context.Context, prompt string, onDelta func(string)) error
	Chat(ctx context.Context, messages []models.ChatMessage, onDelta func(string)) error
	// Transcribe is cancelled through ctx.
	Transcribe(ctx context.Context, filename string, audio io.Reader, onWord func(string)) error
	Speech(ctx context.Context, id, text string) ([]string, error)
}
