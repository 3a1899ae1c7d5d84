package service

import (
	"context"
	"io"

	"github.com/MKhiriev/summarium/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	// ParseToken rejects expired, badly signed and revoked tokens alike.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	// Logout revokes the token until it would have expired anyway.
	Logout(ctx context.Context, token models.Token) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// NoteService is owner-scoped: every call names the user and never sees
// another user's notes.
type NoteService interface {
	List(ctx context.Context, userID int64, archived bool) ([]models.Note, error)
	Get(ctx context.Context, userID int64, id string) (models.Note, error)
	// Save creates or overwrites the note. The plain-text projection is
	// always derived from req.Content.
	Save(ctx context.Context, userID int64, id string, req models.SaveNoteRequest) (models.Note, error)
	Archive(ctx context.Context, userID int64, id string, archived bool) (models.Note, error)
	Delete(ctx context.Context, userID int64, id string) error
}

type JournalService interface {
	List(ctx context.Context, userID int64) ([]models.Journal, error)
	Get(ctx context.Context, userID int64, day string) (models.Journal, error)
	Save(ctx context.Context, userID int64, day string, req models.SaveJournalRequest) (models.Journal, error)
	Delete(ctx context.Context, userID int64, day string) error
}

type TaskService interface {
	List(ctx context.Context, userID int64, filter models.TaskFilter) ([]models.Task, error)
	Get(ctx context.Context, userID int64, id string) (models.Task, error)
	Save(ctx context.Context, userID int64, id string, req models.SaveTaskRequest) (models.Task, error)
	Delete(ctx context.Context, userID int64, id string) error
}

type ActivityService interface {
	List(ctx context.Context, userID int64, taskID string) ([]models.Activity, error)
	Create(ctx context.Context, userID int64, taskID string, req models.CreateActivityRequest) (models.Activity, error)
	Delete(ctx context.Context, userID int64, id string) error
}

type SearchService interface {
	Search(ctx context.Context, userID int64, query string, limit int) (models.SearchResponse, error)
}

// AIService proxies the assistant features. Streaming methods call the
// callback for every fragment; an error from the callback stops the
// stream.
type AIService interface {
	Completion(ctx context.Context, prompt string, onDelta func(string) error) error
	// Tools runs a chat in which the model may create and list the user's
	// tasks before answering.
	Tools(ctx context.Context, userID int64, messages []models.ChatMessage, onDelta func(string) error) error
	Suggestion(ctx context.Context, query string) (string, error)
	// Transcribe emits the transcript word by word with a fixed pause.
	// Cancelling ctx stops it.
	Transcribe(ctx context.Context, filename string, audio io.Reader, onWord func(string) error) error
	Speech(ctx context.Context, req models.SpeechRequest) (models.SpeechResponse, error)
}
