package store

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/summarium/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// NoteRepository stores notes. Every method is scoped to userID.
type NoteRepository interface {
	// Upsert inserts the note or overwrites the caller's existing note with
	// the same id. Writing over another user's note returns ErrNotFound.
	Upsert(ctx context.Context, note models.Note) (models.Note, error)
	Get(ctx context.Context, userID int64, id string) (models.Note, error)
	// List returns live notes, newest first; archived selects the archive.
	List(ctx context.Context, userID int64, archived bool) ([]models.Note, error)
	SetArchived(ctx context.Context, userID int64, id string, archived bool) (models.Note, error)
	// Delete marks the note deleted. It disappears from Get and List.
	Delete(ctx context.Context, userID int64, id string) error
}

// JournalRepository stores one entry per user and day.
type JournalRepository interface {
	Upsert(ctx context.Context, journal models.Journal) (models.Journal, error)
	Get(ctx context.Context, userID int64, day string) (models.Journal, error)
	List(ctx context.Context, userID int64) ([]models.Journal, error)
	Delete(ctx context.Context, userID int64, day string) error
}

type TaskRepository interface {
	Upsert(ctx context.Context, task models.Task) (models.Task, error)
	Get(ctx context.Context, userID int64, id string) (models.Task, error)
	List(ctx context.Context, userID int64, filter models.TaskFilter) ([]models.Task, error)
	Delete(ctx context.Context, userID int64, id string) error
}

// ActivityRepository stores task comments. Create fails with ErrNotFound
// when the task does not belong to the user.
type ActivityRepository interface {
	Create(ctx context.Context, activity models.Activity) (models.Activity, error)
	List(ctx context.Context, userID int64, taskID string) ([]models.Activity, error)
	Delete(ctx context.Context, userID int64, id string) error
}

// SearchRepository is the SQL fallback for full-text search.
type SearchRepository interface {
	Search(ctx context.Context, userID int64, query string, limit int) ([]models.SearchResult, error)
}

// RevocationStore remembers logged-out tokens until they expire.
type RevocationStore interface {
	Revoke(ctx context.Context, jti string, until time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// AudioStore keeps synthesized speech and returns a URL the client can
// fetch it from.
type AudioStore interface {
	Put(ctx context.Context, name string, body io.Reader, size int64, contentType string) (string, error)
}
