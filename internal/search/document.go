// Package search indexes notes, journal entries and tasks in Meilisearch
// and answers queries from it, falling back to PostgreSQL when the engine
// is not configured or unhealthy.
package search

import (
	"fmt"

	"github.com/MKhiriev/summarium/models"
)

// Document is the indexed projection of an entity. Body is the sanitized
// plain text, never the stored HTML.
type Document struct {
	ID        string            `json:"id"`
	Kind      models.EntityKind `json:"kind"`
	EntityID  string            `json:"entityId"`
	UserID    int64             `json:"userId"`
	Title     string            `json:"title"`
	Body      string            `json:"body"`
	UpdatedAt int64             `json:"updatedAt"`
}

// DocumentID is unique across kinds and users; journal entries are keyed by
// day, which alone is not.
func DocumentID(kind models.EntityKind, userID int64, entityID string) string {
	return fmt.Sprintf("%s-%d-%s", kind, userID, entityID)
}

func NoteDocument(n models.Note) Document {
	return Document{
		ID:        DocumentID(models.KindNote, n.UserID, n.ID),
		Kind:      models.KindNote,
		EntityID:  n.ID,
		UserID:    n.UserID,
		Title:     n.DisplayTitle(),
		Body:      n.SanitizedContent,
		UpdatedAt: n.UpdatedAt.UnixMilli(),
	}
}

func JournalDocument(j models.Journal) Document {
	return Document{
		ID:        DocumentID(models.KindJournal, j.UserID, j.Day),
		Kind:      models.KindJournal,
		EntityID:  j.Day,
		UserID:    j.UserID,
		Title:     j.Day,
		Body:      j.SanitizedContent,
		UpdatedAt: j.UpdatedAt.UnixMilli(),
	}
}

func TaskDocument(t models.Task) Document {
	return Document{
		ID:        DocumentID(models.KindTask, t.UserID, t.ID),
		Kind:      models.KindTask,
		EntityID:  t.ID,
		UserID:    t.UserID,
		Title:     t.DisplayTitle(),
		Body:      t.SanitizedDescription,
		UpdatedAt: t.UpdatedAt.UnixMilli(),
	}
}
