package models

import (
	"strings"
	"time"
)

// Note is a free-form rich-text document.
//
// SanitizedContent is the plain-text projection of Content. It is derived
// on every save and is never edited on its own.
type Note struct {
	ID               string     `json:"id"`
	UserID           int64      `json:"-"`
	Title            string     `json:"title"`
	Content          string     `json:"content"`
	SanitizedContent string     `json:"sanitized_content"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	ArchivedAt       *time.Time `json:"archived_at,omitempty"`
	DeletedAt        *time.Time `json:"deleted_at,omitempty"`
}

// DisplayTitle returns the title shown in list views.
func (n Note) DisplayTitle() string {
	if strings.TrimSpace(n.Title) == "" {
		return UntitledTitle
	}
	return n.Title
}

// Archived reports whether the note was moved to the archive.
func (n Note) Archived() bool {
	return n.ArchivedAt != nil
}

// SaveNoteRequest is the body of PUT /api/notes/{id}.
//
// SanitizedContent is what the client computed for its own preview. The
// server ignores it and derives the projection from Content.
type SaveNoteRequest struct {
	Title            string `json:"title" validate:"max=512"`
	Content          string `json:"content" validate:"max=1048576"`
	SanitizedContent string `json:"sanitized_content,omitempty"`
}
