package models

import (
	"strings"
	"time"
)

// SnapshotKeySeparator joins the entity id and the timestamp of a
// snapshot key.
const SnapshotKeySeparator = "+"

// Snapshot is an immutable local copy of an entity written after every
// successful autosave.
type Snapshot struct {
	ID               string     `json:"id"`
	Kind             EntityKind `json:"kind,omitempty"`
	Title            string     `json:"title"`
	Content          string     `json:"content"`
	SanitizedContent string     `json:"sanitized_content"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// Key returns "<entityId>+<RFC3339Nano UTC timestamp>".
func (s Snapshot) Key() string {
	return SnapshotKey(s.ID, s.UpdatedAt)
}

// SnapshotKey builds the local storage key for an entity version.
func SnapshotKey(entityID string, at time.Time) string {
	return entityID + SnapshotKeySeparator + at.UTC().Format(time.RFC3339Nano)
}

// SnapshotEntityID returns the entity id part of a snapshot key.
func SnapshotEntityID(key string) string {
	if i := strings.LastIndex(key, SnapshotKeySeparator); i >= 0 {
		return key[:i]
	}
	return key
}
