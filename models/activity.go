package models

import "time"

// Activity is an append-only comment on a task. Activities are deleted
// individually and never edited.
type Activity struct {
	ID        string    `json:"id"`
	TaskID    string    `json:"task_id"`
	UserID    int64     `json:"-"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateActivityRequest is the body of POST /api/tasks/{id}/activities.
type CreateActivityRequest struct {
	Comment string `json:"comment" validate:"required,max=10000"`
}
