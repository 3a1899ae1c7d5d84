package models

import (
	"strings"
	"time"
)

// TaskStatus is the workflow state of a task.
type TaskStatus string

const (
	StatusBacklog    TaskStatus = "backlog"
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in-progress"
	StatusComplete   TaskStatus = "complete"
	StatusWontDo     TaskStatus = "wont-do"
)

// TaskStatuses lists statuses in board order.
var TaskStatuses = []TaskStatus{StatusBacklog, StatusTodo, StatusInProgress, StatusComplete, StatusWontDo}

// Valid reports whether s is a known status.
func (s TaskStatus) Valid() bool {
	for _, v := range TaskStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Next returns the following status in board order, wrapping around.
func (s TaskStatus) Next() TaskStatus {
	return cycle(TaskStatuses, s)
}

// TaskPriority is the urgency of a task.
type TaskPriority string

const (
	PriorityNone   TaskPriority = "no-priority"
	PriorityUrgent TaskPriority = "urgent"
	PriorityHigh   TaskPriority = "high"
	PriorityMedium TaskPriority = "medium"
	PriorityLow    TaskPriority = "low"
)

var TaskPriorities = []TaskPriority{PriorityNone, PriorityUrgent, PriorityHigh, PriorityMedium, PriorityLow}

// Valid reports whether p is a known priority.
func (p TaskPriority) Valid() bool {
	for _, v := range TaskPriorities {
		if p == v {
			return true
		}
	}
	return false
}

func (p TaskPriority) Next() TaskPriority {
	return cycle(TaskPriorities, p)
}

func cycle[T comparable](values []T, current T) T {
	for i, v := range values {
		if v == current {
			return values[(i+1)%len(values)]
		}
	}
	return values[0]
}

// Task is a unit of work with a rich-text description.
type Task struct {
	ID                   string       `json:"id"`
	UserID               int64        `json:"-"`
	Title                string       `json:"title"`
	Description          string       `json:"description"`
	SanitizedDescription string       `json:"sanitized_description"`
	Status               TaskStatus   `json:"status"`
	Priority             TaskPriority `json:"priority"`
	DueDate              *time.Time   `json:"due_date,omitempty"`
	CreatedAt            time.Time    `json:"created_at"`
	UpdatedAt            time.Time    `json:"updated_at"`
}

// DisplayTitle returns the title shown in list views.
func (t Task) DisplayTitle() string {
	if strings.TrimSpace(t.Title) == "" {
		return UntitledTitle
	}
	return t.Title
}

// SaveTaskRequest is the body of PUT /api/tasks/{id}.
//
// Due is an optional natural-language phrase ("next friday", "tomorrow at
// 5pm") parsed on the server when DueDate is not set.
type SaveTaskRequest struct {
	Title       string `json:"title" validate:"max=512"`
	Description string `json:"description" validate:"max=1048576"`
	// SanitizedDescription is ignored, like SaveNoteRequest.SanitizedContent.
	SanitizedDescription string       `json:"sanitized_description,omitempty"`
	Status               TaskStatus   `json:"status" validate:"omitempty,oneof=backlog todo in-progress complete wont-do"`
	Priority             TaskPriority `json:"priority" validate:"omitempty,oneof=no-priority urgent high medium low"`
	DueDate              *time.Time   `json:"due_date,omitempty"`
	Due                  string       `json:"due,omitempty" validate:"max=128"`
}

// TaskFilter narrows GET /api/tasks.
type TaskFilter struct {
	Status   TaskStatus
	Priority TaskPriority
}
