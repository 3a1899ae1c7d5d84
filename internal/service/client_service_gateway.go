package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/summarium/internal/adapter"
	"github.com/MKhiriev/summarium/internal/app"
	"github.com/MKhiriev/summarium/internal/logger"
	"github.com/MKhiriev/summarium/models"
)

type persistenceGateway struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger

	mu     sync.RWMutex
	notify func(string)
}

func NewPersistenceGateway(serverAdapter adapter.ServerAdapter, logger *logger.Logger) PersistenceGateway {
	return &persistenceGateway{adapter: serverAdapter, logger: logger, notify: func(string) {}}
}

func (g *persistenceGateway) SetNotifier(notify func(string)) {
	if notify == nil {
		notify = func(string) {}
	}
	g.mu.Lock()
	g.notify = notify
	g.mu.Unlock()
}

func (g *persistenceGateway) SaveNote(ctx context.Context, note models.Note) (models.Note, error) {
	saved, err := g.adapter.SaveNote(ctx, note.ID, models.SaveNoteRequest{
		Title:            note.Title,
		Content:          note.Content,
		SanitizedContent: note.SanitizedContent,
	})
	if err != nil {
		return models.Note{}, g.fail(err, "SaveNote", note.ID)
	}
	return saved, nil
}

func (g *persistenceGateway) SaveJournal(ctx context.Context, journal models.Journal) (models.Journal, error) {
	saved, err := g.adapter.SaveJournal(ctx, journal.Day, models.SaveJournalRequest{
		Content:          journal.Content,
		SanitizedContent: journal.SanitizedContent,
	})
	if err != nil {
		return models.Journal{}, g.fail(err, "SaveJournal", journal.Day)
	}
	return saved, nil
}

func (g *persistenceGateway) SaveTask(ctx context.Context, task models.Task) (models.Task, error) {
	saved, err := g.adapter.SaveTask(ctx, task.ID, saveTaskRequest(task, ""))
	if err != nil {
		return models.Task{}, g.fail(err, "SaveTask", task.ID)
	}
	return saved, nil
}

func (g *persistenceGateway) DeleteNote(ctx context.Context, id string) error {
	if err := g.adapter.DeleteNote(ctx, id); err != nil {
		return g.fail(err, "DeleteNote", id)
	}
	return nil
}

func (g *persistenceGateway) DeleteJournal(ctx context.Context, day string) error {
	if err := g.adapter.DeleteJournal(ctx, day); err != nil {
		return g.fail(err, "DeleteJournal", day)
	}
	return nil
}

func (g *persistenceGateway) DeleteTask(ctx context.Context, id string) error {
	if err := g.adapter.DeleteTask(ctx, id); err != nil {
		return g.fail(err, "DeleteTask", id)
	}
	return nil
}

func (g *persistenceGateway) CreateActivity(ctx context.Context, taskID, comment string) (models.Activity, error) {
	activity, err := g.adapter.CreateActivity(ctx, taskID, models.CreateActivityRequest{Comment: comment})
	if err != nil {
		return models.Activity{}, g.fail(err, "CreateActivity", taskID)
	}
	return activity, nil
}

func (g *persistenceGateway) DeleteActivity(ctx context.Context, id string) error {
	if err := g.adapter.DeleteActivity(ctx, id); err != nil {
		return g.fail(err, "DeleteActivity", id)
	}
	return nil
}

// fail logs err, shows the save toast and wraps the mapped error with
// ErrSaveFailed.
func (g *persistenceGateway) fail(err error, op, id string) error {
	g.logger.Err(err).Str("func", "persistenceGateway."+op).Str("id", id).Msg("write failed")

	g.mu.RLock()
	notify := g.notify
	g.mu.RUnlock()
	notify(app.MsgSaveFailed)

	mapped := mapAdapterError(err)
	if mapped == ErrSaveFailed {
		return mapped
	}
	return fmt.Errorf("%w: %w", ErrSaveFailed, mapped)
}

func saveTaskRequest(task models.Task, due string) models.SaveTaskRequest {
	req := models.SaveTaskRequest{
		Title:                task.Title,
		Description:          task.Description,
		SanitizedDescription: task.SanitizedDescription,
		Status:               task.Status,
		Priority:             task.Priority,
		DueDate:              task.DueDate,
	}
	if due != "" {
		req.DueDate = nil
		req.Due = due
	}
	return req
}
