package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/summarium/internal/adapter"
	"github.com/MKhiriev/summarium/internal/editor"
	"github.com/MKhiriev/summarium/internal/logger"
	"github.com/MKhiriev/summarium/internal/richtext"
	"github.com/MKhiriev/summarium/internal/utils"
	"github.com/MKhiriev/summarium/models"
)

// IDGenerator issues ids for entities created on the client.
type IDGenerator interface {
	Generate() string
}

// ── notes ──

type clientNoteService struct {
	adapter adapter.ServerAdapter
	gateway PersistenceGateway
	ids     IDGenerator
	logger  *logger.Logger
}

func NewClientNoteService(serverAdapter adapter.ServerAdapter, gateway PersistenceGateway, ids IDGenerator, logger *logger.Logger) ClientNoteService {
	return &clientNoteService{adapter: serverAdapter, gateway: gateway, ids: ids, logger: logger}
}

func (s *clientNoteService) List(ctx context.Context, archived bool) ([]models.Note, error) {
	notes, err := s.adapter.ListNotes(ctx, archived)
	if err != nil {
		s.logger.Err(err).Str("func", "clientNoteService.List").Msg("failed to list notes")
		return nil, mapAdapterError(err)
	}
	return notes, nil
}

func (s *clientNoteService) Create(ctx context.Context) (models.Note, error) {
	return s.gateway.SaveNote(ctx, models.Note{ID: s.ids.Generate()})
}

func (s *clientNoteService) Archive(ctx context.Context, id string, archived bool) (models.Note, error) {
	note, err := s.adapter.ArchiveNote(ctx, id, archived)
	if err != nil {
		s.logger.Err(err).Str("func", "clientNoteService.Archive").Str("id", id).Msg("failed to archive note")
		return models.Note{}, mapAdapterError(err)
	}
	return note, nil
}

func (s *clientNoteService) Delete(ctx context.Context, id string) error {
	return s.gateway.DeleteNote(ctx, id)
}

func (s *clientNoteService) Capability() editor.Capability[models.Note] {
	return noteCapability{s}
}

type noteCapability struct {
	s *clientNoteService
}

func (c noteCapability) Load(ctx context.Context, id string) (models.Note, error) {
	note, err := c.s.adapter.GetNote(ctx, id)
	if err != nil {
		return models.Note{}, mapAdapterError(err)
	}
	return note, nil
}

func (c noteCapability) Save(ctx context.Context, note models.Note) (models.Note, error) {
	return c.s.gateway.SaveNote(ctx, note)
}

func (noteCapability) Edit(note models.Note, title, content string) models.Note {
	note.Title = title
	note.Content = content
	note.SanitizedContent = richtext.PlainText(content)
	return note
}

func (noteCapability) Adopt(live, saved models.Note) models.Note {
	if live.ID == "" {
		live.ID = saved.ID
	}
	if live.UserID == 0 {
		live.UserID = saved.UserID
	}
	if live.CreatedAt.IsZero() {
		live.CreatedAt = saved.CreatedAt
	}
	if !saved.UpdatedAt.IsZero() {
		live.UpdatedAt = saved.UpdatedAt
	}
	return live
}

func (noteCapability) DeriveSnapshot(note models.Note) models.Snapshot {
	return models.Snapshot{
		ID:               note.ID,
		Kind:             models.KindNote,
		Title:            note.Title,
		Content:          note.Content,
		SanitizedContent: note.SanitizedContent,
		UpdatedAt:        note.UpdatedAt,
	}
}

// ── journals ──

type clientJournalService struct {
	adapter  adapter.ServerAdapter
	gateway  PersistenceGateway
	clock    utils.Clock
	location *time.Location
	logger   *logger.Logger
}

// NewClientJournalService picks "today" on clock in the local time zone.
func NewClientJournalService(serverAdapter adapter.ServerAdapter, gateway PersistenceGateway, clock utils.Clock, logger *logger.Logger) ClientJournalService {
	if clock == nil {
		clock = utils.RealClock{}
	}
	return &clientJournalService{adapter: serverAdapter, gateway: gateway, clock: clock, location: time.Local, logger: logger}
}

func (s *clientJournalService) List(ctx context.Context) ([]models.Journal, error) {
	journals, err := s.adapter.ListJournals(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "clientJournalService.List").Msg("failed to list journals")
		return nil, mapAdapterError(err)
	}
	return journals, nil
}

func (s *clientJournalService) Today(ctx context.Context) (models.Journal, error) {
	day := models.Today(s.clock.Now(), s.location)
	journal, err := s.adapter.GetJournal(ctx, day)
	if errors.Is(err, adapter.ErrNotFound) {
		return models.Journal{Day: day}, nil
	}
	if err != nil {
		s.logger.Err(err).Str("func", "clientJournalService.Today").Str("day", day).Msg("failed to get journal")
		return models.Journal{}, mapAdapterError(err)
	}
	return journal, nil
}

func (s *clientJournalService) Delete(ctx context.Context, day string) error {
	return s.gateway.DeleteJournal(ctx, day)
}

func (s *clientJournalService) Capability() editor.Capability[models.Journal] {
	return journalCapability{s}
}

type journalCapability struct {
	s *clientJournalService
}

// Load takes a day, not an id: journals are addressed by date.
func (c journalCapability) Load(ctx context.Context, day string) (models.Journal, error) {
	journal, err := c.s.adapter.GetJournal(ctx, day)
	if errors.Is(err, adapter.ErrNotFound) {
		return models.Journal{Day: day}, nil
	}
	if err != nil {
		return models.Journal{}, mapAdapterError(err)
	}
	return journal, nil
}

func (c journalCapability) Save(ctx context.Context, journal models.Journal) (models.Journal, error) {
	return c.s.gateway.SaveJournal(ctx, journal)
}

func (journalCapability) Edit(journal models.Journal, _, content string) models.Journal {
	journal.Content = content
	journal.SanitizedContent = richtext.PlainText(content)
	return journal
}

// Adopt fills the id of an entry the session started without one.
func (journalCapability) Adopt(live, saved models.Journal) models.Journal {
	if live.ID == "" {
		live.ID = saved.ID
	}
	if live.UserID == 0 {
		live.UserID = saved.UserID
	}
	if live.CreatedAt.IsZero() {
		live.CreatedAt = saved.CreatedAt
	}
	if !saved.UpdatedAt.IsZero() {
		live.UpdatedAt = saved.UpdatedAt
	}
	return live
}

func (journalCapability) DeriveSnapshot(journal models.Journal) models.Snapshot {
	return models.Snapshot{
		ID:               journal.ID,
		Kind:             models.KindJournal,
		Title:            journal.DisplayTitle(),
		Content:          journal.Content,
		SanitizedContent: journal.SanitizedContent,
		UpdatedAt:        journal.UpdatedAt,
	}
}

// ── tasks ──

type clientTaskService struct {
	adapter adapter.ServerAdapter
	gateway PersistenceGateway
	ids     IDGenerator
	logger  *logger.Logger
}

func NewClientTaskService(serverAdapter adapter.ServerAdapter, gateway PersistenceGateway, ids IDGenerator, logger *logger.Logger) ClientTaskService {
	return &clientTaskService{adapter: serverAdapter, gateway: gateway, ids: ids, logger: logger}
}

func (s *clientTaskService) List(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	tasks, err := s.adapter.ListTasks(ctx, filter)
	if err != nil {
		s.logger.Err(err).Str("func", "clientTaskService.List").Msg("failed to list tasks")
		return nil, mapAdapterError(err)
	}
	return tasks, nil
}

func (s *clientTaskService) Create(ctx context.Context, title string) (models.Task, error) {
	return s.gateway.SaveTask(ctx, models.Task{
		ID:       s.ids.Generate(),
		Title:    title,
		Status:   models.StatusBacklog,
		Priority: models.PriorityNone,
	})
}

// Update with a due phrase talks to the adapter directly, so its errors
// go to the caller and not to the notifier.
func (s *clientTaskService) Update(ctx context.Context, task models.Task, due string) (models.Task, error) {
	if due == "" {
		return s.gateway.SaveTask(ctx, task)
	}
	saved, err := s.adapter.SaveTask(ctx, task.ID, saveTaskRequest(task, due))
	if err != nil {
		s.logger.Err(err).Str("func", "clientTaskService.Update").Str("id", task.ID).Msg("failed to update task")
		return models.Task{}, mapAdapterError(err)
	}
	return saved, nil
}

func (s *clientTaskService) Delete(ctx context.Context, id string) error {
	return s.gateway.DeleteTask(ctx, id)
}

func (s *clientTaskService) Activities(ctx context.Context, taskID string) ([]models.Activity, error) {
	activities, err := s.adapter.ListActivities(ctx, taskID)
	if err != nil {
		s.logger.Err(err).Str("func", "clientTaskService.Activities").Str("task_id", taskID).Msg("failed to list activities")
		return nil, mapAdapterError(err)
	}
	return activities, nil
}

func (s *clientTaskService) AddActivity(ctx context.Context, taskID, comment string) (models.Activity, error) {
	return s.gateway.CreateActivity(ctx, taskID, comment)
}

func (s *clientTaskService) DeleteActivity(ctx context.Context, id string) error {
	return s.gateway.DeleteActivity(ctx, id)
}

func (s *clientTaskService) Capability() editor.Capability[models.Task] {
	return taskCapability{s}
}

// taskCapability edits the title and description of a task; status,
// priority and due date are kept as loaded.
type taskCapability struct {
	s *clientTaskService
}

func (c taskCapability) Load(ctx context.Context, id string) (models.Task, error) {
	task, err := c.s.adapter.GetTask(ctx, id)
	if err != nil {
		return models.Task{}, mapAdapterError(err)
	}
	return task, nil
}

func (c taskCapability) Save(ctx context.Context, task models.Task) (models.Task, error) {
	return c.s.gateway.SaveTask(ctx, task)
}

func (taskCapability) Edit(task models.Task, title, content string) models.Task {
	task.Title = title
	task.Description = content
	task.SanitizedDescription = richtext.PlainText(content)
	return task
}

// Adopt leaves the due date alone: a live due date may be an unsaved edit.
// The session takes the stored due date when nothing changed during the save.
func (taskCapability) Adopt(live, saved models.Task) models.Task {
	if live.ID == "" {
		live.ID = saved.ID
	}
	if live.UserID == 0 {
		live.UserID = saved.UserID
	}
	if live.CreatedAt.IsZero() {
		live.CreatedAt = saved.CreatedAt
	}
	if !saved.UpdatedAt.IsZero() {
		live.UpdatedAt = saved.UpdatedAt
	}
	return live
}

func (taskCapability) DeriveSnapshot(task models.Task) models.Snapshot {
	return models.Snapshot{
		ID:               task.ID,
		Kind:             models.KindTask,
		Title:            task.Title,
		Content:          task.Description,
		SanitizedContent: task.SanitizedDescription,
		UpdatedAt:        task.UpdatedAt,
	}
}
