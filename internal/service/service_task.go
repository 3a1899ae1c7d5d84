package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/summarium/internal/logger"
	"github.com/MKhiriev/summarium/internal/richtext"
	"github.com/MKhiriev/summarium/internal/search"
	"github.com/MKhiriev/summarium/internal/store"
	"github.com/MKhiriev/summarium/internal/utils"
	"github.com/MKhiriev/summarium/internal/validators"
	"github.com/MKhiriev/summarium/models"
)

const memoTasks = "tasks"

type taskService struct {
	taskRepository store.TaskRepository
	indexer        search.Indexer
	validator      validators.Validator
	dueDates       *DueDateParser

	logger *logger.Logger
}

func NewTaskService(taskRepository store.TaskRepository, indexer search.Indexer, validator validators.Validator, dueDates *DueDateParser, logger *logger.Logger) TaskService {
	return &taskService{
		taskRepository: taskRepository,
		indexer:        indexer,
		validator:      validator,
		dueDates:       dueDates,
		logger:         logger,
	}
}

func (s *taskService) List(ctx context.Context, userID int64, filter models.TaskFilter) ([]models.Task, error) {
	if (filter.Status != "" && !filter.Status.Valid()) || (filter.Priority != "" && !filter.Priority.Valid()) {
		return nil, ErrInvalidDataProvided
	}
	key := memoKey(memoTasks, userID, "list", filter.Status, filter.Priority)
	return utils.Remember(ctx, key, func() ([]models.Task, error) {
		return s.taskRepository.List(ctx, userID, filter)
	})
}

func (s *taskService) Get(ctx context.Context, userID int64, id string) (models.Task, error) {
	if err := s.validator.ValidateID(id); err != nil {
		return models.Task{}, store.ErrNotFound
	}
	return utils.Remember(ctx, memoKey(memoTasks, userID, "get", id), func() (models.Task, error) {
		return s.taskRepository.Get(ctx, userID, id)
	})
}

// Save fills in backlog / no-priority for an empty status or priority and
// resolves req.Due when no explicit DueDate is given.
func (s *taskService) Save(ctx context.Context, userID int64, id string, req models.SaveTaskRequest) (models.Task, error) {
	if err := s.validator.ValidateID(id); err != nil {
		return models.Task{}, store.ErrNotFound
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Task{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	task := models.Task{
		ID:                   id,
		UserID:               userID,
		Title:                req.Title,
		Description:          req.Description,
		SanitizedDescription: richtext.PlainText(req.Description),
		Status:               req.Status,
		Priority:             req.Priority,
		DueDate:              req.DueDate,
	}
	if task.Status == "" {
		task.Status = models.StatusBacklog
	}
	if task.Priority == "" {
		task.Priority = models.PriorityNone
	}
	if task.DueDate == nil && req.Due != "" {
		due, err := s.dueDates.Parse(req.Due)
		if err != nil {
			logger.FromContext(ctx).Info().Str("func", "taskService.Save").Str("due", req.Due).Msg("due phrase was not understood")
			return models.Task{}, err
		}
		task.DueDate = &due
	}

	saved, err := s.taskRepository.Upsert(ctx, task)
	if err != nil {
		return models.Task{}, err
	}

	utils.ForgetInContext(ctx, memoPrefix(memoTasks, userID))
	s.indexer.Index(search.TaskDocument(saved))
	return saved, nil
}

// Delete removes the task and, through the foreign key, its activities.
func (s *taskService) Delete(ctx context.Context, userID int64, id string) error {
	if err := s.validator.ValidateID(id); err != nil {
		return store.ErrNotFound
	}

	if err := s.taskRepository.Delete(ctx, userID, id); err != nil {
		return err
	}

	utils.ForgetInContext(ctx, memoPrefix(memoTasks, userID))
	utils.ForgetInContext(ctx, memoPrefix(memoActivities, userID))
	s.indexer.Remove(models.KindTask, userID, id)
	return nil
}
