package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/summarium/internal/logger"
	"github.com/MKhiriev/summarium/models"
)

type taskRepository struct {
	*DB
	logger *logger.Logger
}

func NewTaskRepository(db *DB, logger *logger.Logger) TaskRepository {
	return &taskRepository{DB: db, logger: logger}
}

func scanTask(row rowScanner) (models.Task, error) {
	var t models.Task
	err := row.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.SanitizedDescription,
		&t.Status, &t.Priority, &t.DueDate, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func (r *taskRepository) Upsert(ctx context.Context, task models.Task) (models.Task, error) {
	log := logger.FromContext(ctx)

	saved, err := scanTask(r.QueryRowContext(ctx, upsertTask,
		task.ID, task.UserID, task.Title, task.Description, task.SanitizedDescription,
		string(task.Status), string(task.Priority), task.DueDate))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "taskRepository.Upsert").
			Int64("user_id", task.UserID).Str("task_id", task.ID).
			Msg("failed to upsert task")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return saved, nil
}

func (r *taskRepository) Get(ctx context.Context, userID int64, id string) (models.Task, error) {
	log := logger.FromContext(ctx)

	var task models.Task
	err := r.withReadRetry(ctx, func() error {
		var scanErr error
		task, scanErr = scanTask(r.QueryRowContext(ctx, getTask, id, userID))
		return scanErr
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "taskRepository.Get").
			Int64("user_id", userID).Str("task_id", id).
			Msg("failed to get task")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return task, nil
}

func (r *taskRepository) List(ctx context.Context, userID int64, filter models.TaskFilter) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListTasksQuery(userID, filter)
	if err != nil {
		log.Err(err).Str("func", "taskRepository.List").Int64("user_id", userID).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var tasks []models.Task
	err = r.withReadRetry(ctx, func() error {
		rows, err := r.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		tasks = make([]models.Task, 0, 32)
		for rows.Next() {
			task, err := scanTask(rows)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			tasks = append(tasks, task)
		}
		return rows.Err()
	})
	if err != nil {
		log.Err(err).Str("func", "taskRepository.List").
			Int64("user_id", userID).Str("status", string(filter.Status)).Str("priority", string(filter.Priority)).
			Msg("failed to list tasks")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return tasks, nil
}

// Delete removes the task together with its activities.
func (r *taskRepository) Delete(ctx context.Context, userID int64, id string) error {
	log := logger.FromContext(ctx)

	result, err := r.ExecContext(ctx, deleteTask, id, userID)
	if err != nil {
		log.Err(err).Str("func", "taskRepository.Delete").
			Int64("user_id", userID).Str("task_id", id).
			Msg("failed to delete task")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(result)
}
