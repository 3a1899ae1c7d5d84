package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/summarium/internal/logger"
	"github.com/MKhiriev/summarium/models"
)

type activityRepository struct {
	*DB
	logger *logger.Logger
}

func NewActivityRepository(db *DB, logger *logger.Logger) ActivityRepository {
	return &activityRepository{DB: db, logger: logger}
}

func scanActivity(row rowScanner) (models.Activity, error) {
	var a models.Activity
	err := row.Scan(&a.ID, &a.TaskID, &a.UserID, &a.Comment, &a.CreatedAt)
	return a, err
}

func (r *activityRepository) Create(ctx context.Context, activity models.Activity) (models.Activity, error) {
	log := logger.FromContext(ctx)

	created, err := scanActivity(r.QueryRowContext(ctx, createActivity,
		activity.TaskID, activity.UserID, activity.Comment))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Activity{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "activityRepository.Create").
			Int64("user_id", activity.UserID).Str("task_id", activity.TaskID).
			Msg("failed to create activity")
		return models.Activity{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// List returns the task's activities, newest first.
func (r *activityRepository) List(ctx context.Context, userID int64, taskID string) ([]models.Activity, error) {
	log := logger.FromContext(ctx)

	var activities []models.Activity
	err := r.withReadRetry(ctx, func() error {
		rows, err := r.QueryContext(ctx, listActivities, taskID, userID)
		if err != nil {
			return err
		}
		defer rows.Close()

		activities = make([]models.Activity, 0, 16)
		for rows.Next() {
			activity, err := scanActivity(rows)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			activities = append(activities, activity)
		}
		return rows.Err()
	})
	if err != nil {
		log.Err(err).Str("func", "activityRepository.List").
			Int64("user_id", userID).Str("task_id", taskID).
			Msg("failed to list activities")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return activities, nil
}

func (r *activityRepository) Delete(ctx context.Context, userID int64, id string) error {
	log := logger.FromContext(ctx)

	result, err := r.ExecContext(ctx, deleteActivity, id, userID)
	if err != nil {
		log.Err(err).Str("func", "activityRepository.Delete").
			Int64("user_id", userID).Str("activity_id", id).
			Msg("failed to delete activity")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(result)
}
