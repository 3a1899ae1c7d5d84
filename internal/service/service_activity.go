package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/summarium/internal/logger"
	"github.com/MKhiriev/summarium/internal/store"
	"github.com/MKhiriev/summarium/internal/utils"
	"github.com/MKhiriev/summarium/internal/validators"
	"github.com/MKhiriev/summarium/models"
)

const memoActivities = "activities"

type activityService struct {
	activityRepository store.ActivityRepository
	validator          validators.Validator

	logger *logger.Logger
}

func NewActivityService(activityRepository store.ActivityRepository, validator validators.Validator, logger *logger.Logger) ActivityService {
	return &activityService{
		activityRepository: activityRepository,
		validator:          validator,
		logger:             logger,
	}
}

func (s *activityService) List(ctx context.Context, userID int64, taskID string) ([]models.Activity, error) {
	if err := s.validator.ValidateID(taskID); err != nil {
		return nil, store.ErrNotFound
	}
	return utils.Remember(ctx, memoKey(memoActivities, userID, taskID), func() ([]models.Activity, error) {
		return s.activityRepository.List(ctx, userID, taskID)
	})
}

func (s *activityService) Create(ctx context.Context, userID int64, taskID string, req models.CreateActivityRequest) (models.Activity, error) {
	if err := s.validator.ValidateID(taskID); err != nil {
		return models.Activity{}, store.ErrNotFound
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Activity{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	activity, err := s.activityRepository.Create(ctx, models.Activity{TaskID: taskID, UserID: userID, Comment: req.Comment})
	if err != nil {
		return models.Activity{}, err
	}

	utils.ForgetInContext(ctx, memoPrefix(memoActivities, userID))
	return activity, nil
}

func (s *activityService) Delete(ctx context.Context, userID int64, id string) error {
	if err := s.validator.ValidateID(id); err != nil {
		return store.ErrNotFound
	}

	if err := s.activityRepository.Delete(ctx, userID, id); err != nil {
		return err
	}

	utils.ForgetInContext(ctx, memoPrefix(memoActivities, userID))
	return nil
}
