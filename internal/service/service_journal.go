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

const memoJournals = "journals"

type journalService struct {
	journalRepository store.JournalRepository
	indexer           search.Indexer
	validator         validators.Validator

	logger *logger.Logger
}

func NewJournalService(journalRepository store.JournalRepository, indexer search.Indexer, validator validators.Validator, logger *logger.Logger) JournalService {
	return &journalService{
		journalRepository: journalRepository,
		indexer:           indexer,
		validator:         validator,
		logger:            logger,
	}
}

func (s *journalService) List(ctx context.Context, userID int64) ([]models.Journal, error) {
	return utils.Remember(ctx, memoKey(memoJournals, userID, "list"), func() ([]models.Journal, error) {
		return s.journalRepository.List(ctx, userID)
	})
}

// Get returns validators.ErrInvalidDay for a malformed day so the handler
// can redirect to today's entry.
func (s *journalService) Get(ctx context.Context, userID int64, day string) (models.Journal, error) {
	if err := s.validator.ValidateDay(day); err != nil {
		return models.Journal{}, err
	}
	return utils.Remember(ctx, memoKey(memoJournals, userID, "get", day), func() (models.Journal, error) {
		return s.journalRepository.Get(ctx, userID, day)
	})
}

func (s *journalService) Save(ctx context.Context, userID int64, day string, req models.SaveJournalRequest) (models.Journal, error) {
	if err := s.validator.ValidateDay(day); err != nil {
		return models.Journal{}, err
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Journal{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	saved, err := s.journalRepository.Upsert(ctx, models.Journal{
		UserID:           userID,
		Day:              day,
		Content:          req.Content,
		SanitizedContent: richtext.PlainText(req.Content),
	})
	if err != nil {
		return models.Journal{}, err
	}

	utils.ForgetInContext(ctx, memoPrefix(memoJournals, userID))
	s.indexer.Index(search.JournalDocument(saved))
	return saved, nil
}

func (s *journalService) Delete(ctx context.Context, userID int64, day string) error {
	if err := s.validator.ValidateDay(day); err != nil {
		return store.ErrNotFound
	}

	if err := s.journalRepository.Delete(ctx, userID, day); err != nil {
		return err
	}

	utils.ForgetInContext(ctx, memoPrefix(memoJournals, userID))
	s.indexer.Remove(models.KindJournal, userID, day)
	return nil
}
