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

const memoNotes = "notes"

type noteService struct {
	noteRepository store.NoteRepository
	indexer        search.Indexer
	validator      validators.Validator

	logger *logger.Logger
}

func NewNoteService(noteRepository store.NoteRepository, indexer search.Indexer, validator validators.Validator, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		indexer:        indexer,
		validator:      validator,
		logger:         logger,
	}
}

func (s *noteService) List(ctx context.Context, userID int64, archived bool) ([]models.Note, error) {
	return utils.Remember(ctx, memoKey(memoNotes, userID, "list", archived), func() ([]models.Note, error) {
		return s.noteRepository.List(ctx, userID, archived)
	})
}

// Get treats a malformed id like a missing note.
func (s *noteService) Get(ctx context.Context, userID int64, id string) (models.Note, error) {
	if err := s.validator.ValidateID(id); err != nil {
		return models.Note{}, store.ErrNotFound
	}
	return utils.Remember(ctx, memoKey(memoNotes, userID, "get", id), func() (models.Note, error) {
		return s.noteRepository.Get(ctx, userID, id)
	})
}

func (s *noteService) Save(ctx context.Context, userID int64, id string, req models.SaveNoteRequest) (models.Note, error) {
	if err := s.validator.ValidateID(id); err != nil {
		return models.Note{}, store.ErrNotFound
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	saved, err := s.noteRepository.Upsert(ctx, models.Note{
		ID:               id,
		UserID:           userID,
		Title:            req.Title,
		Content:          req.Content,
		SanitizedContent: richtext.PlainText(req.Content),
	})
	if err != nil {
		return models.Note{}, err
	}

	utils.ForgetInContext(ctx, memoPrefix(memoNotes, userID))
	s.indexer.Index(search.NoteDocument(saved))
	return saved, nil
}

func (s *noteService) Archive(ctx context.Context, userID int64, id string, archived bool) (models.Note, error) {
	if err := s.validator.ValidateID(id); err != nil {
		return models.Note{}, store.ErrNotFound
	}

	note, err := s.noteRepository.SetArchived(ctx, userID, id, archived)
	if err != nil {
		return models.Note{}, err
	}

	utils.ForgetInContext(ctx, memoPrefix(memoNotes, userID))
	return note, nil
}

func (s *noteService) Delete(ctx context.Context, userID int64, id string) error {
	if err := s.validator.ValidateID(id); err != nil {
		return store.ErrNotFound
	}

	if err := s.noteRepository.Delete(ctx, userID, id); err != nil {
		return err
	}

	utils.ForgetInContext(ctx, memoPrefix(memoNotes, userID))
	s.indexer.Remove(models.KindNote, userID, id)
	return nil
}
