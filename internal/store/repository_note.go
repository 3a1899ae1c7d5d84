package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/summarium/internal/logger"
	"github.com/MKhiriev/summarium/models"
)

type rowScanner interface {
	Scan(dest ...any) error
}

type noteRepository struct {
	*DB
	logger *logger.Logger
}

func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	return &noteRepository{DB: db, logger: logger}
}

func scanNote(row rowScanner) (models.Note, error) {
	var n models.Note
	err := row.Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &n.SanitizedContent,
		&n.CreatedAt, &n.UpdatedAt, &n.ArchivedAt, &n.DeletedAt)
	return n, err
}

func (r *noteRepository) Upsert(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	saved, err := scanNote(r.QueryRowContext(ctx, upsertNote,
		note.ID, note.UserID, note.Title, note.Content, note.SanitizedContent))
	if errors.Is(err, sql.ErrNoRows) {
		// the id exists but belongs to someone else or was deleted
		return models.Note{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "noteRepository.Upsert").
			Int64("user_id", note.UserID).Str("note_id", note.ID).
			Msg("failed to upsert note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return saved, nil
}

func (r *noteRepository) Get(ctx context.Context, userID int64, id string) (models.Note, error) {
	log := logger.FromContext(ctx)

	var note models.Note
	err := r.withReadRetry(ctx, func() error {
		var scanErr error
		note, scanErr = scanNote(r.QueryRowContext(ctx, getNote, id, userID))
		return scanErr
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Note{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "noteRepository.Get").
			Int64("user_id", userID).Str("note_id", id).
			Msg("failed to get note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return note, nil
}

func (r *noteRepository) List(ctx context.Context, userID int64, archived bool) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListNotesQuery(userID, archived)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.List").Int64("user_id", userID).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var notes []models.Note
	err = r.withReadRetry(ctx, func() error {
		rows, err := r.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		notes = make([]models.Note, 0, 32)
		for rows.Next() {
			note, err := scanNote(rows)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			notes = append(notes, note)
		}
		return rows.Err()
	})
	if err != nil {
		log.Err(err).Str("func", "noteRepository.List").Int64("user_id", userID).Msg("failed to list notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return notes, nil
}

func (r *noteRepository) SetArchived(ctx context.Context, userID int64, id string, archived bool) (models.Note, error) {
	log := logger.FromContext(ctx)

	query := unarchiveNote
	if archived {
		query = archiveNote
	}

	note, err := scanNote(r.QueryRowContext(ctx, query, id, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Note{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "noteRepository.SetArchived").
			Int64("user_id", userID).Str("note_id", id).Bool("archived", archived).
			Msg("failed to change archive state")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return note, nil
}

func (r *noteRepository) Delete(ctx context.Context, userID int64, id string) error {
	log := logger.FromContext(ctx)

	result, err := r.ExecContext(ctx, deleteNote, id, userID)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.Delete").
			Int64("user_id", userID).Str("note_id", id).
			Msg("failed to delete note")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(result)
}

// expectAffected turns a write that touched no rows into ErrNotFound.
func expectAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
