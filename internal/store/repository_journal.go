package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/summarium/internal/logger"
	"github.com/MKhiriev/summarium/models"
)

type journalRepository struct {
	*DB
	logger *logger.Logger
}

func NewJournalRepository(db *DB, logger *logger.Logger) JournalRepository {
	return &journalRepository{DB: db, logger: logger}
}

func scanJournal(row rowScanner) (models.Journal, error) {
	var j models.Journal
	err := row.Scan(&j.ID, &j.UserID, &j.Day, &j.Content, &j.SanitizedContent, &j.CreatedAt, &j.UpdatedAt)
	return j, err
}

// Upsert creates the entry for (user, day) or replaces its content.
func (r *journalRepository) Upsert(ctx context.Context, journal models.Journal) (models.Journal, error) {
	log := logger.FromContext(ctx)

	saved, err := scanJournal(r.QueryRowContext(ctx, upsertJournal,
		journal.UserID, journal.Day, journal.Content, journal.SanitizedContent))
	if err != nil {
		log.Err(err).Str("func", "journalRepository.Upsert").
			Int64("user_id", journal.UserID).Str("day", journal.Day).
			Msg("failed to upsert journal")
		return models.Journal{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return saved, nil
}

func (r *journalRepository) Get(ctx context.Context, userID int64, day string) (models.Journal, error) {
	log := logger.FromContext(ctx)

	var journal models.Journal
	err := r.withReadRetry(ctx, func() error {
		var scanErr error
		journal, scanErr = scanJournal(r.QueryRowContext(ctx, getJournal, userID, day))
		return scanErr
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Journal{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "journalRepository.Get").
			Int64("user_id", userID).Str("day", day).
			Msg("failed to get journal")
		return models.Journal{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return journal, nil
}

func (r *journalRepository) List(ctx context.Context, userID int64) ([]models.Journal, error) {
	log := logger.FromContext(ctx)

	var journals []models.Journal
	err := r.withReadRetry(ctx, func() error {
		rows, err := r.QueryContext(ctx, listJournals, userID)
		if err != nil {
			return err
		}
		defer rows.Close()

		journals = make([]models.Journal, 0, 32)
		for rows.Next() {
			journal, err := scanJournal(rows)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			journals = append(journals, journal)
		}
		return rows.Err()
	})
	if err != nil {
		log.Err(err).Str("func", "journalRepository.List").Int64("user_id", userID).Msg("failed to list journals")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return journals, nil
}

func (r *journalRepository) Delete(ctx context.Context, userID int64, day string) error {
	log := logger.FromContext(ctx)

	result, err := r.ExecContext(ctx, deleteJournal, userID, day)
	if err != nil {
		log.Err(err).Str("func", "journalRepository.Delete").
			Int64("user_id", userID).Str("day", day).
			Msg("failed to delete journal")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(result)
}
