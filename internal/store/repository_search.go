package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/summarium/internal/logger"
	"github.com/MKhiriev/summarium/internal/richtext"
	"github.com/MKhiriev/summarium/models"
)

// SnippetWidth is the length of the text fragment returned with each hit.
const SnippetWidth = 120

type searchRepository struct {
	*DB
	logger *logger.Logger
}

// NewSearchRepository returns the ILIKE-based search used when no search
// engine is reachable.
func NewSearchRepository(db *DB, logger *logger.Logger) SearchRepository {
	return &searchRepository{DB: db, logger: logger}
}

func (r *searchRepository) Search(ctx context.Context, userID int64, text string, limit int) ([]models.SearchResult, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSearchQuery(userID, text, limit)
	if err != nil {
		log.Err(err).Str("func", "searchRepository.Search").Int64("user_id", userID).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var results []models.SearchResult
	err = r.withReadRetry(ctx, func() error {
		rows, err := r.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		results = make([]models.SearchResult, 0, limit)
		for rows.Next() {
			var (
				result    models.SearchResult
				body      string
				updatedAt time.Time
			)
			if err := rows.Scan(&result.Kind, &result.ID, &result.Title, &body, &updatedAt); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			result.Snippet = richtext.Snippet(body, text, SnippetWidth)
			results = append(results, result)
		}
		return rows.Err()
	})
	if err != nil {
		log.Err(err).Str("func", "searchRepository.Search").Int64("user_id", userID).Msg("failed to search")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return results, nil
}
