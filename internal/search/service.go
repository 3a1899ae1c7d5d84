package search

import (
	"context"
	"sync"

	"github.com/MKhiriev/summarium/internal/logger"
	"github.com/MKhiriev/summarium/internal/store"
	"github.com/MKhiriev/summarium/models"
)

// SnippetWidth matches the SQL fallback so both backends render alike.
const SnippetWidth = store.SnippetWidth

// DefaultLimit caps a query when the caller passes no limit.
const DefaultLimit = 20

// Engine is the full-text backend, implemented by Meili.
type Engine interface {
	Healthy() bool
	Search(userID int64, text string, limit int) ([]models.SearchResult, error)
	Index(docs ...Document) error
	Remove(id string) error
}

// Indexer keeps the engine in sync with saved entities. Calls return
// immediately; the work happens in the background.
type Indexer interface {
	Index(doc Document)
	Remove(kind models.EntityKind, userID int64, entityID string)
}

// Service tries the engine first and falls back to SQL.
type Service struct {
	engine   Engine
	fallback store.SearchRepository
	logger   *logger.Logger

	wg sync.WaitGroup
}

// NewService creates the search facade. engine may be nil when Meilisearch
// is not configured.
func NewService(engine Engine, fallback store.SearchRepository, log *logger.Logger) *Service {
	return &Service{engine: engine, fallback: fallback, logger: log}
}

func (s *Service) Search(ctx context.Context, userID int64, text string, limit int) (models.SearchResponse, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	log := logger.FromContext(ctx)

	if s.engine != nil && s.engine.Healthy() {
		results, err := s.engine.Search(userID, text, limit)
		if err == nil {
			return response(text, results), nil
		}
		log.Warn().Err(err).Str("func", "Service.Search").Msg("meilisearch error, falling back to postgres")
	}

	results, err := s.fallback.Search(ctx, userID, text, limit)
	if err != nil {
		log.Err(err).Str("func", "Service.Search").Int64("user_id", userID).Msg("postgres search failed")
		return models.SearchResponse{}, err
	}
	return response(text, results), nil
}

func response(text string, results []models.SearchResult) models.SearchResponse {
	if results == nil {
		results = []models.SearchResult{}
	}
	return models.SearchResponse{Results: results, Total: len(results), Query: text}
}

func (s *Service) Index(doc Document) {
	s.async("Service.Index", doc.ID, func() error { return s.engine.Index(doc) })
}

func (s *Service) Remove(kind models.EntityKind, userID int64, entityID string) {
	id := DocumentID(kind, userID, entityID)
	s.async("Service.Remove", id, func() error { return s.engine.Remove(id) })
}

func (s *Service) async(fn, id string, call func() error) {
	if s.engine == nil || !s.engine.Healthy() {
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := call(); err != nil {
			s.logger.Err(err).Str("func", fn).Str("document_id", id).Msg("search index update failed")
		}
	}()
}

// Wait blocks until background index updates finish.
func (s *Service) Wait() {
	s.wg.Wait()
}
