package service

import (
	"context"

	"github.com/MKhiriev/summarium/internal/adapter"
	"github.com/MKhiriev/summarium/internal/logger"
	"github.com/MKhiriev/summarium/models"
	"github.com/sahilm/fuzzy"
)

type clientSearchService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientSearchService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientSearchService {
	return &clientSearchService{adapter: serverAdapter, logger: logger}
}

func (s *clientSearchService) Search(ctx context.Context, query string, limit int) (models.SearchResponse, error) {
	resp, err := s.adapter.Search(ctx, query, limit)
	if err != nil {
		s.logger.Err(err).Str("func", "clientSearchService.Search").Str("query", query).Msg("search failed")
		return models.SearchResponse{}, mapAdapterError(err)
	}
	return resp, nil
}

// FilterList keeps the items whose text fuzzy-matches query, best match
// first. An empty query returns items unchanged.
func FilterList[T any](items []T, query string, text func(T) string) []T {
	if query == "" {
		return items
	}

	matches := fuzzy.FindFrom(query, listSource[T]{items: items, text: text})
	filtered := make([]T, 0, len(matches))
	for _, m := range matches {
		filtered = append(filtered, items[m.Index])
	}
	return filtered
}

type listSource[T any] struct {
	items []T
	text  func(T) string
}

func (s listSource[T]) String(i int) string {
	return s.text(s.items[i])
}

func (s listSource[T]) Len() int {
	return len(s.items)
}
