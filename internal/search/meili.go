package search

import (
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/summarium/internal/logger"
	"github.com/MKhiriev/summarium/internal/richtext"
	"github.com/MKhiriev/summarium/models"
	meili "github.com/meilisearch/meilisearch-go"
)

const (
	indexUID = "summarium_entities"

	// DefaultHealthInterval is how often an unhealthy engine is probed.
	DefaultHealthInterval = 10 * time.Second
)

// Meili is the Meilisearch engine. It tracks its own health so callers can
// skip it without waiting for a timeout.
type Meili struct {
	client  meili.ServiceManager
	healthy atomic.Bool
	logger  *logger.Logger
	done    chan struct{}
}

// NewMeili connects to url and configures the index. An unreachable engine
// is not an error: it is probed every interval and configured once it
// answers.
func NewMeili(url, apiKey string, interval time.Duration, log *logger.Logger) *Meili {
	m := &Meili{
		client: meili.New(url, meili.WithAPIKey(apiKey)),
		logger: log,
		done:   make(chan struct{}),
	}

	if _, err := m.client.Health(); err != nil {
		log.Warn().Err(err).Str("func", "NewMeili").Str("url", url).Msg("meilisearch unavailable, using postgres search")
	} else {
		m.healthy.Store(true)
		m.configureIndex()
	}

	if interval <= 0 {
		interval = DefaultHealthInterval
	}
	go m.healthLoop(interval)
	return m
}

func (m *Meili) configureIndex() {
	if _, err := m.client.CreateIndex(&meili.IndexConfig{Uid: indexUID, PrimaryKey: "id"}); err != nil {
		m.logger.Debug().Err(err).Str("func", "Meili.configureIndex").Msg("create index (may already exist)")
	}

	index := m.client.Index(indexUID)
	filterable := []interface{}{"userId", "kind"}
	if _, err := index.UpdateFilterableAttributes(&filterable); err != nil {
		m.logger.Err(err).Str("func", "Meili.configureIndex").Msg("error updating filterable attributes")
	}
	searchable := []string{"title", "body"}
	if _, err := index.UpdateSearchableAttributes(&searchable); err != nil {
		m.logger.Err(err).Str("func", "Meili.configureIndex").Msg("error updating searchable attributes")
	}
	sortable := []string{"updatedAt"}
	if _, err := index.UpdateSortableAttributes(&sortable); err != nil {
		m.logger.Err(err).Str("func", "Meili.configureIndex").Msg("error updating sortable attributes")
	}
}

func (m *Meili) healthLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			_, err := m.client.Health()
			wasHealthy := m.healthy.Swap(err == nil)
			if err == nil && !wasHealthy {
				m.logger.Info().Str("func", "Meili.healthLoop").Msg("meilisearch recovered, configuring index")
				m.configureIndex()
			}
		}
	}
}

// Close stops the health probe.
func (m *Meili) Close() {
	close(m.done)
}

func (m *Meili) Healthy() bool {
	return m.healthy.Load()
}

// Search returns the user's hits, best match first.
func (m *Meili) Search(userID int64, text string, limit int) ([]models.SearchResult, error) {
	if !m.healthy.Load() {
		return nil, ErrEngineUnhealthy
	}

	resp, err := m.client.MultiSearch(&meili.MultiSearchRequest{
		Queries: []*meili.SearchRequest{{
			IndexUID: indexUID,
			Query:    text,
			Limit:    int64(limit),
			Filter:   fmt.Sprintf("userId = %d", userID),
		}},
	})
	if err != nil {
		m.healthy.Store(false)
		return nil, fmt.Errorf("meilisearch multi-search: %w", err)
	}

	results := make([]models.SearchResult, 0, limit)
	for _, sr := range resp.Results {
		for _, hit := range sr.Hits {
			results = append(results, hitToResult(hit, text))
		}
	}
	return results, nil
}

func hitToResult(hit meili.Hit, query string) models.SearchResult {
	return models.SearchResult{
		Kind:    models.EntityKind(decodeString(hit, "kind")),
		ID:      decodeString(hit, "entityId"),
		Title:   decodeString(hit, "title"),
		Snippet: richtext.Snippet(decodeString(hit, "body"), query, SnippetWidth),
	}
}

func decodeString(hit meili.Hit, key string) string {
	raw, ok := hit[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

func (m *Meili) Index(docs ...Document) error {
	if len(docs) == 0 {
		return nil
	}
	_, err := m.client.Index(indexUID).AddDocuments(docs, nil)
	return err
}

func (m *Meili) Remove(id string) error {
	_, err := m.client.Index(indexUID).DeleteDocument(id, nil)
	return err
}
