package search

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/MKhiriev/summarium/internal/logger"
	"github.com/MKhiriev/summarium/internal/mock"
	"github.com/MKhiriev/summarium/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type stubEngine struct {
	mu        sync.Mutex
	healthy   bool
	results   []models.SearchResult
	searchErr error
	indexed   []string
	removed   []string
}

func (e *stubEngine) Healthy() bool { return e.healthy }

func (e *stubEngine) Search(int64, string, int) ([]models.SearchResult, error) {
	return e.results, e.searchErr
}

func (e *stubEngine) Index(docs ...Document) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, d := range docs {
		e.indexed = append(e.indexed, d.ID)
	}
	return nil
}

func (e *stubEngine) Remove(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.removed = append(e.removed, id)
	return errors.New("ignored")
}

// ── Search ───────────────────────────────────────────────────────────────────

func TestService_Search_PrefersEngine(t *testing.T) {
	ctrl := gomock.NewController(t)
	fallback := mock.NewMockSearchRepository(ctrl)
	engine := &stubEngine{healthy: true, results: []models.SearchResult{{Kind: models.KindTask, ID: "t1"}}}

	resp, err := NewService(engine, fallback, logger.Nop()).Search(context.Background(), 1, "ship", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, "ship", resp.Query)
}

func TestService_Search_FallsBack(t *testing.T) {
	tests := []struct {
		name   string
		engine Engine
	}{
		{name: "not configured", engine: nil},
		{name: "unhealthy", engine: &stubEngine{healthy: false}},
		{name: "engine error", engine: &stubEngine{healthy: true, searchErr: errors.New("timeout")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			fallback := mock.NewMockSearchRepository(ctrl)
			fallback.EXPECT().Search(gomock.Any(), int64(1), "ship", DefaultLimit).Return(nil, nil)

			resp, err := NewService(tt.engine, fallback, logger.Nop()).Search(context.Background(), 1, "ship", 0)
			require.NoError(t, err)
			assert.NotNil(t, resp.Results)
			assert.Equal(t, 0, resp.Total)
		})
	}
}

func TestService_Search_FallbackError(t *testing.T) {
	ctrl := gomock.NewController(t)
	fallback := mock.NewMockSearchRepository(ctrl)
	fallback.EXPECT().Search(gomock.Any(), int64(1), "x", 5).Return(nil, errors.New("db down"))

	_, err := NewService(nil, fallback, logger.Nop()).Search(context.Background(), 1, "x", 5)
	assert.Error(t, err)
}

// ── Index ────────────────────────────────────────────────────────────────────

func TestService_IndexInBackground(t *testing.T) {
	engine := &stubEngine{healthy: true}
	s := NewService(engine, nil, logger.Nop())

	s.Index(TaskDocument(models.Task{ID: "t1", UserID: 2}))
	s.Remove(models.KindNote, 2, "n1")
	s.Wait()

	assert.Equal(t, []string{"task-2-t1"}, engine.indexed)
	assert.Equal(t, []string{"note-2-n1"}, engine.removed)
}

func TestService_IndexSkippedWithoutEngine(t *testing.T) {
	s := NewService(nil, nil, logger.Nop())
	s.Index(Document{ID: "x"})
	s.Remove(models.KindNote, 1, "n")
	s.Wait()

	unhealthy := &stubEngine{}
	s = NewService(unhealthy, nil, logger.Nop())
	s.Index(Document{ID: "x"})
	s.Wait()
	assert.Empty(t, unhealthy.indexed)
}
