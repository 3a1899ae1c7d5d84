package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/summarium/internal/config"
	"github.com/MKhiriev/summarium/internal/handler"
	handlerhttp "github.com/MKhiriev/summarium/internal/handler/http"
	"github.com/MKhiriev/summarium/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandlers() *handler.Handlers {
	return &handler.Handlers{
		HTTP: handlerhttp.NewHandler(nil, config.StructuredConfig{}, logger.Nop()),
	}
}

func TestNewServer(t *testing.T) {
	tests := []struct {
		name     string
		handlers *handler.Handlers
		cfg      config.Server
		wantErr  bool
	}{
		{name: "http", handlers: newTestHandlers(), cfg: config.Server{HTTPAddress: ":0"}},
		{name: "no address", handlers: newTestHandlers(), wantErr: true},
		{name: "no handlers", cfg: config.Server{HTTPAddress: ":0"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, err := NewServer(tt.handlers, tt.cfg, logger.Nop())
			if tt.wantErr {
				require.ErrorIs(t, err, errNoListener)
				assert.Nil(t, srv)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, srv)
		})
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	srv, err := NewServer(newTestHandlers(), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.(*server).run(ctx)
	}()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRun_ListenFailure(t *testing.T) {
	s := &server{
		httpServer: &httpServer{server: &http.Server{Addr: "not-an-address"}, logger: logger.Nop()},
		logger:     logger.Nop(),
	}

	err := s.run(context.Background())

	assert.Error(t, err)
}

func TestRun_NothingToRun(t *testing.T) {
	s := &server{logger: logger.Nop()}

	assert.ErrorIs(t, s.run(context.Background()), errNoHTTPServer)
}
