package handler

import (
	stdhttp "net/http"

	"github.com/MKhiriev/summarium/internal/config"
	"github.com/MKhiriev/summarium/internal/handler/http"
	"github.com/MKhiriev/summarium/internal/logger"
	"github.com/MKhiriev/summarium/internal/service"
)

// Handlers groups the transports of the API. Every route is HTTP.
type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Str("func", "NewHandlers").
		Str("address", cfg.Server.HTTPAddress).
		Bool("body_signing", cfg.App.HashKey != "").
		Msg("creating handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHTTPAddress
	}

	return &Handlers{HTTP: http.NewHandler(services, cfg, logger)}, nil
}

// Router builds the chi router with every route and middleware.
func (h *Handlers) Router() stdhttp.Handler {
	return h.HTTP.Init()
}
