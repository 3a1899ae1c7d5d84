package http

import (
	"github.com/MKhiriev/summarium/internal/config"
	"github.com/MKhiriev/summarium/internal/logger"
	"github.com/MKhiriev/summarium/internal/service"
	"github.com/MKhiriev/summarium/internal/utils"
	"github.com/MKhiriev/summarium/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator

	// hashKey enables the HashSHA256 request check when set.
	hashKey string
	// speechDir is served under /static/speech/ when audio lives on disk.
	speechDir string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	if cfg.App.HashKey != "" {
		utils.InitHasherPool(cfg.App.HashKey)
	}

	var speechDir string
	if cfg.Storage.Objects.Endpoint == "" {
		speechDir = cfg.Storage.Files.SpeechDir
	}

	return &Handler{
		services:  services,
		validator: validators.NewRequestValidator(),
		hashKey:   cfg.App.HashKey,
		speechDir: speechDir,
		logger:    logger,
	}
}
