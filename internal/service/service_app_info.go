package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/summarium/internal/config"
	"github.com/MKhiriev/summarium/internal/logger"
)

// notAvailable is what unset build metadata is printed as.
const notAvailable = "N/A"

// appInfoService reports the version the server was started with. It is
// fixed for the process lifetime.
type appInfoService struct {
	version string
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" || version == notAvailable {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Info().Str("func", "NewAppInfoService").Str("version", version).Msg("serving version")
	return &appInfoService{version: version}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.version
}
