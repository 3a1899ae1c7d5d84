package config

import (
	"fmt"
	"os"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// HashKey signs request bodies; empty disables signing.
	HashKey string
	LogFile string
}

// ClientAdapter is the client's view of the server connection.
type ClientAdapter struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// ClientStorage is the local snapshot database and its retention policy.
// Zero KeepLast or MaxAge disables that limit.
type ClientStorage struct {
	Path     string
	KeepLast int
	MaxAge   time.Duration
}

type ClientEditor struct {
	SaveDelay time.Duration
}

type ClientWorkers struct {
	RetentionInterval time.Duration
}

// ClientConfig is the terminal client's configuration, derived from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Editor  ClientEditor
	Workers ClientWorkers
}

// GetClientConfig loads the shared sources and validates the client view.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := loadStructuredConfig(os.Args[1:])
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// newClientConfig maps the fields the client uses. Retention limits set to
// a negative value mean "disabled", since zero falls back to the default.
func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	keepLast := cfg.Storage.Local.KeepLast
	if keepLast < 0 {
		keepLast = 0
	}
	maxAge := cfg.Storage.Local.MaxAge
	if maxAge < 0 {
		maxAge = 0
	}

	return &ClientConfig{
		App: ClientApp{
			HashKey: cfg.App.HashKey,
			LogFile: cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			Path:     cfg.Storage.Local.Path,
			KeepLast: keepLast,
			MaxAge:   maxAge,
		},
		Editor:  ClientEditor{SaveDelay: cfg.Editor.SaveDelay},
		Workers: ClientWorkers{RetentionInterval: cfg.Workers.RetentionInterval},
	}
}
