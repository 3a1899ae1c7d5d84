package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress is a host:port pair usable as a flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags reads command-line flags into a fresh config.
//
//	-a               server listen address host:port
//	-s               server address used by the client (host:port or URL)
//	-d               PostgreSQL DSN
//	-r               Redis URL for token revocation
//	-c / -config     JSON config file
//	-token-sign-key  JWT signing key
//	-token-issuer    JWT issuer
//	-token-duration  JWT lifetime (e.g. 24h)
//	-request-timeout server and client request timeout
//	-hash-key        HashSHA256 signing key
//	-search-url      Meilisearch URL
//	-search-key      Meilisearch API key
//	-speech-dir      directory for synthesized audio
//	-ai-url          AI provider base URL
//	-ai-key          AI provider API key
//	-local-db        client snapshot database path
//	-log-level       zerolog level
//	-log-file        client log file
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	cfg := &StructuredConfig{}

	fs := flag.NewFlagSet("summarium", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&cfg.Adapter.HTTPAddress, "s", "", "Server address for the client")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.Storage.Redis.URL, "r", "", "Redis URL")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.StringVar(&cfg.App.HashKey, "hash-key", "", "Security hash key")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level")
	fs.StringVar(&cfg.App.LogFile, "log-file", "", "Client log file")
	fs.StringVar(&cfg.Storage.Search.URL, "search-url", "", "Meilisearch URL")
	fs.StringVar(&cfg.Storage.Search.APIKey, "search-key", "", "Meilisearch API key")
	fs.StringVar(&cfg.Storage.Files.SpeechDir, "speech-dir", "", "Speech audio directory")
	fs.StringVar(&cfg.Storage.Local.Path, "local-db", "", "Client snapshot database")
	fs.StringVar(&cfg.AI.BaseURL, "ai-url", "", "AI provider base URL")
	fs.StringVar(&cfg.AI.APIKey, "ai-key", "", "AI provider API key")

	var requestTimeout time.Duration
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	cfg.Server.RequestTimeout = requestTimeout
	cfg.Adapter.RequestTimeout = requestTimeout

	return cfg, nil
}

// String returns host:port, or "" when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port. The host must be an IP address or "localhost";
// an empty host binds every interface.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
