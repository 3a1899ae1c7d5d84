// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// server and the client binaries.
type StructuredConfig struct {
	App     App     `envPrefix:"APP_"`
	Storage Storage `envPrefix:"STORAGE_"`
	Server  Server  `envPrefix:"SERVER_"`
	AI      AI      `envPrefix:"AI_"`
	Adapter Adapter `envPrefix:"ADAPTER_"`
	Editor  Editor  `envPrefix:"EDITOR_"`
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: CONFIG, flags: -c / -config
	JSONFilePath string `env:"CONFIG"`
}

// App holds token and integrity settings.
type App struct {
	// TokenSignKey signs and verifies JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of every issued token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long a token stays valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// HashKey keys the HashSHA256 request signature. Empty disables the check.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is reported by GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is where the terminal client writes its logs.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups every persistence backend.
type Storage struct {
	DB      DB      `envPrefix:"DB_"`
	Redis   Redis   `envPrefix:"REDIS_"`
	Search  Search  `envPrefix:"SEARCH_"`
	Objects Objects `envPrefix:"OBJECTS_"`
	Files   Files   `envPrefix:"FILES_"`
	Local   Local   `envPrefix:"LOCAL_"`
}

// DB is the PostgreSQL connection.
type DB struct {
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Redis backs token revocation. Empty URL selects the in-memory store.
type Redis struct {
	// Env: STORAGE_REDIS_URL
	URL string `env:"URL"`
}

// Search is the Meilisearch instance. Empty URL means Postgres-only search.
type Search struct {
	// Env: STORAGE_SEARCH_URL
	URL string `env:"URL"`
	// Env: STORAGE_SEARCH_API_KEY
	APIKey string `env:"API_KEY"`
}

// Objects is the MinIO / S3-compatible bucket for synthesized speech.
// Empty Endpoint means audio is written to Files.SpeechDir instead.
type Objects struct {
	Endpoint  string `env:"ENDPOINT"`
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`
	Bucket    string `env:"BUCKET"`
	UseSSL    bool   `env:"USE_SSL"`
	// PublicURL prefixes object names in returned links.
	PublicURL string `env:"PUBLIC_URL"`
}

// Files holds local directories served by the server.
type Files struct {
	// SpeechDir is served under /static/speech/.
	// Env: STORAGE_FILES_SPEECH_DIR
	SpeechDir string `env:"SPEECH_DIR"`
}

// Local is the client's snapshot database and its retention policy.
type Local struct {
	// Path of the SQLite file.
	// Env: STORAGE_LOCAL_PATH
	Path string `env:"PATH"`
	// KeepLast snapshots per entity survive pruning. Zero disables the limit.
	// Env: STORAGE_LOCAL_KEEP_LAST
	KeepLast int `env:"KEEP_LAST"`
	// MaxAge drops older snapshots. Zero disables the limit.
	// Env: STORAGE_LOCAL_MAX_AGE
	MaxAge time.Duration `env:"MAX_AGE"`
}

// Server is the inbound HTTP transport.
type Server struct {
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	// PublicURL is the externally visible base used in speech links.
	// Env: SERVER_PUBLIC_URL
	PublicURL string `env:"PUBLIC_URL"`
}

// AI is the OpenAI-compatible provider the server proxies to.
type AI struct {
	// Env: AI_BASE_URL
	BaseURL string `env:"BASE_URL"`
	// Env: AI_API_KEY
	APIKey string `env:"API_KEY"`
	// Env: AI_CHAT_MODEL
	ChatModel string `env:"CHAT_MODEL"`
	// Env: AI_SUGGESTION_MODEL
	SuggestionModel string `env:"SUGGESTION_MODEL"`
	// Env: AI_TRANSCRIPTION_MODEL
	TranscriptionModel string `env:"TRANSCRIPTION_MODEL"`
	// Env: AI_SPEECH_MODEL
	SpeechModel string `env:"SPEECH_MODEL"`
	// Env: AI_VOICE
	Voice string `env:"VOICE"`
	// WordDelay paces transcription words sent to the client.
	// Env: AI_WORD_DELAY
	WordDelay time.Duration `env:"WORD_DELAY"`
	// Env: AI_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter is the client's connection to the server.
type Adapter struct {
	// HTTPAddress may be host:port or a full URL.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Editor tunes the client's autosave.
type Editor struct {
	// SaveDelay is the idle period before an edit is saved.
	// Env: EDITOR_SAVE_DELAY
	SaveDelay time.Duration `env:"SAVE_DELAY"`
}

// Workers configures client background jobs.
type Workers struct {
	// RetentionInterval is how often local snapshots are pruned.
	// Env: WORKERS_RETENTION_INTERVAL
	RetentionInterval time.Duration `env:"RETENTION_INTERVAL"`
}

// GetStructuredConfig loads every source, merges them and validates the
// server requirements.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := loadStructuredConfig(os.Args[1:])
	if err != nil {
		return nil, err
	}
	return cfg, cfg.validate()
}

func loadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(".env").
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
