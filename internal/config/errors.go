package config

import "errors"

// Validation errors returned when a configuration group is incomplete.
var (
	// ErrInvalidAppConfigs: missing token sign key or non-positive duration.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs: missing DSN, half-configured object storage
	// or a missing local snapshot path.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs: missing listen address or timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAIConfigs: negative pacing or timeout.
	ErrInvalidAIConfigs = errors.New("invalid ai configuration")
	// ErrInvalidAdapterConfigs: missing server address or timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidEditorConfigs: non-positive save delay.
	ErrInvalidEditorConfigs = errors.New("invalid editor configuration")
	// ErrInvalidWorkerConfigs: non-positive retention interval.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
