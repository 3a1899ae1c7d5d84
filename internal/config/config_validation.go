// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks what the server needs before it starts.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 || cfg.App.TokenIssuer == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	objects := cfg.Storage.Objects
	if objects.Endpoint != "" && (objects.AccessKey == "" || objects.SecretKey == "" || objects.Bucket == "") {
		return fmt.Errorf("%w: object storage needs access key, secret key and bucket", ErrInvalidStorageConfigs)
	}
	if objects.Endpoint == "" && cfg.Storage.Files.SpeechDir == "" {
		return fmt.Errorf("%w: speech audio needs a bucket or a directory", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.AI.WordDelay < 0 || cfg.AI.RequestTimeout < 0 {
		return ErrInvalidAIConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.Path == "" || strings.Contains(cfg.Storage.Path, ":memory:") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Editor.SaveDelay <= 0 {
		return ErrInvalidEditorConfigs
	}

	if cfg.Workers.RetentionInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
