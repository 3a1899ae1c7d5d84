// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

// envNamespace prefixes variables that take precedence over the plain ones,
// so SUMMARIUM_SERVER_ADDRESS beats SERVER_ADDRESS.
const envNamespace = "SUMMARIUM_"

// parseEnv fills cfg from environment variables following its `env` and
// `envPrefix` tags. Namespaced variables are read first.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: envNamespace}); err != nil {
		return fmt.Errorf("error getting %s env configs: %w", envNamespace, err)
	}

	plain := new(StructuredConfig)
	if err := env.Parse(plain); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	if err := mergo.Merge(cfg, plain); err != nil {
		return fmt.Errorf("error merging env configs: %w", err)
	}
	return nil
}
