// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from process environment variables using the
// caarlos0/env library, then fills still-empty fields from the legacy
// unprefixed variables (JWT_SECRET, PORT, DATABASE_URL).
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	applyLegacyEnv(cfg, os.LookupEnv)
	return nil
}

// parseEnvMap is parseEnv over an explicit variable set instead of the
// process environment.
func parseEnvMap(cfg *StructuredConfig, vars map[string]string) error {
	if err := env.ParseWithOptions(cfg, env.Options{Environment: vars}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	applyLegacyEnv(cfg, func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	})
	return nil
}

func applyLegacyEnv(cfg *StructuredConfig, lookup func(string) (string, bool)) {
	if v, ok := lookup("JWT_SECRET"); ok && cfg.App.JWTSecret == "" {
		cfg.App.JWTSecret = v
	}
	if v, ok := lookup("PORT"); ok && v != "" && cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = ":" + v
	}
	if v, ok := lookup("DATABASE_URL"); ok && cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = v
	}
}
