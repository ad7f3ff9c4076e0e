// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// The device secret may come from APP_DEVICE_SECRET or, for service managers
// that hand secrets over as files, from the file named by
// APP_DEVICE_SECRET_FILE. The variable wins when both are set; surrounding
// whitespace of the file contents is dropped.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be converted
// to the target type or the secret file cannot be read).
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	if cfg.App.DeviceSecret == "" {
		cfg.App.DeviceSecret = strings.TrimSpace(cfg.App.DeviceSecretFromFile)
	}
	cfg.App.DeviceSecretFromFile = ""

	return nil
}
