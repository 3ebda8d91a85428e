// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

const envPrefix = "ZLUX_"

// parseEnv populates opts from environment variables using the caarlos0/env
// library. Fields are mapped via their `env` tags, prefixed with ZLUX_.
//
// Returns a wrapped error if a value cannot be converted to the target type
// (e.g. ZLUX_PORT=abc).
func parseEnv(opts *Options) error {
	err := env.ParseWithOptions(opts, env.Options{Prefix: envPrefix})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
