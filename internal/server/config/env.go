package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv overlays SONGREGISTRY_* environment variables. Unset variables
// keep whatever the earlier layers produced.
func parseEnv(config *Config) error {
	if err := env.Parse(config); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
