package config

import (
	"fmt"

	"github.com/dmitrijs2005/portfolio/internal/flagx"
)

// parseEnv reads FOLIO_API_URL, FOLIO_DB and FOLIO_TIMEOUT. It panics on a
// malformed timeout, like the other loaders.
func parseEnv(cfg *Config) {
	flagx.EnvString("FOLIO_API_URL", &cfg.ServerURL)
	flagx.EnvString("FOLIO_DB", &cfg.DatabasePath)
	if err := flagx.EnvDuration("FOLIO_TIMEOUT", &cfg.RequestTimeout); err != nil {
		panic(fmt.Errorf("FOLIO_TIMEOUT: %w", err))
	}
}
