package module

import (
	"time"

	"housepricing/internal/platform/config"
)

// Options controls history storage
type Options struct {
	StatementTimeout time.Duration
	// Migrate creates the table on startup when Postgres is enabled
	Migrate bool
}

// FromConfig reads HISTORY_* values from process config/env
func FromConfig(cfg config.Conf) Options {
	hc := cfg.Prefix("HISTORY_")
	return Options{
		StatementTimeout: hc.MayDuration("STATEMENT_TIMEOUT", 2*time.Second),
		Migrate:          hc.MayBool("MIGRATE", true),
	}
}
