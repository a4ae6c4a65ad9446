// Package modkit provides module wiring and core deps
package modkit

import (
	"housepricing/internal/modkit/repokit"
	"housepricing/internal/platform/config"
	"housepricing/internal/platform/logger"
	"housepricing/internal/platform/store"
	ptime "housepricing/internal/platform/time"
)

// Deps holds the shared dependencies every module is built from
type Deps struct {
	Log logger.Logger
	Cfg config.Conf

	// PG and CH are nil when the backend is disabled
	PG repokit.TxRunner
	CH store.Clickhouse

	// Clock is the time source for quarter bounds; nil means system time
	Clock ptime.Clock
}

// Now reads the configured clock
func (d Deps) Now() ptime.Clock { return ptime.OrSystem(d.Clock) }
