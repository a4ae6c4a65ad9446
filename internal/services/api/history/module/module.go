// Package module wires search history into the API using modkit
package module

import (
	"context"
	"time"

	"housepricing/internal/core/filter"
	modkit "housepricing/internal/modkit"
	"housepricing/internal/modkit/httpkit"
	"housepricing/internal/modkit/repokit"

	hhttp "housepricing/internal/services/api/history/http"
	hrepo "housepricing/internal/services/api/history/repo"
	hsvc "housepricing/internal/services/api/history/service"
)

// Name is the module name
const Name = "history"

// New constructs the history module. Without Postgres it falls back to an
// in-process store with the same contract
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName(Name),
		modkit.WithPrefix("/history"),
	}, opts...)...)

	filter.RegisterTags()
	cfg := FromConfig(deps.Cfg)

	var (
		db     repokit.TxRunner
		binder repokit.Binder[hrepo.Repo]
	)
	if deps.PG != nil {
		db, binder = deps.PG, hrepo.NewPG()
		if cfg.Migrate {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			if err := hrepo.Migrate(ctx, deps.PG); err != nil {
				// Append reports PersistenceUnavailable until the table exists
				deps.Log.Warn().Err(err).Str("table", hrepo.Table).Msg("history migrate failed")
			}
			cancel()
		}
	} else {
		binder = hrepo.NewMemory()
		deps.Log.Info().Msg("postgres disabled; search history kept in memory")
	}

	svc := hsvc.New(db, binder, hsvc.Options{
		StatementTimeout: cfg.StatementTimeout,
		Clock:            deps.Clock,
	})

	return b.Module(func(r httpkit.Router) { hhttp.Register(r, svc) })
}
