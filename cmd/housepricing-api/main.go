// @title         House pricing API
// @version       1.0
// @description   Quarterly square meter prices per house type, with shareable searches and a search history

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"housepricing/internal/modkit/repokit"
	"housepricing/internal/platform/config"
	"housepricing/internal/platform/logger"
	phttp "housepricing/internal/platform/net/http"
	"housepricing/internal/platform/store"

	"housepricing/internal/services/api"
	metamod "housepricing/internal/services/api/meta/module"
)

func main() {
	// LOG_* is read from the process env; .env only feeds the rest
	logger.Init(logger.FromEnv(logger.Options{Service: metamod.ServiceName}))
	l := logger.Get()
	config.LoadDotenv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	chCfg := root.Prefix("SERVICE_CLICKHOUSE_")

	// both backends are optional; history falls back to memory and the
	// observation sink is skipped
	st, err := store.Open(ctx,
		store.Config{
			AppName: metamod.ServiceName,
			PG: store.PGConfig{
				Enabled:     pgCfg.Has("DBURL"),
				URL:         pgCfg.MayString("DBURL", ""),
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", false),
			},
			CH: store.CHConfig{
				Enabled:     chCfg.Has("DBURL"),
				URL:         chCfg.MayString("DBURL", ""),
				Role:        chCfg.MayString("ROLE", ""),
				DialTimeout: chCfg.MayDuration("DIAL_TIMEOUT", 5*time.Second),
			},
		},
		store.WithLogger(*l),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	repokit.MustGuard(ctx, st, 10*time.Second)

	// http server (reads CORE_API_PORT / CORE_API_SHUTDOWN_GRACE)
	srv := phttp.NewServer(apiCfg)

	api.Mount(
		srv.Router(),
		api.Options{
			Config:         root,
			API:            apiCfg,
			Store:          st,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
		},
	)

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
	l.Info().Msg("bye")
}
