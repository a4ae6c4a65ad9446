// Package api provides the HTTP API for the application
package api

import (
	"housepricing/internal/platform/config"
	"housepricing/internal/platform/logger"
	phttp "housepricing/internal/platform/net/http"
	"housepricing/internal/platform/store"
	ptime "housepricing/internal/platform/time"

	"housepricing/internal/modkit"
	"housepricing/internal/modkit/httpkit"
	"housepricing/internal/modkit/swaggerkit"

	historymod "housepricing/internal/services/api/history/module"
	metamod "housepricing/internal/services/api/meta/module"
	pricesmod "housepricing/internal/services/api/prices/module"
)

// Options are the API options
type Options struct {
	// Config is the root config; modules read their own prefixes from it
	Config config.Conf
	// API is the CORE_API_ scope
	API            config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	Clock          ptime.Clock
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{
		Cfg:   opt.Config,
		Clock: opt.Clock,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}
	if opt.Store != nil {
		deps.PG = opt.Store.PG
		deps.CH = opt.Store.CH
	}

	mods := []modkit.Module{
		metamod.New(deps),
		pricesmod.New(deps),
		historymod.New(deps),
	}

	stack := httpkit.CommonStack(httpkit.StackOptions{
		CORS:    httpkit.CORSOptions{AllowedOrigins: opt.API.MayCSV("CORS_ORIGINS", nil)},
		Timeout: opt.API.MayDuration("TIMEOUT", 0),
		Slow:    opt.API.MayDuration("SLOW", 0),
	})

	swaggerkit.Mount(r, swaggerkit.Options{
		Enabled:     opt.EnableSwagger,
		BasePath:    "/api/v1",
		TitleSuffix: opt.API.MayString("DOCS_TITLE_SUFFIX", ""),
	})
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		for _, m := range mods {
			m.MountRoutes(api)
		}
	})
}
