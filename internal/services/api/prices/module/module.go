// Package module wires price search into the API using modkit
package module

import (
	"context"
	"net/http"
	"time"

	"housepricing/internal/adapters/ssb"
	"housepricing/internal/core/filter"
	"housepricing/internal/core/version"
	modkit "housepricing/internal/modkit"
	"housepricing/internal/modkit/httpkit"

	"housepricing/internal/services/api/prices/domain"
	phttp "housepricing/internal/services/api/prices/http"
	prepo "housepricing/internal/services/api/prices/repo"
	psvc "housepricing/internal/services/api/prices/service"
)

// Name is the module name
const Name = "prices"

// Option lets callers replace the upstream fetcher, mostly in tests
type Option func(*settings)

type settings struct{ fetcher domain.Fetcher }

// WithFetcher replaces the SSB client
func WithFetcher(f domain.Fetcher) Option { return func(s *settings) { s.fetcher = f } }

// New constructs the prices module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	return NewWith(deps, nil, opts...)
}

// NewWith is New with prices specific options
func NewWith(deps modkit.Deps, popts []Option, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName(Name),
		modkit.WithPrefix("/prices"),
	}, opts...)...)

	filter.RegisterTags()
	cfg := FromConfig(deps.Cfg)

	var st settings
	for _, o := range popts {
		o(&st)
	}
	if st.fetcher == nil {
		so := cfg.SSB
		if so.UserAgent == "" {
			so.UserAgent = version.UserAgent("housepricing-api")
		}
		st.fetcher = ssb.NewClient(so)
	}

	var sink domain.ObservationWriter
	if cfg.Sink && deps.CH != nil {
		s := prepo.NewSink(deps.CH)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := s.Migrate(ctx); err != nil {
			deps.Log.Warn().Err(err).Str("table", prepo.Table).Msg("observation table migrate failed")
		}
		cancel()
		sink = s
	}

	svc := psvc.New(st.fetcher, psvc.Options{
		Clock:       deps.Clock,
		Sink:        sink,
		SinkTimeout: cfg.SinkTimeout,
	})

	if cfg.Throttle > 0 {
		b.Mw = append([]func(http.Handler) http.Handler{httpkit.Throttle(cfg.Throttle)}, b.Mw...)
	}
	return b.Module(func(r httpkit.Router) { phttp.Register(r, svc) })
}
