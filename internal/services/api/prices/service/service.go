// Package service runs price searches against the statistics table
package service

import (
	"context"
	"math/rand/v2"
	"time"

	"housepricing/internal/adapters/ssb"
	"housepricing/internal/core/filter"
	"housepricing/internal/core/jsonstat"
	"housepricing/internal/core/quarter"
	"housepricing/internal/core/urlstate"
	"housepricing/internal/platform/logger"
	ptime "housepricing/internal/platform/time"
	"housepricing/internal/services/api/prices/domain"
)

// Service is the public service port
type Service interface{ domain.ServicePort }

// Options control service behavior
type Options struct {
	Clock ptime.Clock
	// Rand returns the color source for one search; nil seeds from the clock
	Rand func() *rand.Rand
	// Sink receives fetched cells; nil stores nothing
	Sink domain.ObservationWriter
	// SinkTimeout bounds one sink write; zero means 3s
	SinkTimeout time.Duration
}

// Svc implements the service port
type Svc struct {
	fetch       domain.Fetcher
	sink        domain.ObservationWriter
	clock       ptime.Clock
	rnd         func() *rand.Rand
	sinkTimeout time.Duration
}

var _ Service = (*Svc)(nil)

// New constructs the service around a table fetcher
func New(f domain.Fetcher, opt Options) *Svc {
	if f == nil {
		panic("prices.Service requires a non nil Fetcher")
	}
	clock := ptime.OrSystem(opt.Clock)
	rnd := opt.Rand
	if rnd == nil {
		rnd = func() *rand.Rand {
			return rand.New(rand.NewPCG(uint64(clock.Now().UnixNano()), rand.Uint64()))
		}
	}
	if opt.SinkTimeout <= 0 {
		opt.SinkTimeout = 3 * time.Second
	}
	return &Svc{
		fetch:       f,
		sink:        opt.Sink,
		clock:       clock,
		rnd:         rnd,
		sinkTimeout: opt.SinkTimeout,
	}
}

// Search validates sel, fetches the table once and reshapes the answer into
// one series per house type. Nothing is fetched when validation fails
func (s *Svc) Search(ctx context.Context, sel filter.Selection) (domain.SearchResult, error) {
	if err := sel.Validate(quarter.NewValidator(s.clock)); err != nil {
		return domain.SearchResult{}, err
	}
	quarters, err := sel.Quarters()
	if err != nil {
		return domain.SearchResult{}, err
	}

	log := logger.C(ctx).With().
		Str("table", s.fetch.Table()).
		Str("span", quarter.Span(sel.StartQuarter, sel.EndQuarter)).
		Int("house_types", len(sel.HouseTypes)).
		Logger()

	raw, err := s.fetch.Fetch(ctx, ssb.BuildQueryBody(sel.HouseTypes, quarters))
	if err != nil {
		log.Warn().Err(err).Msg("price fetch failed")
		return domain.SearchResult{}, err
	}
	g, err := jsonstat.PrepareGraphData(raw)
	if err != nil {
		log.Warn().Err(err).Int("bytes", len(raw)).Msg("price response rejected")
		return domain.SearchResult{}, err
	}
	if g.Datasets == nil {
		g.Datasets = []jsonstat.Series{}
	}
	if g.Labels == nil {
		g.Labels = []string{}
	}

	s.store(ctx, g)
	log.Debug().Int("series", len(g.Datasets)).Int("labels", len(g.Labels)).Msg("price search done")

	return domain.SearchResult{
		Datasets:  g.Datasets,
		Labels:    g.Labels,
		Colors:    jsonstat.Palette(len(g.Datasets), s.rnd()),
		Share:     urlstate.Query(sel),
		Selection: sel,
		Quarters:  quarters,
	}, nil
}

// store hands the cells to the sink. A failed write never fails the search
func (s *Svc) store(ctx context.Context, g jsonstat.GraphData) {
	if s.sink == nil {
		return
	}
	obs := domain.Observations(s.fetch.Table(), g, s.clock.Now().UTC())
	if len(obs) == 0 {
		return
	}
	wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.sinkTimeout)
	defer cancel()
	if err := s.sink.Write(wctx, obs); err != nil {
		logger.C(ctx).Warn().Err(err).Int("rows", len(obs)).Msg("observation write failed")
	}
}
