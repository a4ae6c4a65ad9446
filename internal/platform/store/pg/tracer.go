package pg

import (
	"context"
	"strings"

	"housepricing/internal/platform/logger"
	pnet "housepricing/internal/platform/net"

	"github.com/rs/zerolog"
)

// QueryEvent describes one finished statement
type QueryEvent struct {
	SQL       string
	Args      any
	ElapsedUS int64
	Err       error
	Slow      bool
}

// QueryTracer receives query events from the store adapters
type QueryTracer interface {
	OnQuery(ctx context.Context, ev QueryEvent)
}

// TracerFunc adapts a plain func to QueryTracer
type TracerFunc func(ctx context.Context, ev QueryEvent)

// OnQuery calls f
func (f TracerFunc) OnQuery(ctx context.Context, ev QueryEvent) { f(ctx, ev) }

// Tracer logs every statement through root at info, or warn when slow.
// The root level is lifted to debug so PG_LOG_SQL works under a quiet process
func Tracer(root logger.Logger) QueryTracer {
	log := root.Level(zerolog.DebugLevel).With().Str("component", "pg").Logger()
	return TracerFunc(func(ctx context.Context, ev QueryEvent) {
		evt := log.Info()
		if ev.Slow {
			evt = log.Warn()
		}
		if id := pnet.RequestID(ctx); id != "" {
			evt = evt.Str("request_id", id)
		}
		evt.Float64("elapsed_ms", float64(ev.ElapsedUS)/1000).
			Bool("slow", ev.Slow).
			Str("sql", oneLine(ev.SQL)).
			Interface("args", ev.Args).
			Err(ev.Err).
			Msg("pg query")
	})
}

// oneLine collapses runs of whitespace so multi line statements log on one line
func oneLine(sql string) string {
	return strings.Join(strings.Fields(sql), " ")
}
