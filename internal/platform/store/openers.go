package store

import (
	"context"
	"fmt"
	"time"

	"housepricing/internal/platform/store/ch"
	"housepricing/internal/platform/store/pg"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ pgxPool = (*pgxpool.Pool)(nil)

var (
	openPGPool = func(ctx context.Context, cfg pg.Config) (pgxPool, error) {
		p, err := pg.Open(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
	openCHConn = func(ctx context.Context, cfg ch.Config) (Clickhouse, error) {
		c, err := ch.Open(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
)

func openPG(ctx context.Context, cfg Config, s *Store) (TxRunner, error) {
	pool, err := openPGPool(ctx, pg.Config{
		URL:      cfg.PG.URL,
		MaxConns: cfg.PG.MaxConns,
		AppName:  cfg.AppName,
	})
	if err != nil {
		return nil, err
	}
	if err := waitForPG(ctx, pool, cfg.PG, s); err != nil {
		pool.Close()
		return nil, err
	}

	tracer := s.tracer
	if tracer == nil && cfg.PG.LogSQL {
		tracer = pg.Tracer(s.Log)
	}
	return newPGRunner(pool, tracer, time.Duration(cfg.PG.SlowQueryMs)*time.Millisecond), nil
}

// waitForPG pings the pool with exponential backoff until it answers or
// the attempts run out. Pings bypass the tracer
func waitForPG(ctx context.Context, pool Pinger, cfg PGConfig, s *Store) error {
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = 150 * time.Millisecond
	eb.MaxInterval = 2 * time.Second
	eb.MaxElapsedTime = 0

	attempt := 0
	ping := func() error {
		attempt++
		pctx, cancel := context.WithTimeout(ctx, cfg.pingTimeout())
		defer cancel()
		return pool.Ping(pctx)
	}
	retry := backoff.WithContext(backoff.WithMaxRetries(eb, uint64(cfg.retries()-1)), ctx)
	notify := func(err error, next time.Duration) {
		s.Log.Warn().Err(err).Int("attempt", attempt).Dur("retry_in", next).Msg("postgres not ready")
	}

	if err := backoff.RetryNotify(ping, retry, notify); err != nil {
		return fmt.Errorf("pg: not ready after %d attempts: %w", attempt, err)
	}
	return nil
}

func openCH(ctx context.Context, cfg Config) (Clickhouse, error) {
	role := cfg.CH.Role
	if role == "" {
		role = cfg.AppName
	}
	return openCHConn(ctx, ch.Config{
		URL:         cfg.CH.URL,
		Role:        role,
		DialTimeout: cfg.CH.DialTimeout,
	})
}
