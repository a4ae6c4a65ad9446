package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"housepricing/internal/platform/store/pg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// pgxQuerier is what *pgxpool.Pool and pgx.Tx have in common
type pgxQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// pgxPool is the slice of *pgxpool.Pool behind a TxRunner
type pgxPool interface {
	pgxQuerier
	Begin(ctx context.Context) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// traced reports each statement run on q to tracer. A zero slow never
// flags a statement as slow
type traced struct {
	q      pgxQuerier
	tracer pg.QueryTracer
	slow   time.Duration
}

func (t traced) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	done := t.start(ctx, sql, args)
	ct, err := t.q.Exec(ctx, sql, args...)
	done(err)
	return ct, err
}

// Query is timed until the result set opens, not until it drains
func (t traced) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	done := t.start(ctx, sql, args)
	rs, err := t.q.Query(ctx, sql, args...)
	done(err)
	if err != nil {
		return nil, err
	}
	return rs, nil
}

// QueryRow is timed until Scan returns, since pgx defers errors to Scan
func (t traced) QueryRow(ctx context.Context, sql string, args ...any) Row {
	return scanHook{t.q.QueryRow(ctx, sql, args...), t.start(ctx, sql, args)}
}

func (t traced) start(ctx context.Context, sql string, args []any) func(error) {
	if t.tracer == nil {
		return func(error) {}
	}
	began := time.Now()
	return func(err error) {
		took := time.Since(began)
		t.tracer.OnQuery(ctx, pg.QueryEvent{
			SQL:       sql,
			Args:      args,
			ElapsedUS: took.Microseconds(),
			Err:       err,
			Slow:      t.slow > 0 && took >= t.slow,
		})
	}
}

type scanHook struct {
	pgx.Row
	done func(error)
}

func (s scanHook) Scan(dst ...any) error {
	err := s.Row.Scan(dst...)
	s.done(err)
	return err
}

// pgRunner is the TxRunner over a pool
type pgRunner struct {
	traced
	pool pgxPool
}

func newPGRunner(pool pgxPool, tracer pg.QueryTracer, slow time.Duration) *pgRunner {
	return &pgRunner{traced: traced{q: pool, tracer: tracer, slow: slow}, pool: pool}
}

func (r *pgRunner) Ping(ctx context.Context) error {
	if r == nil || r.pool == nil {
		return errors.New("pg: not open")
	}
	return r.pool.Ping(ctx)
}

func (r *pgRunner) Close() error {
	if r != nil && r.pool != nil {
		r.pool.Close()
	}
	return nil
}

// Tx commits when fn returns nil. An error or panic from fn rolls back
func (r *pgRunner) Tx(ctx context.Context, fn func(q RowQuerier) error) (err error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("pg: begin: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err := fn(traced{q: tx, tracer: r.tracer, slow: r.slow}); err != nil {
		if rb := tx.Rollback(ctx); rb != nil && !errors.Is(rb, pgx.ErrTxClosed) {
			return errors.Join(err, fmt.Errorf("pg: rollback: %w", rb))
		}
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("pg: commit: %w", err)
	}
	return nil
}
