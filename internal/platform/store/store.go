// Package store opens the optional storage backends: Postgres for search
// history and ClickHouse for price observations. Both are reached through
// small interfaces so repos can be tested without a database
package store

import (
	"context"
	"errors"
	"fmt"

	"housepricing/internal/platform/logger"
	"housepricing/internal/platform/store/pg"

	"github.com/rs/zerolog"
)

// Row is a single result row
type Row interface {
	Scan(dest ...any) error
}

// Rows is a result set. Close must be called when done
type Rows interface {
	Row
	Next() bool
	Err() error
	Close()
}

// CommandTag reports what a write did
type CommandTag interface {
	String() string
	RowsAffected() int64
}

// RowQuerier runs sql statements
type RowQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

// TxRunner is a RowQuerier that can also run fn inside one transaction
type TxRunner interface {
	RowQuerier
	Tx(ctx context.Context, fn func(q RowQuerier) error) error
}

// Pinger reports whether a backend answers
type Pinger interface{ Ping(context.Context) error }

// Clickhouse is the write only columnar seam. Insert rows list the table's
// columns in declared order
type Clickhouse interface {
	Pinger
	Insert(ctx context.Context, table string, rows [][]any) error
	Exec(ctx context.Context, sql string, args ...any) error
	Close() error
}

// Store holds whichever backends were enabled. The zero value has none
type Store struct {
	Log logger.Logger

	// PG is nil unless Config.PG.Enabled
	PG TxRunner
	// CH is nil unless Config.CH.Enabled
	CH Clickhouse

	tracer pg.QueryTracer
}

// Open applies opts, then connects each enabled backend. A failure closes
// whatever was already opened
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{Log: zerolog.Nop()}
	for _, o := range opts {
		if err := o(s); err != nil {
			return nil, err
		}
	}

	if cfg.PG.Enabled {
		txr, err := openPG(ctx, cfg, s)
		if err != nil {
			return nil, err
		}
		s.PG = txr
	}
	if cfg.CH.Enabled {
		c, err := openCH(ctx, cfg)
		if err != nil {
			_ = s.Close(ctx)
			return nil, err
		}
		s.CH = c
	}
	return s, nil
}

// Guard pings every open backend and joins the failures, each prefixed with
// the backend name
func (s *Store) Guard(ctx context.Context) error {
	if s == nil {
		return errors.New("store: nil")
	}
	var errs []error
	for _, b := range s.backends() {
		if p, ok := b.conn.(Pinger); ok {
			if err := p.Ping(ctx); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", b.name, err))
			}
		}
	}
	return errors.Join(errs...)
}

// Close releases every open backend, newest first
func (s *Store) Close(context.Context) error {
	var errs []error
	bs := s.backends()
	for i := len(bs) - 1; i >= 0; i-- {
		if c, ok := bs[i].conn.(interface{ Close() error }); ok {
			errs = append(errs, c.Close())
		}
	}
	return errors.Join(errs...)
}

type backend struct {
	name string
	conn any
}

func (s *Store) backends() []backend {
	var out []backend
	if s.PG != nil {
		out = append(out, backend{"pg", s.PG})
	}
	if s.CH != nil {
		out = append(out, backend{"ch", s.CH})
	}
	return out
}
