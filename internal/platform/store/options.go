package store

import (
	"errors"

	"housepricing/internal/platform/logger"
	"housepricing/internal/platform/store/pg"
)

// Option mutates Store during Open
type Option func(*Store) error

// WithLogger sets the logger used by subclients and the PG_LOG_SQL tracer
func WithLogger(log logger.Logger) Option {
	return func(s *Store) error {
		s.Log = log
		return nil
	}
}

// WithQueryTracer routes postgres statement events to t instead of the
// logging tracer. It applies whether or not LogSQL is set
func WithQueryTracer(t pg.QueryTracer) Option {
	return func(s *Store) error {
		if t == nil {
			return errors.New("store: nil query tracer")
		}
		s.tracer = t
		return nil
	}
}
