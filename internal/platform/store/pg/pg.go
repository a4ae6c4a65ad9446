// Package pg builds pgx pools and the statement tracers that watch them
package pg

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Config configures a pool
type Config struct {
	URL      string
	MaxConns int32
	// AppName becomes application_name unless URL already sets one
	AppName string
}

var newPool = pgxpool.NewWithConfig

// Open builds the pool. pgxpool connects lazily, so a nil error does not
// mean the server is up
func Open(ctx context.Context, cfg Config) (*pgxpool.Pool, error) {
	pc, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("pg: parse url: %w", err)
	}
	if cfg.MaxConns > 0 {
		pc.MaxConns = cfg.MaxConns
	}
	params := pc.ConnConfig.RuntimeParams
	if _, set := params["application_name"]; !set && cfg.AppName != "" {
		params["application_name"] = cfg.AppName
	}

	pool, err := newPool(ctx, pc)
	if err != nil {
		return nil, fmt.Errorf("pg: pool: %w", err)
	}
	return pool, nil
}
