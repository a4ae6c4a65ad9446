// Package repo stores fetched price cells in ClickHouse
package repo

import (
	"context"
	"errors"

	"housepricing/internal/platform/store"
	"housepricing/internal/services/api/prices/domain"
)

// Table receives one row per fetched cell
const Table = "price_observations"

// Schema creates Table when missing. Repeated fetches of the same cell
// collapse to the newest row
const Schema = `
	CREATE TABLE IF NOT EXISTS price_observations (
		table_id   LowCardinality(String),
		quarter    String,
		house_type LowCardinality(String),
		price      Float64,
		fetched_at DateTime64(3, 'UTC')
	)
	ENGINE = ReplacingMergeTree(fetched_at)
	ORDER BY (table_id, house_type, quarter)
`

// Sink writes observations through a Clickhouse seam
type Sink struct {
	ch store.Clickhouse
}

var _ domain.ObservationWriter = (*Sink)(nil)

// NewSink wraps ch
func NewSink(ch store.Clickhouse) *Sink { return &Sink{ch: ch} }

// Migrate applies Schema
func (s *Sink) Migrate(ctx context.Context) error {
	if s == nil || s.ch == nil {
		return errors.New("prices sink: nil clickhouse")
	}
	return s.ch.Exec(ctx, Schema)
}

// Write inserts obs as one batch
func (s *Sink) Write(ctx context.Context, obs []domain.Observation) error {
	if s == nil || s.ch == nil {
		return errors.New("prices sink: nil clickhouse")
	}
	if len(obs) == 0 {
		return nil
	}
	rows := make([][]any, 0, len(obs))
	for _, o := range obs {
		rows = append(rows, []any{o.Table, o.Quarter, string(o.HouseType), o.Price, o.FetchedAt})
	}
	return s.ch.Insert(ctx, Table, rows)
}
