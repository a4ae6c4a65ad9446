// Package repo provides the search history repository implementations
package repo

import (
	"context"
	"time"

	"housepricing/internal/core/housetype"
	"housepricing/internal/modkit/repokit"
	"housepricing/internal/platform/store"
	"housepricing/internal/services/api/history/domain"

	"github.com/google/uuid"
)

// Table is the fixed storage key for search history
const Table = "search_history"

// Repo is the history persistence surface used by the service layer.
// It is append only
type Repo interface {
	Insert(ctx context.Context, e domain.Entry) error
	// Recent returns the newest limit entries in insertion order
	Recent(ctx context.Context, limit int) ([]domain.Entry, error)
}

type (
	// PG is a Postgres implementation of the history repo
	PG      struct{}
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder for the Postgres implementation
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind attaches a Queryer to the Postgres implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: repokit.RequireQueryer(q)} }

// Schema creates the history table when missing
const Schema = `
	CREATE TABLE IF NOT EXISTS search_history (
		id            uuid        PRIMARY KEY,
		created_at    timestamptz NOT NULL,
		start_quarter text        NOT NULL,
		end_quarter   text        NOT NULL,
		house_types   text[]      NOT NULL
	);
	CREATE INDEX IF NOT EXISTS search_history_created_idx ON search_history (created_at, id);
`

// Migrate applies Schema
func Migrate(ctx context.Context, q repokit.Queryer) error {
	_, err := q.Exec(ctx, Schema)
	return err
}

// Insert appends one entry
func (r *queries) Insert(ctx context.Context, e domain.Entry) error {
	const sql = `
		INSERT INTO search_history (id, created_at, start_quarter, end_quarter, house_types)
		VALUES ($1::uuid, $2, $3, $4, $5)
	`
	return store.ExecOne(ctx, r.q, sql,
		e.ID.String(), e.Date, e.StartQuarter, e.EndQuarter, housetype.Strings(e.HouseTypes))
}

// Recent reads the newest limit rows and returns them oldest first
func (r *queries) Recent(ctx context.Context, limit int) ([]domain.Entry, error) {
	const sql = `
		SELECT id, created_at, start_quarter, end_quarter, house_types
		FROM (
			SELECT id::text AS id, created_at, start_quarter, end_quarter, house_types
			FROM search_history
			ORDER BY created_at DESC, id DESC
			LIMIT $1
		) newest
		ORDER BY created_at, id
	`
	return store.Many(ctx, r.q, scanEntry, sql, limit)
}

func scanEntry(row repokit.Row) (domain.Entry, error) {
	var (
		id    string
		at    time.Time
		e     domain.Entry
		types []string
	)
	if err := row.Scan(&id, &at, &e.StartQuarter, &e.EndQuarter, &types); err != nil {
		return domain.Entry{}, err
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return domain.Entry{}, err
	}
	e.ID = parsed
	e.Date = at.UTC()
	e.HouseTypes = make([]housetype.Code, len(types))
	for i, t := range types {
		e.HouseTypes[i] = housetype.Code(t)
	}
	return e, nil
}
