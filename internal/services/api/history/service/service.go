// Package service contains search history workflows
package service

import (
	"context"
	"time"

	"housepricing/internal/core/filter"
	"housepricing/internal/core/quarter"
	"housepricing/internal/modkit/repokit"
	perr "housepricing/internal/platform/errors"
	"housepricing/internal/platform/logger"
	ptime "housepricing/internal/platform/time"
	"housepricing/internal/services/api/history/domain"
	"housepricing/internal/services/api/history/repo"
)

// Service is the public service port
type Service interface{ domain.ServicePort }

// Options control service behavior
type Options struct {
	// StatementTimeout bounds each write transaction; zero means 2s
	StatementTimeout time.Duration
	Clock            ptime.Clock
}

// Svc implements the service port
type Svc struct {
	binder  repokit.Binder[repo.Repo]
	db      repokit.TxRunner
	timeout time.Duration
	clock   ptime.Clock
}

var _ Service = (*Svc)(nil)

// New constructs the service. db may be nil when binder needs no connection,
// as with repo.Memory
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], opt Options) *Svc {
	if binder == nil {
		panic("history.Service requires a non nil Repo binder")
	}
	if opt.StatementTimeout <= 0 {
		opt.StatementTimeout = 2 * time.Second
	}
	return &Svc{
		binder:  binder,
		db:      db,
		timeout: opt.StatementTimeout,
		clock:   ptime.OrSystem(opt.Clock),
	}
}

// List returns the newest entries. It never fails: storage errors are
// logged and an empty list comes back
func (s *Svc) List(ctx context.Context, in domain.ListInput) []domain.Entry {
	out, err := s.binder.Bind(s.db).Recent(ctx, in.Clamp())
	if err != nil {
		err = perr.Persistence(err, "could not read search history")
		logger.C(ctx).Warn().Err(err).Str("code", perr.CodeOf(err).String()).Msg("history list degraded")
		return []domain.Entry{}
	}
	if out == nil {
		out = []domain.Entry{}
	}
	return out
}

// Append validates sel and stores it as a new entry. Stored entries are
// never rewritten or removed
func (s *Svc) Append(ctx context.Context, sel filter.Selection) (domain.Entry, error) {
	if err := sel.Validate(quarter.NewValidator(s.clock)); err != nil {
		return domain.Entry{}, err
	}
	e := domain.NewEntry(sel, s.clock.Now())

	err := s.tx(ctx, func(r repo.Repo) error { return r.Insert(ctx, e) })
	if err != nil {
		evt := logger.C(ctx).Error()
		if perr.Transient(err) {
			evt = logger.C(ctx).Warn()
		}
		err = perr.Persistence(err, "could not save search")
		evt.Err(err).Str("id", e.ID.String()).Msg("history append failed")
		return domain.Entry{}, err
	}
	return e, nil
}

func (s *Svc) tx(ctx context.Context, fn func(repo.Repo) error) error {
	if s.db == nil {
		return fn(s.binder.Bind(nil))
	}
	db := repokit.WithBeginHooks(s.db, repokit.StatementTimeout(s.timeout))
	return repokit.WithTx(ctx, db, func(q repokit.Queryer) error {
		return fn(s.binder.Bind(q))
	})
}
