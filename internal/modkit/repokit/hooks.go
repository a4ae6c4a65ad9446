package repokit

import (
	"context"
	"fmt"
	"time"
)

// BeginHook runs first inside every transaction, on the tx bound Queryer
type BeginHook func(ctx context.Context, q Queryer) error

// WithBeginHooks returns inner with hooks run, in order, at the start of each
// Tx. A failing hook aborts the transaction. Plain statements are untouched
func WithBeginHooks(inner TxRunner, hooks ...BeginHook) TxRunner {
	if len(hooks) == 0 {
		return inner
	}
	return hooked{TxRunner: inner, hooks: hooks}
}

type hooked struct {
	TxRunner
	hooks []BeginHook
}

func (h hooked) Tx(ctx context.Context, fn func(q Queryer) error) error {
	return h.TxRunner.Tx(ctx, func(q Queryer) error {
		for _, hook := range h.hooks {
			if err := hook(ctx, q); err != nil {
				return err
			}
		}
		return fn(q)
	})
}

// StatementTimeout caps each statement of the transaction at d, rounded up
// to a whole millisecond
func StatementTimeout(d time.Duration) BeginHook {
	sql := fmt.Sprintf("SET LOCAL statement_timeout = %d", max((d+time.Millisecond-1)/time.Millisecond, 1))
	return func(ctx context.Context, q Queryer) error {
		_, err := q.Exec(ctx, sql)
		return err
	}
}
