package repokit

import (
	"context"
	"errors"
	"testing"
	"time"

	"housepricing/internal/platform/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recDB records statements and runs Tx bodies against itself
type recDB struct {
	stmts   []string
	txs     int
	execErr error
	txErr   error
}

func (d *recDB) Exec(_ context.Context, sql string, _ ...any) (store.CommandTag, error) {
	d.stmts = append(d.stmts, sql)
	return nil, d.execErr
}

func (d *recDB) Query(_ context.Context, sql string, _ ...any) (store.Rows, error) {
	d.stmts = append(d.stmts, sql)
	return nil, nil
}

func (d *recDB) QueryRow(_ context.Context, sql string, _ ...any) store.Row {
	d.stmts = append(d.stmts, sql)
	return nil
}

func (d *recDB) Tx(_ context.Context, fn func(Queryer) error) error {
	if d.txErr != nil {
		return d.txErr
	}
	d.txs++
	return fn(d)
}

func TestWithTx(t *testing.T) {
	db := &recDB{}
	err := WithTx(context.Background(), db, func(q Queryer) error {
		_, err := q.Exec(context.Background(), "INSERT INTO search_history DEFAULT VALUES")
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 1, db.txs)
	assert.Equal(t, []string{"INSERT INTO search_history DEFAULT VALUES"}, db.stmts)

	boom := errors.New("boom")
	assert.ErrorIs(t, WithTx(context.Background(), db, func(Queryer) error { return boom }), boom)
	assert.ErrorIs(t, WithTx(context.Background(), &recDB{txErr: boom}, func(Queryer) error { return nil }), boom)
}

func TestWithBeginHooks_RunInOrderBeforeFn(t *testing.T) {
	db := &recDB{}
	hook := func(sql string) BeginHook {
		return func(ctx context.Context, q Queryer) error {
			_, err := q.Exec(ctx, sql)
			return err
		}
	}
	tx := WithBeginHooks(db, hook("SET LOCAL a"), hook("SET LOCAL b"))

	err := tx.Tx(context.Background(), func(q Queryer) error {
		_, err := q.Exec(context.Background(), "SELECT 1")
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"SET LOCAL a", "SET LOCAL b", "SELECT 1"}, db.stmts)
}

func TestWithBeginHooks_HookErrorSkipsFn(t *testing.T) {
	db := &recDB{execErr: errors.New("denied")}
	ran := false
	err := WithBeginHooks(db, StatementTimeout(time.Second)).Tx(context.Background(), func(Queryer) error {
		ran = true
		return nil
	})
	assert.EqualError(t, err, "denied")
	assert.False(t, ran)
}

func TestWithBeginHooks_DelegatesOutsideTx(t *testing.T) {
	db := &recDB{}
	tx := WithBeginHooks(db, StatementTimeout(time.Second))
	_, _ = tx.Exec(context.Background(), "e")
	_, _ = tx.Query(context.Background(), "q")
	_ = tx.QueryRow(context.Background(), "r")
	assert.Equal(t, []string{"e", "q", "r"}, db.stmts, "hooks only run inside Tx")
	assert.Zero(t, db.txs)
}

func TestStatementTimeout(t *testing.T) {
	for d, want := range map[time.Duration]string{
		2 * time.Second:         "SET LOCAL statement_timeout = 2000",
		250 * time.Millisecond:  "SET LOCAL statement_timeout = 250",
		1500 * time.Microsecond: "SET LOCAL statement_timeout = 2",
		time.Microsecond:        "SET LOCAL statement_timeout = 1",
		0:                       "SET LOCAL statement_timeout = 1",
	} {
		db := &recDB{}
		require.NoError(t, StatementTimeout(d)(context.Background(), db))
		assert.Equal(t, []string{want}, db.stmts)
	}
}

func TestWithBeginHooks_NoHooksIsInner(t *testing.T) {
	db := &recDB{}
	assert.Same(t, db, WithBeginHooks(db))
}
