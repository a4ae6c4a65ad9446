package errors

import (
	"context"
	stderrs "errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func sqlstate(code string) error { return &pgconn.PgError{Code: code, Message: "pg " + code} }

func TestPersistence(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Persistence(nil, "x"))

	cases := []struct {
		name  string
		err   error
		want  ErrorCode
		state string
	}{
		{"dial failure", stderrs.New("dial tcp: connection refused"), ErrorCodePersistenceUnavailable, ""},
		{"missing table", sqlstate("42P01"), ErrorCodePersistenceUnavailable, "42P01"},
		{"read only", sqlstate("25006"), ErrorCodePersistenceUnavailable, "25006"},
		{"duplicate id", sqlstate("23505"), ErrorCodeConflict, "23505"},
		{"check", fmt.Errorf("insert: %w", sqlstate("23514")), ErrorCodeValidation, "23514"},
		{"bad uuid text", sqlstate("22P02"), ErrorCodeInvalidArgument, "22P02"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := Persistence(c.err, "could not save search")
			e, ok := As(err)
			if assert.True(t, ok) {
				assert.Equal(t, c.want, e.Code())
				assert.Equal(t, "could not save search", e.Message())
				assert.Equal(t, c.state, e.Meta("sqlstate"))
			}
			assert.ErrorIs(t, err, c.err)
		})
	}
}

func TestTransient(t *testing.T) {
	t.Parallel()

	assert.False(t, Transient(nil))
	assert.False(t, Transient(context.Canceled))
	assert.False(t, Transient(fmt.Errorf("q: %w", context.DeadlineExceeded)))
	assert.False(t, Transient(stderrs.New("syntax")))

	assert.True(t, Transient(sqlstate("40001")))
	assert.True(t, Transient(fmt.Errorf("tx: %w", sqlstate("40P01"))))
	assert.True(t, Transient(sqlstate("57P03")))
	assert.False(t, Transient(sqlstate("23505")))

	assert.True(t, Transient(Persistence(&pgconn.ConnectError{Config: &pgconn.Config{}}, "list")))
}
