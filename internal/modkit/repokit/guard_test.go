package repokit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeGuard struct {
	err      error
	deadline time.Time
	hasDL    bool
}

func (f *fakeGuard) Guard(ctx context.Context) error {
	f.deadline, f.hasDL = ctx.Deadline()
	return f.err
}

func TestMustGuard_AppliesTimeout(t *testing.T) {
	g := &fakeGuard{}
	start := time.Now()
	assert.NotPanics(t, func() { MustGuard(context.Background(), g, 2*time.Second) })
	assert.True(t, g.hasDL)
	assert.WithinDuration(t, start.Add(2*time.Second), g.deadline, 500*time.Millisecond)
}

func TestMustGuard_ZeroTimeoutKeepsContext(t *testing.T) {
	g := &fakeGuard{}
	MustGuard(context.Background(), g, 0)
	assert.False(t, g.hasDL)
}

func TestMustGuard_PanicsOnError(t *testing.T) {
	g := &fakeGuard{err: errors.New("postgres ping failed")}
	assert.PanicsWithError(t, "dependency guard failed: postgres ping failed", func() {
		MustGuard(context.Background(), g, time.Second)
	})
}

func TestMustGuard_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { MustGuard(context.Background(), nil, 0) })
}
