package repokit

import (
	"context"
	"fmt"
	"time"
)

type guarder interface {
	Guard(context.Context) error
}

// MustGuard runs the store guard under timeout and panics on any error.
// A zero timeout keeps the caller's deadline
func MustGuard(ctx context.Context, st guarder, timeout time.Duration) {
	if st == nil {
		panic("repokit: nil store")
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	if err := st.Guard(ctx); err != nil {
		panic(fmt.Errorf("dependency guard failed: %w", err))
	}
}
