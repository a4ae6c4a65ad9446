package repo

import (
	"context"
	"sync"

	"housepricing/internal/modkit/repokit"
	"housepricing/internal/services/api/history/domain"
)

// Memory keeps history in process. It backs the service when Postgres is
// disabled and has the same ordering contract as PG
type Memory struct {
	mu      sync.RWMutex
	entries []domain.Entry
}

// NewMemory returns a binder that always yields the same in-process store
func NewMemory() *Memory { return &Memory{} }

// Bind ignores q; the memory store has no connection
func (m *Memory) Bind(repokit.Queryer) Repo { return m }

// Insert appends e
func (m *Memory) Insert(_ context.Context, e domain.Entry) error {
	m.mu.Lock()
	m.entries = append(m.entries, e)
	m.mu.Unlock()
	return nil
}

// Recent returns a copy of the newest limit entries, oldest first
func (m *Memory) Recent(_ context.Context, limit int) ([]domain.Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	from := 0
	if limit > 0 && len(m.entries) > limit {
		from = len(m.entries) - limit
	}
	return append([]domain.Entry(nil), m.entries[from:]...), nil
}
