package repository

import (
	"context"
	"sync"
)

// MemoryRepo keeps the document in process memory. Used for tests and for
// STORE_BACKEND=memory; nothing survives a restart.
type MemoryRepo struct {
	mu      sync.RWMutex
	data    []byte
	present bool
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (m *MemoryRepo) Load(_ context.Context) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.present {
		return nil, ErrNotFound
	}
	out := make([]byte, len(m.data))
	copy(out, m.data)
	return out, nil
}

func (m *MemoryRepo) Replace(_ context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = append(m.data[:0:0], data...)
	m.present = true
	return nil
}

func (m *MemoryRepo) Ping(_ context.Context) error { return nil }
