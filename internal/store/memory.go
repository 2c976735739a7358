package store

import (
	"context"
	"sync"
)

// MemoryFlagRepo is an in-process FlagRepo for tests and for running without
// a database file.
type MemoryFlagRepo struct {
	mu    sync.Mutex
	flags map[string]bool
}

// NewMemoryFlagRepo creates an empty MemoryFlagRepo.
func NewMemoryFlagRepo() *MemoryFlagRepo {
	return &MemoryFlagRepo{flags: make(map[string]bool)}
}

func (m *MemoryFlagRepo) Get(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.flags[key], nil
}

func (m *MemoryFlagRepo) Set(_ context.Context, key string, value bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flags[key] = value
	return nil
}

func (m *MemoryFlagRepo) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flags = make(map[string]bool)
	return nil
}
