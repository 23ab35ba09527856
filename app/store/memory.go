package store

import (
	"context"
	"sync"
)

// Memory is an in-memory preference store. Content is lost on restart.
type Memory struct {
	mu    sync.RWMutex
	prefs map[string]string
}

// NewMemory makes an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{prefs: make(map[string]string)}
}

// Get retrieves the value for the given key.
// Returns ErrNotFound if the key does not exist.
func (m *Memory) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.prefs[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

// Set stores the value for the given key.
func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prefs[key] = value
	return nil
}

// Close does nothing, satisfies the same contract as the database store.
func (m *Memory) Close() error { return nil }
