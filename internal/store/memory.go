package store

import (
	"context"
	"sync"
)

// Memory keeps preferences for the lifetime of the process. It backs
// --ephemeral runs.
type Memory struct {
	mu    sync.Mutex
	prefs *Preferences
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) LoadPreferences(_ context.Context, defaults Preferences) (Preferences, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.prefs == nil {
		return defaults, nil
	}
	return *m.prefs, nil
}

func (m *Memory) SavePreferences(_ context.Context, p Preferences) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prefs = &p
	return nil
}
