// Package localstore keeps per-owner key/value documents, the server-side
// replacement for the portals' browser local storage.
package localstore

import (
	"context"
	"sync"
)

const (
	KeyPickupRequests = "pickupRequests"
	KeyUser           = "user"
	KeyPartnerToken   = "partner-auth-token"
)

// KV is the raw document store. Get reports ok=false for a missing key.
type KV interface {
	Get(ctx context.Context, owner, key string) ([]byte, bool, error)
	Set(ctx context.Context, owner, key string, value []byte) error
	Delete(ctx context.Context, owner, key string) error
}

type Memory struct {
	mu   sync.RWMutex
	data map[string]map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string]map[string][]byte)}
}

func (m *Memory) Get(_ context.Context, owner, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.data[owner][key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

func (m *Memory) Set(_ context.Context, owner, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	docs, ok := m.data[owner]
	if !ok {
		docs = make(map[string][]byte)
		m.data[owner] = docs
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	docs[key] = stored
	return nil
}

func (m *Memory) Delete(_ context.Context, owner, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data[owner], key)
	return nil
}
