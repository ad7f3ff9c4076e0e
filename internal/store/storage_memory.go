package store

import (
	"context"
	"sync"
)

// memoryKV backs both in-memory stores. It is used for ":memory:" runs and
// as a fake in tests.
type memoryKV struct {
	mu     sync.RWMutex
	values map[string]string
}

func newMemoryKV() *memoryKV {
	return &memoryKV{values: make(map[string]string)}
}

func (m *memoryKV) get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *memoryKV) put(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
}

func (m *memoryKV) remove(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
}

type memorySecretStore struct{ kv *memoryKV }

// NewMemorySecretStore returns a [SecretStore] that lives only in process
// memory.
func NewMemorySecretStore() SecretStore {
	return &memorySecretStore{kv: newMemoryKV()}
}

func (m *memorySecretStore) Save(_ context.Context, key, value string) error {
	m.kv.put(key, value)
	return nil
}

func (m *memorySecretStore) Load(_ context.Context, key string) (string, bool, error) {
	v, ok := m.kv.get(key)
	return v, ok, nil
}

func (m *memorySecretStore) Delete(_ context.Context, key string) error {
	m.kv.remove(key)
	return nil
}

type memoryPreferenceStore struct{ kv *memoryKV }

// NewMemoryPreferenceStore returns a [PreferenceStore] that lives only in
// process memory.
func NewMemoryPreferenceStore() PreferenceStore {
	return &memoryPreferenceStore{kv: newMemoryKV()}
}

func (m *memoryPreferenceStore) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m.kv.get(key)
	return v, ok, nil
}

func (m *memoryPreferenceStore) Set(_ context.Context, key, value string) error {
	m.kv.put(key, value)
	return nil
}

func (m *memoryPreferenceStore) Delete(_ context.Context, key string) error {
	m.kv.remove(key)
	return nil
}
