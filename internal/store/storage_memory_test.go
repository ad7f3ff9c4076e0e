package store

import (
	"context"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-portal-client/internal/config"
	"github.com/MKhiriev/go-portal-client/internal/crypto"
	"github.com/MKhiriev/go-portal-client/internal/logger"
)

func TestMemorySecretStore(t *testing.T) {
	s := NewMemorySecretStore()
	ctx := context.Background()

	_, found, err := s.Load(ctx, "lock.enabled")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Save(ctx, "lock.enabled", "false"))
	v, found, err := s.Load(ctx, "lock.enabled")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "false", v)

	require.NoError(t, s.Delete(ctx, "lock.enabled"))
	_, found, _ = s.Load(ctx, "lock.enabled")
	assert.False(t, found)
}

func TestMemoryPreferenceStore(t *testing.T) {
	p := NewMemoryPreferenceStore()
	ctx := context.Background()

	require.NoError(t, p.Set(ctx, "server.address", "localhost:5050"))
	v, found, err := p.Get(ctx, "server.address")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "localhost:5050", v)

	require.NoError(t, p.Delete(ctx, "server.address"))
	_, found, _ = p.Get(ctx, "server.address")
	assert.False(t, found)
}

// ── keyedMutex ───────────────────────────────────────────────────────────────

func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	km := newKeyedMutex()

	var inside, maxInside int32
	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := km.Lock("server.password")
			defer unlock()

			n := atomic.AddInt32(&inside, 1)
			for {
				m := atomic.LoadInt32(&maxInside)
				if n <= m || atomic.CompareAndSwapInt32(&maxInside, m, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&inside, -1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInside)
	assert.Equal(t, 0, km.size(), "entries are released")
}

func TestKeyedMutex_DifferentKeysDoNotBlock(t *testing.T) {
	km := newKeyedMutex()
	unlockA := km.Lock("a")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := km.Lock("b")
		unlockB()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on a different key blocked")
	}
}

// ── ClientStorages ───────────────────────────────────────────────────────────

func TestNewClientStorages_InMemory(t *testing.T) {
	s, err := NewClientStorages(context.Background(),
		config.ClientStorage{DB: config.ClientDB{DSN: ":memory:"}},
		"", crypto.NewKeyChainService(), logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	assert.IsType(t, &memorySecretStore{}, s.Secrets)
	assert.IsType(t, &memoryPreferenceStore{}, s.Preferences)
}

func TestNewClientStorages_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "client.db")

	s, err := NewClientStorages(context.Background(),
		config.ClientStorage{DB: config.ClientDB{DSN: path}},
		"device-secret", crypto.NewKeyChainService(), logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Secrets.Save(context.Background(), "server.username", "operator"))
	v, found, err := s.Secrets.Load(context.Background(), "server.username")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "operator", v)
}

func TestNewClientStorages_MissingDeviceSecret(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.db")

	_, err := NewClientStorages(context.Background(),
		config.ClientStorage{DB: config.ClientDB{DSN: path}},
		"", crypto.NewKeyChainService(), logger.Nop())
	assert.ErrorIs(t, err, ErrDeviceSecretMissing)
}
