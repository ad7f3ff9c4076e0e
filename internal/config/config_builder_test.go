package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// newTestBuilder returns a builder that does not look at the test binary's
// own command line.
func newTestBuilder(args ...string) *configBuilder {
	b := newConfigBuilder()
	b.args = args
	return b
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newTestBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newTestBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies that non-zero fields of later configs
// override earlier ones while zero fields do not.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newTestBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0", LogPath: "first.log"}},
		&StructuredConfig{App: App{Version: "2.0.0"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, "first.log", cfg.App.LogPath)
}

func TestBuild_RejectsNegativeDurations(t *testing.T) {
	b := newTestBuilder()
	b.configs = append(b.configs, &StructuredConfig{Lock: Lock{InactivityThreshold: -time.Second}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidLockConfigs)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

func TestWithDefaults_FillsDefaults(t *testing.T) {
	cfg, err := newTestBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultInactivityThreshold, cfg.Lock.InactivityThreshold)
	assert.Equal(t, 5*time.Minute, cfg.Lock.InactivityThreshold)
	assert.Equal(t, DefaultRefreshInterval, cfg.Workers.RefreshInterval)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newTestBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_DEVICE_SECRET", "env-secret")
	t.Setenv("LOCK_INACTIVITY_THRESHOLD", "2m")

	b := newTestBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-secret", b.configs[0].App.DeviceSecret)
	assert.Equal(t, 2*time.Minute, b.configs[0].Lock.InactivityThreshold)
}

func TestWithEnv_InvalidDurationSetsError(t *testing.T) {
	t.Setenv("WORKERS_REFRESH_INTERVAL", "not-a-duration")

	b := newTestBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithEnv_OverridesDefaults(t *testing.T) {
	t.Setenv("STORAGE_DB_DATABASE_URI", "/tmp/env.db")

	cfg, err := newTestBuilder().withDefaults().withEnv().build()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/env.db", cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_ReadsArgs(t *testing.T) {
	b := newTestBuilder("-a", "https://portal.example.com", "-lock-after", "1m")
	b.withFlags()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "https://portal.example.com", b.configs[0].Adapter.Address)
	assert.Equal(t, time.Minute, b.configs[0].Lock.InactivityThreshold)
}

func TestWithFlags_UnknownFlagSetsError(t *testing.T) {
	b := newTestBuilder("-no-such-flag")
	b.withFlags()

	assert.Error(t, b.err)
}

func TestWithFlags_OverrideEnv(t *testing.T) {
	t.Setenv("ADAPTER_ADDRESS", "https://env.example.com")

	cfg, err := newTestBuilder("-a", "https://flag.example.com").withEnv().withFlags().build()
	require.NoError(t, err)
	assert.Equal(t, "https://flag.example.com", cfg.Adapter.Address)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newTestBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_LoadsFileFromFlagPath(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"lock":    map[string]any{"biometric_command": "fprintd-verify"},
		"workers": map[string]any{"refresh_interval": "45s"},
	})

	cfg, err := newTestBuilder("-c", path).withDefaults().withFlags().withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, "fprintd-verify", cfg.Lock.BiometricCommand)
	assert.Equal(t, 45*time.Second, cfg.Workers.RefreshInterval)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
}

func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newTestBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/definitely/not/here.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

// ── client projection ─────────────────────────────────────────────────────────

func validClientConfig() *ClientConfig {
	return &ClientConfig{
		App:     ClientApp{DeviceSecret: "s3cret"},
		Adapter: ClientAdapter{RequestTimeout: time.Second},
		Storage: ClientStorage{DB: ClientDB{DSN: "client.db"}},
		Lock:    ClientLock{InactivityThreshold: time.Minute},
		Workers: ClientWorkers{RefreshInterval: time.Second},
	}
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ClientConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(c *ClientConfig) {}},
		{name: "empty dsn", mutate: func(c *ClientConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "missing device secret", mutate: func(c *ClientConfig) { c.App.DeviceSecret = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "in-memory without device secret", mutate: func(c *ClientConfig) {
			c.App.DeviceSecret = ""
			c.Storage.DB.DSN = ":memory:"
		}},
		{name: "zero timeout", mutate: func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero threshold", mutate: func(c *ClientConfig) { c.Lock.InactivityThreshold = 0 }, wantErr: ErrInvalidLockConfigs},
		{name: "zero refresh", mutate: func(c *ClientConfig) { c.Workers.RefreshInterval = 0 }, wantErr: ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewClientConfig_MapsFields(t *testing.T) {
	cfg := newClientConfig(&StructuredConfig{
		App:     App{DeviceSecret: "s", LogPath: "c.log", Version: "1.2.3"},
		Storage: Storage{DB: DB{DSN: "x.db"}},
		Adapter: Adapter{Address: "localhost:5050", RequestTimeout: time.Second},
		Lock:    Lock{InactivityThreshold: time.Minute, BiometricCommand: "verify"},
		Workers: Workers{RefreshInterval: 2 * time.Second},
	})

	assert.Equal(t, "s", cfg.App.DeviceSecret)
	assert.Equal(t, "c.log", cfg.App.LogPath)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "x.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:5050", cfg.Adapter.DefaultAddress)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, time.Minute, cfg.Lock.InactivityThreshold)
	assert.Equal(t, "verify", cfg.Lock.BiometricCommand)
	assert.Equal(t, 2*time.Second, cfg.Workers.RefreshInterval)
}

func TestClientDB_IsInMemory(t *testing.T) {
	assert.True(t, ClientDB{DSN: ":memory:"}.IsInMemory())
	assert.True(t, ClientDB{DSN: "memory"}.IsInMemory())
	assert.False(t, ClientDB{DSN: "client.db"}.IsInMemory())
}
