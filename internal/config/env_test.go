// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_DEVICE_SECRET": "device_secret",
		"APP_LOG_PATH":      "/var/log/client.log",
		"APP_VERSION":       "1.0.0",

		"ADAPTER_ADDRESS":         "portal.example.com",
		"ADAPTER_REQUEST_TIMEOUT": "30s",

		"LOCK_INACTIVITY_THRESHOLD": "10m",
		"LOCK_BIOMETRIC_COMMAND":    "fprintd-verify",

		"WORKERS_REFRESH_INTERVAL": "1m",

		// Storage has nested prefixes: STORAGE_ + DB_
		"STORAGE_DB_DATABASE_URI": "/var/lib/client.db",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "device_secret", cfg.App.DeviceSecret)
	assert.Equal(t, "/var/log/client.log", cfg.App.LogPath)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "portal.example.com", cfg.Adapter.Address)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 10*time.Minute, cfg.Lock.InactivityThreshold)
	assert.Equal(t, "fprintd-verify", cfg.Lock.BiometricCommand)
	assert.Equal(t, time.Minute, cfg.Workers.RefreshInterval)
	assert.Equal(t, "/var/lib/client.db", cfg.Storage.DB.DSN)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_DEVICE_SECRET": "only_secret",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "only_secret", cfg.App.DeviceSecret)
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Zero(t, cfg.Lock.InactivityThreshold)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ADAPTER_REQUEST_TIMEOUT": "forever",
	})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_DeviceSecretFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secret")
	require.NoError(t, os.WriteFile(path, []byte("from_file\n"), 0o600))

	t.Run("file used when variable is unset", func(t *testing.T) {
		setEnvVars(t, map[string]string{"APP_DEVICE_SECRET_FILE": path})

		cfg := &StructuredConfig{}
		require.NoError(t, parseEnv(cfg))

		assert.Equal(t, "from_file", cfg.App.DeviceSecret)
		assert.Empty(t, cfg.App.DeviceSecretFromFile)
	})

	t.Run("variable wins over file", func(t *testing.T) {
		setEnvVars(t, map[string]string{
			"APP_DEVICE_SECRET":      "from_env",
			"APP_DEVICE_SECRET_FILE": path,
		})

		cfg := &StructuredConfig{}
		require.NoError(t, parseEnv(cfg))

		assert.Equal(t, "from_env", cfg.App.DeviceSecret)
	})

	t.Run("missing file", func(t *testing.T) {
		setEnvVars(t, map[string]string{"APP_DEVICE_SECRET_FILE": filepath.Join(t.TempDir(), "nope")})

		err := parseEnv(&StructuredConfig{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error getting env configs")
	})
}
