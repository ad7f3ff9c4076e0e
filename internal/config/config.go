// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the portal
// client. It aggregates all sub-configurations and is populated by merging
// built-in defaults, environment variables, command-line flags and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds installation-level settings: the device secret that unlocks
	// the credential store and the log destination.
	App App `envPrefix:"APP_"`

	// Storage holds the local SQLite settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds settings of the outbound portal connection.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Lock holds session lock settings.
	Lock Lock `envPrefix:"LOCK_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from defaults, environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// DeviceSecret is the installation secret the vault key of the secure
	// credential store is derived from. Must be kept confidential.
	// Env: APP_DEVICE_SECRET
	DeviceSecret string `env:"DEVICE_SECRET"`

	// DeviceSecretFromFile receives the contents of the file named by
	// APP_DEVICE_SECRET_FILE. It only fills DeviceSecret when that is unset
	// and is cleared once read.
	DeviceSecretFromFile string `env:"DEVICE_SECRET_FILE,file" json:"-"`

	// LogPath is the file the client writes its JSON log to. The TUI owns
	// the terminal, so logging to stdout is only a fallback.
	// Env: APP_LOG_PATH
	LogPath string `env:"LOG_PATH"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the local storage backend.
type Storage struct {
	// DB holds the SQLite connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local database.
type DB struct {
	// DSN is the SQLite file path (e.g. "portal-client.db"). The special
	// value ":memory:" keeps everything in process memory.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds settings of the portal HTTP adapter.
type Adapter struct {
	// Address is the portal address used when none was stored by the
	// operator yet (e.g. "https://portal.example.com").
	// Env: ADAPTER_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single outbound request
	// (e.g. "10s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Lock holds session lock settings.
type Lock struct {
	// InactivityThreshold is how long the client may stay in the background
	// before it locks again on return.
	// Env: LOCK_INACTIVITY_THRESHOLD
	InactivityThreshold time.Duration `env:"INACTIVITY_THRESHOLD"`

	// BiometricCommand is the external command that performs the owner
	// verification (e.g. "fprintd-verify"). Empty means no biometric
	// capability is available.
	// Env: LOCK_BIOMETRIC_COMMAND
	BiometricCommand string `env:"BIOMETRIC_COMMAND"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// RefreshInterval is the period of the overview refresh job.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// Defaults applied before any other source.
const (
	DefaultDSN                 = "portal-client.db"
	DefaultRequestTimeout      = 10 * time.Second
	DefaultInactivityThreshold = 5 * time.Minute
	DefaultRefreshInterval     = 30 * time.Second
)

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{DB: DB{DSN: DefaultDSN}},
		Adapter: Adapter{RequestTimeout: DefaultRequestTimeout},
		Lock:    Lock{InactivityThreshold: DefaultInactivityThreshold},
		Workers: Workers{RefreshInterval: DefaultRefreshInterval},
	}
}
