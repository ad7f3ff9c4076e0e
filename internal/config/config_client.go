package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// DeviceSecret is the installation secret of the credential store.
	DeviceSecret string
	// LogPath is the log file; empty means stdout.
	LogPath string
	// Version is reported in the build info banner.
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// DefaultAddress seeds the portal address when the operator has not
	// stored one yet.
	DefaultAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path or ":memory:".
	DSN string
}

// IsInMemory reports whether the client should keep its stores in process
// memory instead of SQLite.
func (db ClientDB) IsInMemory() bool {
	return db.DSN == ":memory:" || db.DSN == "memory"
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientLock holds session lock settings.
type ClientLock struct {
	// InactivityThreshold is the background time after which the session
	// locks on return.
	InactivityThreshold time.Duration
	// BiometricCommand is the owner verification command line.
	BiometricCommand string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the overview refresh job runs.
	RefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains portal transport settings.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Lock contains session lock settings.
	Lock ClientLock
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			DeviceSecret: cfg.App.DeviceSecret,
			LogPath:      cfg.App.LogPath,
			Version:      cfg.App.Version,
		},
		Adapter: ClientAdapter{
			DefaultAddress: cfg.Adapter.Address,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Lock: ClientLock{
			InactivityThreshold: cfg.Lock.InactivityThreshold,
			BiometricCommand:    cfg.Lock.BiometricCommand,
		},
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
	}
}
