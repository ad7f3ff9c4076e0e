package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-portal-client/internal/config"
	"github.com/MKhiriev/go-portal-client/internal/crypto"
	"github.com/MKhiriev/go-portal-client/internal/logger"
)

// ClientStorages groups the client-side stores into a single value that can
// be passed to the service layer.
type ClientStorages struct {
	// Preferences holds non-secret settings such as the portal address.
	Preferences PreferenceStore
	// Secrets is the secure credential store.
	Secrets SecretStore

	db *DB
}

// NewClientStorages initialises the client storage layer. It performs the
// following steps:
//  1. For an in-memory DSN, returns memory-backed stores and stops.
//  2. Opens an SQLite connection to cfg.DB.DSN, creating the file if it does
//     not yet exist.
//  3. Runs pending schema migrations via [DB.Migrate].
//  4. Opens the secret store with the device secret.
//
// Returns an error if any step fails; a partially opened database is closed.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, deviceSecret string, keyChain crypto.KeyChainService, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	if cfg.DB.IsInMemory() {
		logger.Warn().Msg("using in-memory storages; nothing will be persisted")
		return &ClientStorages{
			Preferences: NewMemoryPreferenceStore(),
			Secrets:     NewMemorySecretStore(),
		}, nil
	}

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	secrets, err := NewSecretStorage(ctx, db, keyChain, deviceSecret, logger)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("secret storage: %w", err)
	}

	return &ClientStorages{
		Preferences: NewPreferenceStorage(db, logger),
		Secrets:     secrets,
		db:          db,
	}, nil
}

// Close releases the database connection, if any.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
