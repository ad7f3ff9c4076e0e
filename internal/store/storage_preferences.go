package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-portal-client/internal/logger"
)

// preferenceStorage is the SQLite-backed [PreferenceStore]. Values are stored
// as plain text in the preferences table.
type preferenceStorage struct {
	repo   *kvRepository
	logger *logger.Logger
}

// NewPreferenceStorage constructs a [PreferenceStore] over db.
func NewPreferenceStorage(db *DB, logger *logger.Logger) PreferenceStore {
	logger.Debug().Msg("creating preference storage")
	return &preferenceStorage{
		repo:   newKVRepository(db, preferencesTable),
		logger: logger,
	}
}

func (p *preferenceStorage) Get(ctx context.Context, key string) (string, bool, error) {
	return p.repo.get(ctx, key)
}

func (p *preferenceStorage) Set(ctx context.Context, key, value string) error {
	if err := p.repo.put(ctx, key, value); err != nil {
		return fmt.Errorf("%w: set %s: %w", ErrStoreWriteFailed, key, err)
	}
	return nil
}

func (p *preferenceStorage) Delete(ctx context.Context, key string) error {
	if err := p.repo.remove(ctx, key); err != nil {
		return fmt.Errorf("%w: delete %s: %w", ErrStoreWriteFailed, key, err)
	}
	return nil
}
