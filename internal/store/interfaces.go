package store

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SecretStore is the secure credential store. Values are confidential to
// this installation: they are sealed at rest and unreadable without the
// device secret. Absence of a key is not an error.
type SecretStore interface {
	// Save durably stores value under key, replacing any previous value.
	// Failures wrap [ErrStoreWriteFailed].
	Save(ctx context.Context, key, value string) error
	// Load returns the value stored under key and whether it was present.
	Load(ctx context.Context, key string) (string, bool, error)
	// Delete removes key. Deleting a missing key succeeds.
	Delete(ctx context.Context, key string) error
}

// PreferenceStore holds non-secret settings in plain text.
type PreferenceStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	// Set failures wrap [ErrStoreWriteFailed].
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
