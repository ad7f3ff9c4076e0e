package store

import "errors"

// Sentinel errors returned by the stores to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrStoreWriteFailed is returned when a value could not be durably
	// written or deleted. The caller keeps its in-memory copy authoritative.
	ErrStoreWriteFailed = errors.New("store write failed")

	// ErrSecretUnreadable is returned by [SecretStore.Load] when a stored
	// value cannot be opened with the current vault key, usually because the
	// device secret changed.
	ErrSecretUnreadable = errors.New("secret cannot be decrypted")

	// ErrDeviceSecretMissing is returned when the on-disk secret store is
	// opened without a device secret.
	ErrDeviceSecretMissing = errors.New("device secret is not configured")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")
)
