package service

// Preference store keys. The legacy keys are read only by the credential
// migration and are erased once their value is in the secret store.
const (
	PrefServerAddress = "server.address"

	legacyPrefServerUsername = "server.username"
	legacyPrefServerPassword = "server.password"
)

// Secret store keys.
const (
	SecretServerUsername = "server.username"
	SecretServerPassword = "server.password"
	SecretLockEnabled    = "lock.enabled"
)
