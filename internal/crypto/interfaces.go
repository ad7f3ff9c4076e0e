// Package crypto seals secret-store values at rest.
//
// Scheme:
//
//	Salt     = GenerateSalt()                          (once per installation)
//	VaultKey = DeriveVaultKey(deviceSecret, Salt)      (Argon2id, every start)
//	Blob     = Seal(value, VaultKey, name)             (AES-256-GCM, nonce ‖ ciphertext, name as AAD)
//	value    = Open(Blob, VaultKey, name)
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService owns all client-side cryptography of the secure credential
// store. It knows nothing about SQL, the network or the lock state.
type KeyChainService interface {
	// GenerateSalt returns 16 random bytes. The salt is not secret; it is
	// stored next to the sealed values so the same device secret always
	// yields the same vault key on this installation.
	GenerateSalt() ([]byte, error)

	// DeriveVaultKey derives the 256-bit vault key from the installation
	// secret and salt with Argon2id. The key only ever lives in memory.
	DeriveVaultKey(deviceSecret string, salt []byte) []byte

	// Seal encrypts plaintext with key using AES-GCM and returns
	// nonce ‖ ciphertext. label binds the blob to the name it is stored
	// under.
	Seal(plaintext, key, label []byte) ([]byte, error)

	// Open reverses Seal. It fails if the blob was tampered with or was
	// sealed under a different key or label.
	Open(blob, key, label []byte) ([]byte, error)
}
