// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/MKhiriev/go-portal-client/internal/crypto"
	"github.com/MKhiriev/go-portal-client/internal/logger"
)

// saltName is the secrets_meta row holding the per-installation salt.
const saltName = "vault.salt"

// secretStorage is the SQLite-backed [SecretStore].
//
// Every value is sealed with AES-256-GCM under a vault key derived from the
// device secret and the installation salt, then stored base64-encoded in the
// secrets table. The vault key never leaves process memory. Operations on the
// same key are serialized so a read-modify-write by one caller cannot
// interleave with another caller's write.
type secretStorage struct {
	repo     *kvRepository
	keyChain crypto.KeyChainService
	vaultKey []byte
	locks    *keyedMutex
	logger   *logger.Logger
}

// NewSecretStorage opens the secret store over db. On first use it generates
// and stores the installation salt; afterwards the stored salt is reused so
// the same device secret yields the same vault key.
//
// Returns [ErrDeviceSecretMissing] when deviceSecret is empty.
func NewSecretStorage(ctx context.Context, db *DB, keyChain crypto.KeyChainService, deviceSecret string, logger *logger.Logger) (SecretStore, error) {
	if deviceSecret == "" {
		return nil, ErrDeviceSecretMissing
	}

	salt, err := loadOrCreateSalt(ctx, newKVRepository(db, secretsMetaTable), keyChain)
	if err != nil {
		logger.Err(err).Str("func", "NewSecretStorage").Msg("error loading vault salt")
		return nil, err
	}

	logger.Debug().Str("func", "NewSecretStorage").Msg("secret storage opened")

	return &secretStorage{
		repo:     newKVRepository(db, secretsTable),
		keyChain: keyChain,
		vaultKey: keyChain.DeriveVaultKey(deviceSecret, salt),
		locks:    newKeyedMutex(),
		logger:   logger,
	}, nil
}

func loadOrCreateSalt(ctx context.Context, meta *kvRepository, keyChain crypto.KeyChainService) ([]byte, error) {
	encoded, found, err := meta.get(ctx, saltName)
	if err != nil {
		return nil, fmt.Errorf("read vault salt: %w", err)
	}
	if found {
		salt, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return nil, fmt.Errorf("decode vault salt: %w", err)
		}
		return salt, nil
	}

	salt, err := keyChain.GenerateSalt()
	if err != nil {
		return nil, err
	}
	if err := meta.put(ctx, saltName, base64.StdEncoding.EncodeToString(salt)); err != nil {
		return nil, fmt.Errorf("store vault salt: %w", err)
	}
	return salt, nil
}

func (s *secretStorage) Save(ctx context.Context, key, value string) error {
	unlock := s.locks.Lock(key)
	defer unlock()

	blob, err := s.keyChain.Seal([]byte(value), s.vaultKey, []byte(key))
	if err != nil {
		return fmt.Errorf("%w: seal %s: %w", ErrStoreWriteFailed, key, err)
	}

	if err := s.repo.put(ctx, key, base64.StdEncoding.EncodeToString(blob)); err != nil {
		return fmt.Errorf("%w: save %s: %w", ErrStoreWriteFailed, key, err)
	}
	return nil
}

func (s *secretStorage) Load(ctx context.Context, key string) (string, bool, error) {
	unlock := s.locks.Lock(key)
	defer unlock()

	encoded, found, err := s.repo.get(ctx, key)
	if err != nil || !found {
		return "", false, err
	}

	blob, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", false, fmt.Errorf("%w: %s: %w", ErrSecretUnreadable, key, err)
	}

	plain, err := s.keyChain.Open(blob, s.vaultKey, []byte(key))
	if err != nil {
		logger.FromContext(ctx).Warn().
			Str("func", "secretStorage.Load").
			Str("key", key).
			Msg("stored secret cannot be opened with the current device secret")
		return "", false, fmt.Errorf("%w: %s: %w", ErrSecretUnreadable, key, err)
	}

	return string(plain), true, nil
}

func (s *secretStorage) Delete(ctx context.Context, key string) error {
	unlock := s.locks.Lock(key)
	defer unlock()

	if err := s.repo.remove(ctx, key); err != nil {
		return fmt.Errorf("%w: delete %s: %w", ErrStoreWriteFailed, key, err)
	}
	return nil
}
