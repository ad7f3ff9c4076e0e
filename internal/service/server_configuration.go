// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-portal-client/internal/logger"
	"github.com/MKhiriev/go-portal-client/internal/store"
	"github.com/MKhiriev/go-portal-client/internal/validators"
	"github.com/MKhiriev/go-portal-client/models"
)

// ServerConfiguration owns the operator's portal address and credential.
//
// Every setter updates the in-memory copy first and then writes it through to
// durable storage before returning: the address to the preference store, the
// credential fields to the secret store. When a write fails the in-memory
// value stays in effect for the rest of the process and the failure is both
// returned and queued for [ServerConfiguration.TakeWarnings].
//
// The endpoint is never stored; it is derived from the raw address with
// [validators.NormalizeEndpoint] whenever the address changes.
//
// A ServerConfiguration is safe for concurrent use. It implements
// adapter.ConnectionSource and [PasswordVerifier].
type ServerConfiguration struct {
	prefs   store.PreferenceStore
	secrets store.SecretStore
	logger  *logger.Logger

	// writeMu serializes setters so that durable writes land in call order.
	writeMu sync.Mutex

	mu         sync.RWMutex
	address    string
	endpoint   models.Endpoint
	hasEP      bool
	addressErr error
	credential models.Credential
	warnings   []error

	migrateOnce sync.Once
}

// NewServerConfiguration loads the stored address, migrates legacy plaintext
// credentials into the secret store and loads the credential.
//
// Load and migration failures never abort construction: the affected values
// start empty (or, for an unmigrated legacy field, keep the plaintext value)
// and the failure is queued as a warning.
func NewServerConfiguration(ctx context.Context, prefs store.PreferenceStore, secrets store.SecretStore, logger *logger.Logger) *ServerConfiguration {
	c := &ServerConfiguration{
		prefs:   prefs,
		secrets: secrets,
		logger:  logger,
	}

	address, _, err := prefs.Get(ctx, PrefServerAddress)
	if err != nil {
		c.logger.Err(err).Str("func", "NewServerConfiguration").Msg("error loading server address")
		c.warn(fmt.Errorf("load server address: %w", err))
	}
	c.applyAddress(address)

	leftover := c.RunMigrationOnce(ctx)

	c.credential.Username = c.loadSecret(ctx, SecretServerUsername, leftover.Username)
	c.credential.Password = c.loadSecret(ctx, SecretServerPassword, leftover.Password)

	return c
}

// RunMigrationOnce moves legacy plaintext credentials from the preference
// store into the secret store. Only the first call per instance does any
// work. It returns the legacy values that could not be moved, so the current
// session can still use them.
func (c *ServerConfiguration) RunMigrationOnce(ctx context.Context) models.Credential {
	var leftover models.Credential
	c.migrateOnce.Do(func() {
		var err error
		leftover, err = migrateLegacyCredentials(ctx, c.prefs, c.secrets)
		if err != nil {
			c.logger.Warn().Err(err).Str("func", "ServerConfiguration.RunMigrationOnce").Msg("legacy credentials were not fully migrated")
			c.warn(err)
		}
	})
	return leftover
}

// migrateLegacyCredentials copies each legacy field to the secret store and
// then erases the plaintext copy. A field whose copy fails stays in
// plaintext and is reported in the returned credential and in an
// [ErrMigrationPartial] error; the next launch retries it.
//
// An existing secret store value wins over a legacy one, so repeated runs
// leave the stores in the same state as a single run.
func migrateLegacyCredentials(ctx context.Context, prefs store.PreferenceStore, secrets store.SecretStore) (models.Credential, error) {
	var (
		leftover models.Credential
		errs     []error
	)

	fields := []struct {
		legacyKey string
		secretKey string
		target    *string
	}{
		{legacyPrefServerUsername, SecretServerUsername, &leftover.Username},
		{legacyPrefServerPassword, SecretServerPassword, &leftover.Password},
	}

	for _, f := range fields {
		value, ok, err := prefs.Get(ctx, f.legacyKey)
		if err != nil {
			errs = append(errs, fmt.Errorf("read legacy %s: %w", f.legacyKey, err))
			continue
		}
		if !ok {
			continue
		}

		if value != "" {
			_, secured, err := secrets.Load(ctx, f.secretKey)
			if err != nil {
				*f.target = value
				errs = append(errs, fmt.Errorf("check %s: %w", f.secretKey, err))
				continue
			}
			if !secured {
				if err = secrets.Save(ctx, f.secretKey, value); err != nil {
					*f.target = value
					errs = append(errs, fmt.Errorf("save %s: %w", f.secretKey, err))
					continue
				}
			}
		}

		if err = prefs.Delete(ctx, f.legacyKey); err != nil {
			errs = append(errs, fmt.Errorf("erase legacy %s: %w", f.legacyKey, err))
		}
	}

	if len(errs) > 0 {
		return leftover, fmt.Errorf("%w: %w", ErrMigrationPartial, errors.Join(errs...))
	}
	return leftover, nil
}

func (c *ServerConfiguration) loadSecret(ctx context.Context, key, fallback string) string {
	value, ok, err := c.secrets.Load(ctx, key)
	if err != nil {
		c.logger.Err(err).Str("func", "ServerConfiguration.loadSecret").Str("key", key).Msg("error loading secret")
		c.warn(fmt.Errorf("load %s: %w", key, err))
		return fallback
	}
	if !ok {
		return fallback
	}
	return value
}

// SetAddress stores raw as the server address. raw is kept even when it does
// not normalize to an endpoint; the rejection only shows as an absent
// [ServerConfiguration.Endpoint] and a non-nil
// [ServerConfiguration.AddressError].
func (c *ServerConfiguration) SetAddress(ctx context.Context, raw string) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.mu.Lock()
	c.applyAddress(raw)
	c.mu.Unlock()

	if err := c.prefs.Set(ctx, PrefServerAddress, raw); err != nil {
		err = asWriteFailure(err)
		c.logger.Err(err).Str("func", "ServerConfiguration.SetAddress").Msg("error saving server address")
		c.warn(err)
		return err
	}
	return nil
}

// applyAddress must be called with mu held (or before c is shared).
func (c *ServerConfiguration) applyAddress(raw string) {
	c.address = raw
	endpoint, err := validators.NormalizeEndpoint(raw)
	c.endpoint, c.hasEP, c.addressErr = endpoint, err == nil, err
}

// SetCredential replaces the credential. Only fields whose value changed are
// written. An emptied field is deleted from the secret store.
func (c *ServerConfiguration) SetCredential(ctx context.Context, username, password string) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.mu.Lock()
	previous := c.credential
	c.credential = models.Credential{Username: username, Password: password}
	c.mu.Unlock()

	var errs []error
	if username != previous.Username {
		if err := c.writeSecret(ctx, SecretServerUsername, username); err != nil {
			errs = append(errs, err)
		}
	}
	if password != previous.Password {
		if err := c.writeSecret(ctx, SecretServerPassword, password); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) == 0 {
		return nil
	}
	err := errors.Join(errs...)
	c.logger.Err(err).Str("func", "ServerConfiguration.SetCredential").Msg("error saving credential")
	c.warn(err)
	return err
}

func (c *ServerConfiguration) writeSecret(ctx context.Context, key, value string) error {
	var err error
	if value == "" {
		err = c.secrets.Delete(ctx, key)
	} else {
		err = c.secrets.Save(ctx, key, value)
	}
	return asWriteFailure(err)
}

// AuthHeader returns "Basic base64(username:password)" when both credential
// fields are set.
func (c *ServerConfiguration) AuthHeader() (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.credential.IsComplete() {
		return "", false
	}
	token := base64.StdEncoding.EncodeToString([]byte(c.credential.Username + ":" + c.credential.Password))
	return "Basic " + token, true
}

// Endpoint returns the endpoint derived from the current address.
func (c *ServerConfiguration) Endpoint() (models.Endpoint, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.endpoint, c.hasEP
}

// IsConfigured reports whether the address normalizes to an endpoint.
func (c *ServerConfiguration) IsConfigured() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hasEP
}

// Address returns the raw address as typed by the operator.
func (c *ServerConfiguration) Address() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.address
}

// AddressError returns why the current address has no endpoint, wrapping
// validators.ErrInvalidAddress, or nil when the endpoint is present.
func (c *ServerConfiguration) AddressError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.addressErr
}

// Credential returns a copy of the current credential.
func (c *ServerConfiguration) Credential() models.Credential {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.credential
}

// VerifyPassword implements [PasswordVerifier]. The comparison runs in
// constant time. With no password configured only an empty entry matches.
func (c *ServerConfiguration) VerifyPassword(entry string) bool {
	c.mu.RLock()
	password := c.credential.Password
	c.mu.RUnlock()

	return subtle.ConstantTimeCompare([]byte(entry), []byte(password)) == 1
}

// TakeWarnings returns the queued non-fatal failures and clears the queue.
// Each warning is therefore shown once.
func (c *ServerConfiguration) TakeWarnings() []error {
	c.mu.Lock()
	defer c.mu.Unlock()

	warnings := c.warnings
	c.warnings = nil
	return warnings
}

func (c *ServerConfiguration) warn(err error) {
	c.mu.Lock()
	c.warnings = append(c.warnings, err)
	c.mu.Unlock()
}

// asWriteFailure makes sure a store error matches store.ErrStoreWriteFailed.
func asWriteFailure(err error) error {
	if err == nil || errors.Is(err, store.ErrStoreWriteFailed) {
		return err
	}
	return fmt.Errorf("%w: %w", store.ErrStoreWriteFailed, err)
}
