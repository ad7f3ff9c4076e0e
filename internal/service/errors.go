package service

import "errors"

var (
	ErrBiometricUnavailable = errors.New("biometric authentication is unavailable")
	ErrBiometricFailed      = errors.New("biometric authentication failed")
	ErrBiometricCancelled   = errors.New("biometric authentication cancelled")

	ErrMigrationPartial = errors.New("legacy credential migration incomplete")

	ErrUnlockRequired = errors.New("unlock required")
	ErrSessionLocked  = errors.New("session is locked")
	ErrWrongPassword  = errors.New("wrong password")
)

var (
	ErrNotConfigured      = errors.New("server address is not configured")
	ErrPortalUnauthorized = errors.New("portal rejected the credentials")
	ErrPortalNotFound     = errors.New("portal resource not found")
	ErrPortalUnavailable  = errors.New("portal unavailable")
	ErrBotUnreachable     = errors.New("bot unreachable")
	ErrUnknownBot         = errors.New("unknown bot")
)
