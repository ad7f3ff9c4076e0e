package service

import (
	"context"

	"github.com/MKhiriev/go-portal-client/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// BiometricChallenger is the platform capability that verifies the operator's
// presence. Challenge blocks until the operator answers or ctx is cancelled.
//
// A non-nil error carries diagnostics only; the returned outcome decides the
// lock transition. An implementation must report [models.ChallengeCancelled]
// when ctx is cancelled.
type BiometricChallenger interface {
	Challenge(ctx context.Context) (models.ChallengeOutcome, error)
}

// PasswordVerifier checks a password typed on the lock screen against the
// stored portal password. It backs the fallback unlock offered when the
// biometric capability is unavailable.
type PasswordVerifier interface {
	VerifyPassword(entry string) bool
}

// LockPhaseReader exposes the current phase of the session lock.
type LockPhaseReader interface {
	Phase() models.LockPhase
}

// ConfigurationReader reports whether a usable endpoint is configured.
type ConfigurationReader interface {
	IsConfigured() bool
}

// ClientPortalService defines the client-side contract for reading data from
// the aggregation portal. Every call is refused with [ErrSessionLocked] unless
// the session is unlocked, and with [ErrNotConfigured] unless a valid
// endpoint is set.
type ClientPortalService interface {
	// Overview returns the aggregated per-bot health and P&L.
	Overview(ctx context.Context) (models.Overview, error)

	// Ping checks that the portal answers with the configured credentials.
	Ping(ctx context.Context) error

	// BotDashboardURL returns the URL of a bot's embedded dashboard.
	BotDashboardURL(botID string) (string, error)
}
