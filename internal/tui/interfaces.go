package tui

import (
	"context"

	"github.com/MKhiriev/go-portal-client/models"
)

// sessionLock is the part of service.SessionLockController the screens use.
type sessionLock interface {
	RequestUnlock(ctx context.Context) (models.ChallengeOutcome, error)
	UnlockWithPassword(password string) error
	SetEnabled(ctx context.Context, enabled bool) error
	Background()
	Foreground()
	Touch()
	State() models.LockState
	Phase() models.LockPhase
}

// serverSettings is the part of service.ServerConfiguration the screens use.
type serverSettings interface {
	Address() string
	Credential() models.Credential
	Endpoint() (models.Endpoint, bool)
	AddressError() error
	IsConfigured() bool
	SetAddress(ctx context.Context, raw string) error
	SetCredential(ctx context.Context, username, password string) error
	TakeWarnings() []error
}

// overviewSource is implemented by workers.OverviewRefresher.
type overviewSource interface {
	Refresh(ctx context.Context) error
	Latest() (models.OverviewSnapshot, bool)
	Clear()
}
