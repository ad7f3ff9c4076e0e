// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/MKhiriev/go-portal-client/internal/logger"
	"github.com/MKhiriev/go-portal-client/internal/store"
	"github.com/MKhiriev/go-portal-client/internal/utils"
	"github.com/MKhiriev/go-portal-client/models"
)

// SessionLockController drives [ReduceLock]: it feeds lifecycle events into
// the reducer under a mutex and performs the effects the reducer asks for.
//
// The biometric challenge is the only blocking step. While it runs the phase
// is Authenticating and every further unlock request joins it instead of
// starting a second one.
type SessionLockController struct {
	secrets    store.SecretStore
	challenger BiometricChallenger
	verifier   PasswordVerifier
	clock      utils.Clock
	threshold  time.Duration
	logger     *logger.Logger

	mu       sync.Mutex
	state    models.LockState
	inflight *challenge
}

// challenge is one in-flight biometric prompt shared by every caller that
// asked to unlock while it was running.
type challenge struct {
	done   chan struct{}
	cancel context.CancelFunc

	// set before done is closed
	outcome    models.ChallengeOutcome
	persistErr error
}

// NewSessionLockController reads the persisted enabled flag and returns a
// controller in its cold start phase. A missing or unreadable flag counts as
// enabled.
func NewSessionLockController(ctx context.Context, secrets store.SecretStore, challenger BiometricChallenger,
	verifier PasswordVerifier, clock utils.Clock, threshold time.Duration, logger *logger.Logger,
) *SessionLockController {
	enabled := true
	raw, ok, err := secrets.Load(ctx, SecretLockEnabled)
	switch {
	case err != nil:
		logger.Err(err).Str("func", "NewSessionLockController").Msg("error loading lock flag, keeping the lock enabled")
	case ok:
		if parsed, parseErr := strconv.ParseBool(raw); parseErr == nil {
			enabled = parsed
		}
	}

	return &SessionLockController{
		secrets:    secrets,
		challenger: challenger,
		verifier:   verifier,
		clock:      clock,
		threshold:  threshold,
		logger:     logger,
		state:      InitialLockState(enabled, clock.Now()),
	}
}

// State returns a snapshot of the lock state.
func (c *SessionLockController) State() models.LockState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Phase implements [LockPhaseReader].
func (c *SessionLockController) Phase() models.LockPhase {
	return c.State().Phase
}

// apply must be called with mu held.
func (c *SessionLockController) apply(event models.LockEvent) []models.LockEffect {
	from := c.state.Phase
	next, effects := ReduceLock(c.state, event, c.clock.Now(), c.threshold)
	c.state = next

	if from != next.Phase {
		c.logger.Info().
			Str("func", "SessionLockController.apply").
			Stringer("event", event).
			Stringer("from", from).
			Stringer("to", next.Phase).
			Msg("lock phase changed")
	}
	return effects
}

// RequestUnlock starts a biometric challenge, or joins the one already in
// flight, and waits for its outcome. It returns nil on success and
// [ErrBiometricFailed], [ErrBiometricUnavailable] or [ErrBiometricCancelled]
// otherwise; the phase is then Locked again. When the session is already
// unlocked it returns success without prompting.
//
// Cancelling ctx stops the wait but not the shared challenge.
func (c *SessionLockController) RequestUnlock(ctx context.Context) (models.ChallengeOutcome, error) {
	c.mu.Lock()
	ch := c.inflight
	if ch == nil {
		effects := c.apply(models.EventUnlockRequested)
		if !slices.Contains(effects, models.EffectStartChallenge) {
			phase := c.state.Phase
			c.mu.Unlock()
			if phase == models.LockPhaseUnlocked {
				return models.ChallengeSuccess, nil
			}
			return models.ChallengeFailure, ErrBiometricFailed
		}
		ch = c.startChallenge(ctx)
	}
	c.mu.Unlock()

	select {
	case <-ch.done:
		return ch.outcome, outcomeError(ch.outcome)
	case <-ctx.Done():
		return models.ChallengeCancelled, ctx.Err()
	}
}

// startChallenge must be called with mu held.
func (c *SessionLockController) startChallenge(ctx context.Context) *challenge {
	challengeCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	ch := &challenge{done: make(chan struct{}), cancel: cancel}
	c.inflight = ch

	go c.runChallenge(challengeCtx, ch)
	return ch
}

func (c *SessionLockController) runChallenge(ctx context.Context, ch *challenge) {
	defer close(ch.done)
	defer ch.cancel()

	outcome, err := c.challenger.Challenge(ctx)
	switch {
	case ctx.Err() != nil:
		outcome = models.ChallengeCancelled
	case err != nil && outcome == models.ChallengeSuccess:
		outcome = models.ChallengeFailure
	}
	if err != nil {
		c.logger.Warn().Err(err).Str("func", "SessionLockController.runChallenge").Stringer("outcome", outcome).Msg("biometric challenge reported an error")
	}

	c.mu.Lock()
	var effects []models.LockEffect
	if c.inflight == ch {
		c.inflight = nil
		effects = c.apply(outcomeEvent(outcome))
	}
	enabled := c.state.Enabled
	c.mu.Unlock()

	if slices.Contains(effects, models.EffectPersistEnabled) {
		ch.persistErr = c.persistEnabled(ctx, enabled)
	}
	ch.outcome = outcome
}

// UnlockWithPassword is the fallback unlock used when the biometric
// capability is unavailable. It cancels an in-flight challenge on success.
func (c *SessionLockController) UnlockWithPassword(password string) error {
	if !c.verifier.VerifyPassword(password) {
		return ErrWrongPassword
	}

	c.mu.Lock()
	effects := c.apply(models.EventFallbackVerified)
	c.cancelInflight(effects)
	c.mu.Unlock()
	return nil
}

// Background records that the client lost focus. An in-flight challenge is
// cancelled and the session goes back to Locked.
func (c *SessionLockController) Background() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelInflight(c.apply(models.EventBackgrounded))
}

// Foreground records that the client regained focus and locks the session
// when it was in the background for at least the inactivity threshold.
func (c *SessionLockController) Foreground() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.apply(models.EventForegrounded)
}

// Touch records operator activity while unlocked.
func (c *SessionLockController) Touch() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.apply(models.EventUserActivity)
}

// cancelInflight must be called with mu held.
func (c *SessionLockController) cancelInflight(effects []models.LockEffect) {
	if c.inflight != nil && slices.Contains(effects, models.EffectCancelChallenge) {
		c.inflight.cancel()
		c.inflight = nil
	}
}

// SetEnabled turns the lock on or off and persists the flag.
//
// Disabling a locked session returns [ErrUnlockRequired]. Disabling while a
// challenge is in flight waits for it and takes effect only if it succeeds;
// otherwise [ErrUnlockRequired] is returned. When persisting fails the new
// value still applies for this process and an error wrapping
// store.ErrStoreWriteFailed is returned.
func (c *SessionLockController) SetEnabled(ctx context.Context, enabled bool) error {
	c.mu.Lock()

	if !enabled && c.state.Enabled && c.state.Phase == models.LockPhaseLocked {
		c.mu.Unlock()
		return ErrUnlockRequired
	}

	event := models.EventEnableRequested
	if !enabled {
		event = models.EventDisableRequested
	}
	effects := c.apply(event)

	if !enabled && c.state.PendingDisable && c.inflight != nil {
		ch := c.inflight
		c.mu.Unlock()
		return c.awaitPendingDisable(ctx, ch)
	}
	c.mu.Unlock()

	if slices.Contains(effects, models.EffectPersistEnabled) {
		return c.persistEnabled(ctx, enabled)
	}
	return nil
}

func (c *SessionLockController) awaitPendingDisable(ctx context.Context, ch *challenge) error {
	select {
	case <-ch.done:
	case <-ctx.Done():
		return ctx.Err()
	}

	if ch.outcome != models.ChallengeSuccess {
		return ErrUnlockRequired
	}
	if c.State().Enabled {
		// re-enabled while the challenge was running
		return ErrUnlockRequired
	}
	return ch.persistErr
}

func (c *SessionLockController) persistEnabled(ctx context.Context, enabled bool) error {
	if err := c.secrets.Save(ctx, SecretLockEnabled, strconv.FormatBool(enabled)); err != nil {
		err = asWriteFailure(err)
		c.logger.Err(err).Str("func", "SessionLockController.persistEnabled").Bool("enabled", enabled).Msg("error saving lock flag")
		return err
	}
	return nil
}

func outcomeEvent(outcome models.ChallengeOutcome) models.LockEvent {
	switch outcome {
	case models.ChallengeSuccess:
		return models.EventChallengeSucceeded
	case models.ChallengeUnavailable:
		return models.EventChallengeUnavailable
	case models.ChallengeCancelled:
		return models.EventChallengeCancelled
	default:
		return models.EventChallengeFailed
	}
}

func outcomeError(outcome models.ChallengeOutcome) error {
	switch outcome {
	case models.ChallengeSuccess:
		return nil
	case models.ChallengeUnavailable:
		return ErrBiometricUnavailable
	case models.ChallengeCancelled:
		return ErrBiometricCancelled
	default:
		return ErrBiometricFailed
	}
}
