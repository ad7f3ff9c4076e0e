package service

import (
	"time"

	"github.com/MKhiriev/go-portal-client/internal/config"
	"github.com/MKhiriev/go-portal-client/models"
)

// InitialLockState is the cold start state: locked when the lock is enabled,
// unlocked otherwise.
func InitialLockState(enabled bool, now time.Time) models.LockState {
	if enabled {
		return models.LockState{Enabled: true, Phase: models.LockPhaseLocked}
	}
	return models.LockState{Phase: models.LockPhaseUnlocked, LastActiveAt: now}
}

// ReduceLock applies event to state at time now and returns the new state
// with the side effects the caller must perform. It never performs I/O.
//
// A backgrounded unlocked session locks on the next foreground when at least
// threshold has elapsed since it went to the background. A threshold <= 0
// falls back to config.DefaultInactivityThreshold.
//
// Events that do not apply to the current phase leave the state unchanged.
func ReduceLock(state models.LockState, event models.LockEvent, now time.Time, threshold time.Duration) (models.LockState, []models.LockEffect) {
	if threshold <= 0 {
		threshold = config.DefaultInactivityThreshold
	}

	switch event {
	case models.EventUnlockRequested:
		if state.Phase == models.LockPhaseLocked {
			state.Phase = models.LockPhaseAuthenticating
			return state, []models.LockEffect{models.EffectStartChallenge}
		}

	case models.EventChallengeSucceeded:
		if state.Phase == models.LockPhaseAuthenticating {
			state = unlocked(state, now)
			if state.PendingDisable {
				state.PendingDisable = false
				state.Enabled = false
				return state, []models.LockEffect{models.EffectPersistEnabled}
			}
		}

	case models.EventChallengeFailed, models.EventChallengeCancelled, models.EventChallengeUnavailable:
		if state.Phase == models.LockPhaseAuthenticating {
			state.Phase = models.LockPhaseLocked
			state.PendingDisable = false
		}

	case models.EventFallbackVerified:
		switch state.Phase {
		case models.LockPhaseLocked:
			return unlocked(state, now), nil
		case models.LockPhaseAuthenticating:
			state = unlocked(state, now)
			state.PendingDisable = false
			return state, []models.LockEffect{models.EffectCancelChallenge}
		}

	case models.EventBackgrounded:
		switch state.Phase {
		case models.LockPhaseAuthenticating:
			state.Phase = models.LockPhaseLocked
			state.PendingDisable = false
			return state, []models.LockEffect{models.EffectCancelChallenge}
		case models.LockPhaseUnlocked:
			if !state.IsBackgrounded() {
				state.BackgroundedAt = now
			}
		}

	case models.EventForegrounded:
		if state.Phase == models.LockPhaseUnlocked && state.IsBackgrounded() {
			elapsed := now.Sub(state.BackgroundedAt)
			state.BackgroundedAt = time.Time{}
			if state.Enabled && elapsed >= threshold {
				state.Phase = models.LockPhaseLocked
			}
		}

	case models.EventUserActivity:
		if state.Phase == models.LockPhaseUnlocked && !state.IsBackgrounded() {
			state.LastActiveAt = now
		}

	case models.EventDisableRequested:
		if !state.Enabled {
			break
		}
		switch state.Phase {
		case models.LockPhaseUnlocked:
			state.Enabled = false
			state.BackgroundedAt = time.Time{}
			return state, []models.LockEffect{models.EffectPersistEnabled}
		case models.LockPhaseAuthenticating:
			state.PendingDisable = true
		}

	case models.EventEnableRequested:
		if state.Enabled {
			state.PendingDisable = false
			break
		}
		state.Enabled = true
		// takes effect from the next background/foreground cycle
		state.BackgroundedAt = time.Time{}
		return state, []models.LockEffect{models.EffectPersistEnabled}
	}

	return state, nil
}

func unlocked(state models.LockState, now time.Time) models.LockState {
	state.Phase = models.LockPhaseUnlocked
	state.LastActiveAt = now
	state.BackgroundedAt = time.Time{}
	return state
}
