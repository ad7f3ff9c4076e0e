// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// LockPhase is the current phase of the session lock.
type LockPhase int

const (
	// LockPhaseLocked hides every screen except the unlock prompt.
	LockPhaseLocked LockPhase = iota
	// LockPhaseAuthenticating means a biometric challenge is in flight.
	LockPhaseAuthenticating
	// LockPhaseUnlocked gives the operator full access.
	LockPhaseUnlocked
)

// String returns a human-readable phase name.
func (p LockPhase) String() string {
	switch p {
	case LockPhaseLocked:
		return "locked"
	case LockPhaseAuthenticating:
		return "authenticating"
	case LockPhaseUnlocked:
		return "unlocked"
	default:
		return "unknown"
	}
}

// LockState is the full state of the session lock.
//
// Only Enabled is persisted. Every cold start begins in [LockPhaseLocked] when
// Enabled is true, [LockPhaseUnlocked] otherwise.
type LockState struct {
	// Enabled controls whether the lock is armed at all.
	Enabled bool

	// Phase is the current phase.
	Phase LockPhase

	// LastActiveAt is refreshed on every unlock and on every observed user
	// interaction while unlocked.
	LastActiveAt time.Time

	// BackgroundedAt is set when the app goes to the background while
	// unlocked and cleared on the next foreground. Zero while in foreground.
	BackgroundedAt time.Time

	// PendingDisable records a disable request that arrived while a challenge
	// was in flight. It is honoured only if that challenge succeeds.
	PendingDisable bool
}

// IsBackgrounded reports whether a background-entry timestamp is recorded.
func (s LockState) IsBackgrounded() bool {
	return !s.BackgroundedAt.IsZero()
}

// LockEvent is an input to the session lock reducer.
type LockEvent int

const (
	EventUnlockRequested LockEvent = iota
	EventChallengeSucceeded
	EventChallengeFailed
	EventChallengeCancelled
	EventChallengeUnavailable
	EventFallbackVerified
	EventBackgrounded
	EventForegrounded
	EventUserActivity
	EventDisableRequested
	EventEnableRequested
)

var lockEventNames = map[LockEvent]string{
	EventUnlockRequested:      "unlock_requested",
	EventChallengeSucceeded:   "challenge_succeeded",
	EventChallengeFailed:      "challenge_failed",
	EventChallengeCancelled:   "challenge_cancelled",
	EventChallengeUnavailable: "challenge_unavailable",
	EventFallbackVerified:     "fallback_verified",
	EventBackgrounded:         "backgrounded",
	EventForegrounded:         "foregrounded",
	EventUserActivity:         "user_activity",
	EventDisableRequested:     "disable_requested",
	EventEnableRequested:      "enable_requested",
}

func (e LockEvent) String() string {
	if name, ok := lockEventNames[e]; ok {
		return name
	}
	return "unknown"
}

// LockEffect is a side effect the reducer asks its driver to perform.
type LockEffect int

const (
	// EffectStartChallenge asks the driver to invoke the biometric capability.
	EffectStartChallenge LockEffect = iota
	// EffectCancelChallenge asks the driver to abort the in-flight challenge.
	EffectCancelChallenge
	// EffectPersistEnabled asks the driver to write LockState.Enabled to the
	// secure store.
	EffectPersistEnabled
)

// ChallengeOutcome is the result reported by the biometric capability.
type ChallengeOutcome int

const (
	ChallengeSuccess ChallengeOutcome = iota
	ChallengeFailure
	ChallengeUnavailable
	ChallengeCancelled
)

func (o ChallengeOutcome) String() string {
	switch o {
	case ChallengeSuccess:
		return "success"
	case ChallengeFailure:
		return "failure"
	case ChallengeUnavailable:
		return "unavailable"
	case ChallengeCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}
