// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package biometric provides the platform side of the session lock's
// presence check.
//
// [CommandChallenger] delegates the check to an external program, such as
// fprintd-verify or a desktop polkit helper, and maps its exit status to a
// [models.ChallengeOutcome]:
//
//	0            success
//	1            failure (not recognised)
//	2            unavailable (no sensor or nothing enrolled)
//	130          cancelled (interrupted by the operator)
//
// Any other status counts as failure. A program that cannot be started, or
// an empty command, means the capability is unavailable, which lets the lock
// screen offer the password fallback.
package biometric

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/mattn/go-shellwords"

	"github.com/MKhiriev/go-portal-client/internal/logger"
	"github.com/MKhiriev/go-portal-client/models"
)

// Exit statuses understood by [CommandChallenger].
const (
	ExitSuccess     = 0
	ExitFailure     = 1
	ExitUnavailable = 2
	ExitCancelled   = 130
)

// ErrNoCommand is returned with [models.ChallengeUnavailable] when no
// biometric command is configured.
var ErrNoCommand = errors.New("no biometric command configured")

// CommandChallenger runs a configured program for every challenge.
type CommandChallenger struct {
	argv     []string
	parseErr error
	logger   *logger.Logger
}

// NewCommandChallenger splits command into the program and its arguments
// with POSIX shell quoting rules, so a path with spaces can be quoted.
// Environment variables and backquotes are not expanded. A command that
// cannot be split makes every challenge report the capability unavailable.
func NewCommandChallenger(command string, logger *logger.Logger) *CommandChallenger {
	argv, err := shellwords.Parse(command)
	if err != nil {
		logger.Err(err).Str("func", "NewCommandChallenger").Msg("error parsing biometric command")
		argv = nil
		err = fmt.Errorf("biometric command: %w", err)
	}
	return &CommandChallenger{
		argv:     argv,
		parseErr: err,
		logger:   logger,
	}
}

// Challenge runs the program and waits for it. Cancelling ctx kills the
// program and yields [models.ChallengeCancelled].
func (c *CommandChallenger) Challenge(ctx context.Context) (models.ChallengeOutcome, error) {
	if c.parseErr != nil {
		return models.ChallengeUnavailable, c.parseErr
	}
	if len(c.argv) == 0 {
		return models.ChallengeUnavailable, ErrNoCommand
	}

	path, err := exec.LookPath(c.argv[0])
	if err != nil {
		return models.ChallengeUnavailable, fmt.Errorf("biometric command %q: %w", c.argv[0], err)
	}

	cmd := exec.CommandContext(ctx, path, c.argv[1:]...)
	err = cmd.Run()

	if ctx.Err() != nil {
		return models.ChallengeCancelled, ctx.Err()
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return models.ChallengeSuccess, nil
	case errors.As(err, &exitErr):
		outcome := outcomeForExitCode(exitErr.ExitCode())
		c.logger.Debug().
			Str("func", "CommandChallenger.Challenge").
			Int("exit_code", exitErr.ExitCode()).
			Stringer("outcome", outcome).
			Msg("biometric command finished")
		return outcome, nil
	default:
		return models.ChallengeUnavailable, fmt.Errorf("run biometric command: %w", err)
	}
}

func outcomeForExitCode(code int) models.ChallengeOutcome {
	switch code {
	case ExitSuccess:
		return models.ChallengeSuccess
	case ExitUnavailable:
		return models.ChallengeUnavailable
	case ExitCancelled:
		return models.ChallengeCancelled
	default:
		return models.ChallengeFailure
	}
}
