// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-portal-client/internal/adapter"
	"github.com/MKhiriev/go-portal-client/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrNoEndpoint):
		return ErrNotConfigured

	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrForbidden):
		return ErrPortalUnauthorized

	case errors.Is(err, adapter.ErrNotFound):
		if strings.HasPrefix(msg, app.MsgUnknownBot) {
			return ErrUnknownBot
		}
		return ErrPortalNotFound

	case errors.Is(err, adapter.ErrBadGateway):
		if msg == app.MsgBotUnreachable {
			return ErrBotUnreachable
		}
		return ErrPortalUnavailable

	case errors.Is(err, adapter.ErrInternalServerError), errors.Is(err, adapter.ErrTransport):
		return fmt.Errorf("%w: %w", ErrPortalUnavailable, err)
	}

	return err
}

// extractBody extracts the body from a message of the form "bad gateway: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
