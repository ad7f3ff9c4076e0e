// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the aggregation portal.
//
// The primary abstraction is [PortalAdapter], which decouples the service
// layer from HTTP. The package ships a resty implementation
// ([NewHTTPPortalAdapter]) that reads the endpoint and credentials from a
// [ConnectionSource] on every request, so address or credential edits apply
// to the very next call.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401, [ErrBadGateway] for 502).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-portal-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/portal_adapter_mock.go -package=mock

// AuthSource supplies the Authorization header value, if any.
type AuthSource interface {
	AuthHeader() (string, bool)
}

// ConnectionSource is everything the adapter needs to know about the server:
// where it is and how to authenticate.
type ConnectionSource interface {
	AuthSource
	Endpoint() (models.Endpoint, bool)
}

// PortalAdapter defines communication with the aggregation portal.
type PortalAdapter interface {
	// Overview fetches GET /api/overview: per-bot health and P&L plus the
	// portfolio total.
	Overview(ctx context.Context) (models.Overview, error)

	// Ping checks that the portal answers at the configured endpoint with the
	// configured credentials.
	Ping(ctx context.Context) error

	// BotDashboardURL returns the absolute URL of the embedded dashboard of
	// botID. No request is made.
	BotDashboardURL(botID string) (string, error)
}
