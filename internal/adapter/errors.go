package adapter

import "errors"

// Transport errors mapped from portal HTTP status codes.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)

var (
	// ErrNoEndpoint is returned before any I/O when the server address is
	// missing or was rejected by the trust policy.
	ErrNoEndpoint = errors.New("portal endpoint is not configured")

	// ErrTransport wraps failures below HTTP: DNS, TLS, refused connections,
	// timeouts.
	ErrTransport = errors.New("portal transport error")

	// ErrInvalidBotID is returned by BotDashboardURL for an empty id.
	ErrInvalidBotID = errors.New("invalid bot id")
)
