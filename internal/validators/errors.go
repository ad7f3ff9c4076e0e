package validators

import "errors"

var (
	// ErrInvalidAddress is returned by [NormalizeEndpoint] when the raw
	// server address cannot be turned into a usable endpoint. It is never
	// fatal: the raw string is still stored so the operator can keep editing.
	ErrInvalidAddress = errors.New("invalid server address")
)
