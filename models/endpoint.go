// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "net"

// Scheme is the transport scheme of a portal [Endpoint].
type Scheme string

const (
	// SchemeHTTP is only ever produced for hosts on the local network.
	SchemeHTTP Scheme = "http"
	// SchemeHTTPS is the default for every other host.
	SchemeHTTPS Scheme = "https"
)

// Endpoint is the validated view of the server address typed by the operator.
//
// It is never persisted: the raw address string is the source of truth and an
// Endpoint is re-derived from it on every read.
type Endpoint struct {
	// Scheme is either http (local network only) or https.
	Scheme Scheme

	// Host is the host name or IP literal, without the port.
	Host string

	// Port is the explicit port, or empty when the scheme default applies.
	Port string

	// PathPrefix is the path component after the host, without the trailing
	// separator. Empty when the portal is served from the root.
	PathPrefix string

	// Raw is the normalized address string the Endpoint was parsed from.
	Raw string
}

// Origin returns scheme://host[:port], the base URL used for every outbound
// request.
func (e Endpoint) Origin() string {
	host := e.Host
	if e.Port != "" {
		host = net.JoinHostPort(e.Host, e.Port)
	}
	return string(e.Scheme) + "://" + host
}

// BaseURL returns the origin followed by the path prefix.
func (e Endpoint) BaseURL() string {
	return e.Origin() + e.PathPrefix
}

// IsSecure reports whether requests to the endpoint are encrypted.
func (e Endpoint) IsSecure() bool {
	return e.Scheme == SchemeHTTPS
}
