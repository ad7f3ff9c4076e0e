// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators turns operator input into validated values.
//
// The main entry point is [NormalizeEndpoint], the endpoint trust policy: it
// decides which scheme a server address may use before any credential is sent
// to it. Plain HTTP is only allowed for hosts on the local network; everything
// else is forced to HTTPS.
package validators

import (
	"fmt"
	"net"
	"net/url"
	"slices"
	"strings"

	"github.com/MKhiriev/go-portal-client/models"
)

const (
	insecurePrefix = "http://"
	securePrefix   = "https://"
)

// loopbackHosts are the host names that allow the insecure scheme on their
// own. Hosts under privateLANPrefix are allowed too.
var loopbackHosts = []string{
	"localhost",
	"127.0.0.1",
}

const privateLANPrefix = "192.168."

// NormalizeEndpoint validates raw and returns the endpoint the client is
// allowed to talk to.
//
// Steps:
//  1. Surrounding whitespace is removed and the scheme, if any, is split
//     off. Scheme matching is case-insensitive.
//  2. Exactly one trailing "/" is removed from the rest. An empty rest is
//     rejected.
//  3. The address is classified as local when its host is localhost or
//     127.0.0.1, or is an IPv4 literal in 192.168.0.0/16.
//  4. An explicit http:// is kept for local hosts and rewritten to https://
//     otherwise; https:// is kept; a missing scheme becomes https://.
//     Everything after "://" keeps the operator's casing byte for byte.
//  5. The result is parsed as a URL and must have a host.
//
// Returns [ErrInvalidAddress] (wrapped) for empty input or an unparsable URL.
func NormalizeEndpoint(raw string) (models.Endpoint, error) {
	s := strings.TrimSpace(raw)
	lower := strings.ToLower(s)

	scheme, rest := securePrefix, s
	switch {
	case strings.HasPrefix(lower, insecurePrefix):
		rest = s[len(insecurePrefix):]
		if isLocal(strings.ToLower(rest)) {
			scheme = insecurePrefix
		}
	case strings.HasPrefix(lower, securePrefix):
		rest = s[len(securePrefix):]
	}

	rest = strings.TrimSuffix(rest, "/")
	if rest == "" {
		return models.Endpoint{}, fmt.Errorf("%w: empty address", ErrInvalidAddress)
	}
	s = scheme + rest

	u, err := url.Parse(s)
	if err != nil {
		return models.Endpoint{}, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	if u.Hostname() == "" {
		return models.Endpoint{}, fmt.Errorf("%w: missing host", ErrInvalidAddress)
	}

	return models.Endpoint{
		Scheme:     models.Scheme(u.Scheme),
		Host:       u.Hostname(),
		Port:       u.Port(),
		PathPrefix: strings.TrimSuffix(u.Path, "/"),
		Raw:        s,
	}, nil
}

// IsLocalAddress reports whether raw points at the local network, using the
// same rules as [NormalizeEndpoint].
func IsLocalAddress(raw string) bool {
	lower := strings.ToLower(strings.TrimSpace(raw))
	if i := strings.Index(lower, "://"); i >= 0 {
		lower = lower[i+3:]
	}
	return isLocal(lower)
}

// isLocal expects the lowercased address without its scheme. Only the host
// is inspected, so neither a path like /192.168.1.1 nor a host such as
// localhost.example.com downgrades a public server.
func isLocal(rest string) bool {
	authority := rest
	if i := strings.IndexAny(authority, "/?#"); i >= 0 {
		authority = authority[:i]
	}
	if i := strings.LastIndex(authority, "@"); i >= 0 {
		authority = authority[i+1:]
	}

	host := authority
	if h, _, err := net.SplitHostPort(authority); err == nil {
		host = h
	}

	if slices.Contains(loopbackHosts, host) {
		return true
	}
	return strings.HasPrefix(host, privateLANPrefix) && net.ParseIP(host) != nil
}
