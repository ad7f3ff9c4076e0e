// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// portal client.
//
// All Msg* constants are message strings the aggregation portal writes into
// its error responses. The service layer matches on them to turn a generic
// HTTP status into a specific business error.
package app

const (
	// MsgBotUnreachable is the portal's 502 message when a proxied bot does
	// not answer.
	MsgBotUnreachable = "Bot unreachable"

	// MsgUnknownBot prefixes the portal's 404 message for an unregistered
	// bot id ("Unknown bot: <id>").
	MsgUnknownBot = "Unknown bot"

	// MsgAuthenticationRequired is the body of the portal's 401 challenge.
	MsgAuthenticationRequired = "Authentication required"
)
