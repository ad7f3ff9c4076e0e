// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credential is the username/password pair the portal expects in its HTTP
// Basic authorization header. Either field may be empty, meaning "not
// configured".
//
// Credential values live only in the secure store; they must never be written
// to the preference store or to logs.
type Credential struct {
	Username string `json:"-"`
	Password string `json:"-"`
}

// IsComplete reports whether both fields are set, which is the condition for
// sending an authorization header.
func (c Credential) IsComplete() bool {
	return c.Username != "" && c.Password != ""
}

// IsEmpty reports whether neither field is set.
func (c Credential) IsEmpty() bool {
	return c.Username == "" && c.Password == ""
}
