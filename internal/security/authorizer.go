// Copyright (c) 2025 Estrelas do Campo
// Painel - content service for the club site
// This source code is licensed under the MIT license found in the LICENSE file.

// Package security implements the write gate: every create, update, and
// delete must present the administrator secret. The gate is deliberately a
// narrow interface so the shared-password scheme can later be swapped for
// tokens or hashed credentials without touching the handlers.
package security

import (
	"crypto/subtle"
	"errors"
)

// ErrSecretMissing signals that no secret accompanied a mutating request.
var ErrSecretMissing = errors.New("secret required")

// ErrSecretMismatch signals that the presented secret is wrong.
var ErrSecretMismatch = errors.New("secret mismatch")

// Authorizer decides whether a presented secret authorizes a mutation.
type Authorizer interface {
	// Authorize returns nil when candidate is accepted, ErrSecretMissing
	// when candidate is empty, and ErrSecretMismatch otherwise.
	Authorize(candidate string) error
}

// SharedSecretAuthorizer authorizes against a single configured secret.
// There are no per-user credentials and no expiry.
type SharedSecretAuthorizer struct {
	secret Secret
}

// NewSharedSecretAuthorizer builds an authorizer for the given secret.
func NewSharedSecretAuthorizer(secret Secret) *SharedSecretAuthorizer {
	return &SharedSecretAuthorizer{secret: secret}
}

// Authorize implements Authorizer.
func (a *SharedSecretAuthorizer) Authorize(candidate string) error {
	if candidate == "" {
		return ErrSecretMissing
	}
	if subtle.ConstantTimeCompare([]byte(candidate), a.secret) != 1 {
		return ErrSecretMismatch
	}
	return nil
}
