// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"errors"
)

var ErrInvalidCredential = errors.New("invalid admin credential")

// Verifier checks a caller-supplied credential before any data access.
// Implementations can range from a fixed shared secret to whatever a
// deployment needs.
type Verifier interface {
	Verify(credential string) error
}

// SharedSecret verifies callers against a single fixed secret.
type SharedSecret struct {
	secret string
}

func NewSharedSecret(secret string) SharedSecret {
	return SharedSecret{secret: secret}
}

// Verify compares the credential in constant time
func (v SharedSecret) Verify(credential string) error {
	if !hmac.Equal([]byte(credential), []byte(v.secret)) {
		return ErrInvalidCredential
	}
	return nil
}
