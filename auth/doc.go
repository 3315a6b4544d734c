// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides credential verification for admin operations.

# Verifier

Handlers depend on the Verifier interface rather than a concrete check,
so stronger schemes can replace the default without touching the store:

	type Verifier interface {
		Verify(credential string) error
	}

# Shared Secret

The default implementation compares the caller's credential against a
single fixed secret using hmac.Equal for constant-time comparison:

	verifier := auth.NewSharedSecret(cfg.AdminSecret)
	if err := verifier.Verify(r.Header.Get("X-Admin-Secret")); err != nil {
		// reject before any query executes
	}

A mismatch returns ErrInvalidCredential, which handlers map to 401
before touching the database.
*/
package auth
