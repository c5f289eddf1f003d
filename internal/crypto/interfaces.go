// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements server-side credential hashing.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into storable credentials and
// verifies candidate passwords against them.
//
// The credential format is opaque to callers; it embeds everything needed
// for verification (salt and derived key).
type PasswordHasher interface {
	// Hash derives a new salted credential from password. Two calls with
	// the same password return different credentials. The only error is a
	// failure of the system random source.
	Hash(password string) (string, error)

	// Verify reports whether password matches credential. It returns false
	// for empty or malformed input and never panics.
	Verify(password, credential string) bool
}
