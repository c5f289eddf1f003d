// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// SaltLength is the number of random salt bytes prepended to every
	// stored credential.
	SaltLength = 16

	// KeyLength is the length of the PBKDF2-derived key in bytes.
	KeyLength = 32

	// Iterations is the PBKDF2-HMAC-SHA256 iteration count.
	Iterations = 10_000
)

// ErrRandomSource is returned by [PasswordHasher.Hash] when salt generation
// fails.
var ErrRandomSource = errors.New("random source failure")

// pbkdf2Hasher is the PBKDF2-HMAC-SHA256 implementation of [PasswordHasher].
// Credentials are stored as base64(salt‖key).
type pbkdf2Hasher struct {
	// random is the salt source. Always crypto/rand outside of tests.
	random io.Reader

	iterations int
	saltLength int
	keyLength  int
}

// NewPasswordHasher constructs a [PasswordHasher] using PBKDF2-HMAC-SHA256
// with a 16-byte salt, 10,000 iterations and a 32-byte derived key.
func NewPasswordHasher() PasswordHasher {
	return &pbkdf2Hasher{
		random:     rand.Reader,
		iterations: Iterations,
		saltLength: SaltLength,
		keyLength:  KeyLength,
	}
}

// Hash implements [PasswordHasher].
func (h *pbkdf2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, h.saltLength)
	if _, err := io.ReadFull(h.random, salt); err != nil {
		return "", fmt.Errorf("%w: %w", ErrRandomSource, err)
	}

	key := h.derive(password, salt)

	credential := make([]byte, 0, len(salt)+len(key))
	credential = append(credential, salt...)
	credential = append(credential, key...)

	return base64.StdEncoding.EncodeToString(credential), nil
}

// Verify implements [PasswordHasher]. The derived keys are compared in
// constant time.
func (h *pbkdf2Hasher) Verify(password, credential string) bool {
	if password == "" || credential == "" {
		return false
	}

	raw, err := base64.StdEncoding.DecodeString(credential)
	if err != nil || len(raw) != h.saltLength+h.keyLength {
		return false
	}

	salt, storedKey := raw[:h.saltLength], raw[h.saltLength:]
	candidateKey := h.derive(password, salt)

	return subtle.ConstantTimeCompare(candidateKey, storedKey) == 1
}

func (h *pbkdf2Hasher) derive(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, h.iterations, h.keyLength, sha256.New)
}
