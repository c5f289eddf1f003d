// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the immutable set of identity claims extracted from a
// validated bearer token. The UserID field is the only value the server
// uses to scope per-user resources.
type Identity struct {
	UserID string
	Name   string
	Email  string
}

// IsZero reports whether the identity carries no subject.
func (i Identity) IsZero() bool {
	return i.UserID == ""
}

// Claims is the JWT claim set issued by the server.
//
// The subject ("sub") holds the user identifier; Name and Email are
// informational copies of the profile at issuance time.
type Claims struct {
	Name  string `json:"name"`
	Email string `json:"email"`

	jwt.RegisteredClaims
}

// Identity converts the claim set into an [Identity].
func (c Claims) Identity() Identity {
	return Identity{
		UserID: c.Subject,
		Name:   c.Name,
		Email:  c.Email,
	}
}

// Token is a freshly issued bearer token.
type Token struct {
	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"token"`

	// ExpiresAt is the moment after which the token is rejected.
	ExpiresAt time.Time `json:"expires_at"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
