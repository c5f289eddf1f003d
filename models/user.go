// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account entity used for authentication and ownership
// of collection entries.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the globally unique identifier of the user (UUIDv7 string).
	// It is assigned by the service at registration time.
	UserID string `json:"id"`

	// Username is the display name of the user.
	Username string `json:"username"`

	// Email is the unique, normalized (trimmed, lower-cased) e-mail address
	// used as the login identifier.
	Email string `json:"email"`

	// PasswordHash stores base64(salt‖derived key). It is never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last profile modification.
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Identity returns the identity claims that a token issued for u carries.
func (u User) Identity() Identity {
	return Identity{
		UserID: u.UserID,
		Name:   u.Username,
		Email:  u.Email,
	}
}
