// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AuthResponse is returned by the register and login endpoints.
type AuthResponse struct {
	Token string `json:"token"`
}

// ProfileResponse is returned after a successful profile update. It
// carries a fresh token because the previous one holds stale claims.
type ProfileResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// ErrorResponse is the JSON body of every non-2xx API response.
// Errors maps request field names to a validation message and is only
// present for validation failures.
type ErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}
