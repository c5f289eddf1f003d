// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/film-vault/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the key used to store the authenticated caller's
// [models.Identity] in the context. Only the auth middleware writes it.
var IdentityCtxKey = contextKey("identity")

// WithIdentity returns a copy of ctx carrying identity.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, identity)
}

// GetIdentityFromContext retrieves the authenticated identity from the context.
//
// Returns the identity and an ok flag:
//   - ok == true  — a non-empty identity is present
//   - ok == false — value is missing, has an unexpected type or no subject
//
// Example usage:
//
//	identity, ok := utils.GetIdentityFromContext(ctx)
//	if !ok {
//	    // handle unauthenticated request
//	}
func GetIdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(models.Identity)
	if !ok || identity.IsZero() {
		return models.Identity{}, false
	}
	return identity, true
}

// GetUserIDFromContext is a shorthand for the subject of the identity
// stored by [WithIdentity].
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	identity, ok := GetIdentityFromContext(ctx)
	return identity.UserID, ok
}
