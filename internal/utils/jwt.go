package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/film-vault/models"
	"github.com/golang-jwt/jwt/v5"
)

// JWTParams groups the server-held parameters used to sign and validate
// bearer tokens.
type JWTParams struct {
	// Issuer is the expected and issued "iss" claim.
	Issuer string
	// Audience is the expected and issued "aud" claim.
	Audience string
	// SignKey is the HMAC-SHA256 secret.
	SignKey string
	// Duration is the validity window of an issued token.
	Duration time.Duration
	// Now is the clock used for "iat"/"exp" and for expiry checks.
	// time.Now is used when nil.
	Now func() time.Time
}

func (p JWTParams) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token for identity.
//
// The token includes the following claims:
//   - Issuer    (iss): params.Issuer
//   - Audience  (aud): params.Audience
//   - Subject   (sub): identity.UserID
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus params.Duration
//   - name, email: identity.Name and identity.Email
//
// Returns an error if the issuer, audience, sign key or subject is empty,
// the duration is not positive, or signing fails.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(params, user.Identity())
func GenerateJWTToken(params JWTParams, identity models.Identity) (models.Token, error) {
	if params.Issuer == "" || params.Audience == "" || params.SignKey == "" || params.Duration <= 0 {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}
	if identity.UserID == "" {
		return models.Token{}, errors.New("empty subject for JWT Token")
	}

	now := params.now()
	expiresAt := jwt.NewNumericDate(now.Add(params.Duration))
	claims := &models.Claims{
		Name:  identity.Name,
		Email: identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    params.Issuer,
			Audience:  jwt.ClaimStrings{params.Audience},
			Subject:   identity.UserID,
			ExpiresAt: expiresAt,
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(params.SignKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{SignedString: tokenString, ExpiresAt: expiresAt.Time}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts
// its identity claims.
//
// Validation includes:
//   - Signing method must be HS256
//   - Signature verification using params.SignKey
//   - Issuer (iss) and audience (aud) checks
//   - Expiration (exp) presence and check, with zero leeway
//   - Subject (sub) claim presence
//
// Errors wrap the jwt sentinel errors (jwt.ErrTokenExpired,
// jwt.ErrTokenMalformed, jwt.ErrTokenSignatureInvalid, ...) so that callers
// can tell the reasons apart with errors.Is.
func ValidateAndParseJWTToken(tokenString string, params JWTParams) (models.Identity, error) {
	claims := &models.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(params.SignKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(params.Issuer),
		jwt.WithAudience(params.Audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(params.now),
	)
	if err != nil {
		return models.Identity{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return models.Identity{}, fmt.Errorf("empty subject error: %w", jwt.ErrTokenInvalidSubject)
	}

	return claims.Identity(), nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
