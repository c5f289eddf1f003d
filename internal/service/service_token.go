package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/film-vault/internal/config"
	"github.com/MKhiriev/film-vault/internal/logger"
	"github.com/MKhiriev/film-vault/internal/utils"
	"github.com/MKhiriev/film-vault/models"
	"github.com/golang-jwt/jwt/v5"
)

// tokenService is the HS256 JWT implementation of TokenService.
// All parameters are fixed at construction; nothing reads the environment
// per request.
type tokenService struct {
	params utils.JWTParams

	logger *logger.Logger
}

// NewTokenService constructs a TokenService from the auth configuration.
// Returns [ErrTokenSignKeyIsNotDefined] if the signing secret is empty.
func NewTokenService(cfg config.Auth, logger *logger.Logger) (TokenService, error) {
	return newTokenService(cfg, time.Now, logger)
}

func newTokenService(cfg config.Auth, now func() time.Time, logger *logger.Logger) (*tokenService, error) {
	if cfg.TokenSignKey == "" {
		return nil, ErrTokenSignKeyIsNotDefined
	}

	return &tokenService{
		params: utils.JWTParams{
			Issuer:   cfg.TokenIssuer,
			Audience: cfg.TokenAudience,
			SignKey:  cfg.TokenSignKey,
			Duration: cfg.TokenDuration,
			Now:      now,
		},
		logger: logger,
	}, nil
}

// Issue implements TokenService.
func (t *tokenService) Issue(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(t.params, user.Identity())
	if err != nil {
		t.logger.Err(err).Str("user_id", user.UserID).Msg("token signing failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Validate implements TokenService. The concrete reason is wrapped next to
// ErrTokenIsExpiredOrInvalid so callers can log it and still answer with a
// single generic error.
func (t *tokenService) Validate(ctx context.Context, tokenString string) (models.Identity, error) {
	identity, err := utils.ValidateAndParseJWTToken(tokenString, t.params)
	if err != nil {
		return models.Identity{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, classifyTokenError(err))
	}

	return identity, nil
}

func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %w", ErrTokenIsExpired, err)
	case errors.Is(err, jwt.ErrTokenMalformed):
		return fmt.Errorf("%w: %w", ErrTokenIsMalformed, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return fmt.Errorf("%w: %w", ErrTokenSignatureIsInvalid, err)
	default:
		return fmt.Errorf("%w: %w", ErrTokenClaimsAreInvalid, err)
	}
}
