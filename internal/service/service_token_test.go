// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/film-vault/internal/config"
	"github.com/MKhiriev/film-vault/internal/logger"
	"github.com/MKhiriev/film-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserID = "01890a5d-ac96-774b-bcce-b302099a8057"

func testAuthConfig() config.Auth {
	return config.Auth{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "FilmVault",
		TokenAudience: "FilmVaultUsers",
		TokenDuration: 30 * time.Minute,
	}
}

func testUser() models.User {
	return models.User{UserID: testUserID, Username: "alice", Email: "alice@x.com"}
}

func TestNewTokenService_EmptySignKey(t *testing.T) {
	cfg := testAuthConfig()
	cfg.TokenSignKey = ""

	svc, err := NewTokenService(cfg, logger.Nop())

	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrTokenSignKeyIsNotDefined)
}

func TestTokenService_IssueAndValidate(t *testing.T) {
	svc, err := NewTokenService(testAuthConfig(), logger.Nop())
	require.NoError(t, err)

	token, err := svc.Issue(context.Background(), testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	identity, err := svc.Validate(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, testUser().Identity(), identity)
}

func TestTokenService_Issue_EmptySubject(t *testing.T) {
	var buf bytes.Buffer
	svc, err := NewTokenService(testAuthConfig(), logger.NewLogger("test", logger.WithOutput(&buf)))
	require.NoError(t, err)

	_, err = svc.Issue(context.Background(), models.User{Username: "ghost"})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
	assert.Contains(t, buf.String(), "token signing failed")
	assert.NotContains(t, buf.String(), testAuthConfig().TokenSignKey)
}

func TestTokenService_Expiry(t *testing.T) {
	issuedAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	now := issuedAt
	clock := func() time.Time { return now }

	svc, err := newTokenService(testAuthConfig(), clock, logger.Nop())
	require.NoError(t, err)

	token, err := svc.Issue(context.Background(), testUser())
	require.NoError(t, err)
	assert.Equal(t, issuedAt.Add(30*time.Minute), token.ExpiresAt.UTC())

	now = issuedAt.Add(30*time.Minute - time.Second)
	_, err = svc.Validate(context.Background(), token.SignedString)
	assert.NoError(t, err)

	now = issuedAt.Add(30*time.Minute + time.Second)
	_, err = svc.Validate(context.Background(), token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
	assert.ErrorIs(t, err, ErrTokenIsExpired)
}

func TestTokenService_ValidateReasons(t *testing.T) {
	svc, err := NewTokenService(testAuthConfig(), logger.Nop())
	require.NoError(t, err)

	otherKey := testAuthConfig()
	otherKey.TokenSignKey = "another-key"
	otherKeySvc, err := NewTokenService(otherKey, logger.Nop())
	require.NoError(t, err)
	foreign, err := otherKeySvc.Issue(context.Background(), testUser())
	require.NoError(t, err)

	otherIssuer := testAuthConfig()
	otherIssuer.TokenIssuer = "SomeoneElse"
	otherIssuerSvc, err := NewTokenService(otherIssuer, logger.Nop())
	require.NoError(t, err)
	wrongIssuer, err := otherIssuerSvc.Issue(context.Background(), testUser())
	require.NoError(t, err)

	otherAudience := testAuthConfig()
	otherAudience.TokenAudience = "SomeoneElsesUsers"
	otherAudienceSvc, err := NewTokenService(otherAudience, logger.Nop())
	require.NoError(t, err)
	wrongAudience, err := otherAudienceSvc.Issue(context.Background(), testUser())
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		reason error
	}{
		{name: "wrong key", token: foreign.SignedString, reason: ErrTokenSignatureIsInvalid},
		{name: "garbage", token: "not-a-token", reason: ErrTokenIsMalformed},
		{name: "empty", token: "", reason: ErrTokenIsMalformed},
		{name: "wrong issuer", token: wrongIssuer.SignedString, reason: ErrTokenClaimsAreInvalid},
		{name: "wrong audience", token: wrongAudience.SignedString, reason: ErrTokenClaimsAreInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := svc.Validate(context.Background(), tt.token)
			assert.True(t, identity.IsZero())
			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
			assert.ErrorIs(t, err, tt.reason)
		})
	}
}
