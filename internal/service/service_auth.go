package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/film-vault/internal/crypto"
	"github.com/MKhiriev/film-vault/internal/logger"
	"github.com/MKhiriev/film-vault/internal/store"
	"github.com/MKhiriev/film-vault/internal/utils"
	"github.com/MKhiriev/film-vault/internal/validators"
	"github.com/MKhiriev/film-vault/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration and credential verification using a
// UserRepository for persistence and a PasswordHasher for credentials,
// and delegates token issuance to a TokenService.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher derives and verifies stored credentials.
	hasher crypto.PasswordHasher

	// tokenService issues the bearer token returned on success.
	tokenService TokenService

	// validator checks registration requests.
	validator validators.Validator

	// dummyCredential is verified against when the e-mail is unknown so that
	// both login failure paths cost one key derivation.
	dummyCredential string

	generateID func() string
	now        func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction. Returns an error if the dummy credential used for
// unknown e-mails cannot be derived.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, tokenService TokenService, logger *logger.Logger) (AuthService, error) {
	dummy, err := hasher.Hash("film-vault-dummy-password")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPasswordHashingFailed, err)
	}

	return &authService{
		userRepository:  userRepository,
		hasher:          hasher,
		tokenService:    tokenService,
		validator:       validators.NewUserValidator(),
		dummyCredential: dummy,
		generateID:      utils.NewUUIDGenerator().Generate,
		now:             time.Now,
		logger:          logger,
	}, nil
}

// normalizeEmail trims and lower-cases an e-mail address. Stored e-mails are
// always normalized, so lookups must be too.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new account and issues its first token.
//
// Returns:
//   - validators.ValidationErrors if any field is invalid.
//   - store.ErrEmailAlreadyExists (wrapped) if the e-mail is taken.
//   - ErrPasswordHashingFailed if the random source fails.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	req.Username = strings.TrimSpace(req.Username)
	req.Email = normalizeEmail(req.Email)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Msg("invalid registration request")
		return models.Token{}, err
	}

	passwordHash, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrPasswordHashingFailed, err)
	}

	now := a.now().UTC()
	user, err := a.userRepository.CreateUser(ctx, models.User{
		UserID:       a.generateID(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.Token{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("user_id", user.UserID).Msg("user registered")
	return a.tokenService.Issue(ctx, user)
}

// Login authenticates an existing user and issues a token.
//
// Empty fields, an unknown e-mail and a wrong password all return
// ErrInvalidCredentials. An unknown e-mail is still verified against a
// dummy credential.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return models.Token{}, ErrInvalidCredentials
	}

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, store.ErrNoUserWasFound) {
			log.Err(err).Msg("user search by email failed")
			return models.Token{}, fmt.Errorf("user search by email failed: %w", err)
		}
		a.hasher.Verify(req.Password, a.dummyCredential)
		log.Debug().Msg("login for unknown email")
		return models.Token{}, ErrInvalidCredentials
	}

	if !a.hasher.Verify(req.Password, user.PasswordHash) {
		log.Debug().Str("user_id", user.UserID).Msg("wrong password")
		return models.Token{}, ErrInvalidCredentials
	}

	return a.tokenService.Issue(ctx, user)
}
