package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/film-vault/internal/crypto"
	"github.com/MKhiriev/film-vault/internal/logger"
	"github.com/MKhiriev/film-vault/internal/store"
	"github.com/MKhiriev/film-vault/internal/validators"
	"github.com/MKhiriev/film-vault/models"
)

type userService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	validator      validators.Validator

	now func() time.Time

	logger *logger.Logger
}

// NewUserService constructs a UserService. Every method is scoped to the
// user id the caller passes in, which handlers take from the token.
func NewUserService(userRepository store.UserRepository, hasher crypto.PasswordHasher, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validators.NewUserValidator(),
		now:            time.Now,
		logger:         logger,
	}
}

// GetProfile returns the user or store.ErrNoUserWasFound.
func (u *userService) GetProfile(ctx context.Context, userID string) (models.User, error) {
	user, err := u.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("get profile: %w", err)
	}
	return user, nil
}

// UpdateProfile overwrites username and e-mail and, when req.Password is
// not empty, the password. Returns validators.ValidationErrors,
// store.ErrNoUserWasFound or store.ErrEmailAlreadyExists (wrapped).
func (u *userService) UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	req.Username = strings.TrimSpace(req.Username)
	req.Email = normalizeEmail(req.Email)

	if err := u.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Msg("invalid profile update request")
		return models.User{}, err
	}

	user, err := u.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("update profile: %w", err)
	}

	user.Username = req.Username
	user.Email = req.Email
	user.UpdatedAt = u.now().UTC()

	if req.Password != "" {
		user.PasswordHash, err = u.hasher.Hash(req.Password)
		if err != nil {
			log.Err(err).Msg("password hashing failed")
			return models.User{}, fmt.Errorf("%w: %w", ErrPasswordHashingFailed, err)
		}
	}

	updated, err := u.userRepository.UpdateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("profile update failed")
		return models.User{}, fmt.Errorf("update profile: %w", err)
	}

	log.Info().Str("user_id", userID).Msg("profile updated")
	return updated, nil
}

// DeleteAccount removes the user together with all collection entries.
func (u *userService) DeleteAccount(ctx context.Context, userID string) error {
	if err := u.userRepository.DeleteUser(ctx, userID); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}

	logger.FromContext(ctx).Info().Str("user_id", userID).Msg("account deleted")
	return nil
}
