package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/film-vault/internal/logger"
	"github.com/MKhiriev/film-vault/models"
)

// userRepository is the SQL implementation of [UserRepository].
// It handles user account creation, lookup, update and deletion against the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns it unchanged.
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateUserQuery(r.db.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to create query")
		return models.User{}, err
	}

	// create user in db
	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if r.db.classify(err) == UniqueViolation {
			log.Debug().Str("func", "*userRepository.CreateUser").Msg("email already exists")
			return models.User{}, ErrEmailAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return user, nil
}

// FindUserByEmail retrieves the user whose normalized e-mail equals email.
//
// Error handling:
//   - no rows → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped [ErrScanningRow].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, "email", email)
}

// FindUserByID retrieves the user with the given id.
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	return r.findUser(ctx, "user_id", userID)
}

func (r *userRepository) findUser(ctx context.Context, column string, value string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserQuery(r.db.builder, column, value)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findUser").Msg("failed to create query")
		return models.User{}, err
	}

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, query, args...)

	// scan found user from db
	err = row.Scan(&foundUser.UserID, &foundUser.Username, &foundUser.Email, &foundUser.PasswordHash, &foundUser.CreatedAt, &foundUser.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findUser").Str("by", column).Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return foundUser, nil
}

// UpdateUser overwrites the mutable columns of the user identified by
// user.UserID and returns the stored record.
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - zero affected rows → [ErrNoUserWasFound].
func (r *userRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(r.db.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("failed to create query")
		return models.User{}, err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if r.db.classify(err) == UniqueViolation {
			return models.User{}, ErrEmailAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.UpdateUser").Str("user_id", user.UserID).Msg("error updating user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if rowsAffected == 0 {
		return models.User{}, ErrNoUserWasFound
	}

	return r.FindUserByID(ctx, user.UserID)
}

// DeleteUser removes the user row. Collection entries are removed by the
// ON DELETE CASCADE constraint.
func (r *userRepository) DeleteUser(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteUserQuery(r.db.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("failed to create query")
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Str("user_id", userID).Msg("error deleting user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if rowsAffected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}
