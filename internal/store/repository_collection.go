// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/film-vault/internal/logger"
	"github.com/MKhiriev/film-vault/models"
)

// collectionRepository is the SQL implementation of [CollectionRepository].
// One instance serves every collection kind; the kind is part of each call.
type collectionRepository struct {
	*DB
	logger *logger.Logger
}

// NewCollectionRepository constructs a [CollectionRepository] backed by
// the provided database connection and logger.
func NewCollectionRepository(db *DB, logger *logger.Logger) CollectionRepository {
	logger.Debug().Msg("creating collection repository")
	return &collectionRepository{
		DB:     db,
		logger: logger,
	}
}

// AddEntry inserts entry with ON CONFLICT DO NOTHING, so concurrent adds of
// the same movie are serialized by the unique constraint and never fail.
//
// Error handling:
//   - foreign key violation (owner deleted) → [ErrOwnerNotFound].
//   - Any other driver-level error → wrapped [ErrExecutingStatement].
func (c *collectionRepository) AddEntry(ctx context.Context, entry models.CollectionEntry) (bool, error) {
	log := logger.FromContext(ctx)

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	query, args, err := buildAddEntryQuery(c.builder, entry)
	if err != nil {
		log.Err(err).Str("func", "collectionRepository.AddEntry").Msg("failed to create query")
		return false, err
	}

	result, err := c.DB.ExecContext(ctx, query, args...)
	if err != nil {
		if c.classify(err) == ForeignKeyViolation {
			log.Warn().
				Str("func", "collectionRepository.AddEntry").
				Str("user_id", entry.UserID).
				Msg("collection owner does not exist")
			return false, ErrOwnerNotFound
		}

		log.Err(err).
			Str("func", "collectionRepository.AddEntry").
			Str("user_id", entry.UserID).
			Int64("movie_id", entry.MovieID).
			Str("kind", entry.Kind.String()).
			Msg("failed to insert collection entry")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return rowsAffected > 0, nil
}

// ListMovieIDs returns the movie ids of the user's collection ordered by
// entry_id. An empty collection yields an empty, non-nil slice.
func (c *collectionRepository) ListMovieIDs(ctx context.Context, userID string, kind models.CollectionKind) ([]int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListMovieIDsQuery(c.builder, userID, kind)
	if err != nil {
		log.Err(err).Str("func", "collectionRepository.ListMovieIDs").Msg("failed to create query")
		return nil, err
	}

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "collectionRepository.ListMovieIDs").
			Str("user_id", userID).
			Str("kind", kind.String()).
			Msg("failed to execute query for listing collection")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	movieIDs := make([]int64, 0, 16)
	for rows.Next() {
		var movieID int64
		if scanErr := rows.Scan(&movieID); scanErr != nil {
			log.Err(scanErr).
				Str("func", "collectionRepository.ListMovieIDs").
				Str("user_id", userID).
				Msg("failed to scan collection row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		movieIDs = append(movieIDs, movieID)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "collectionRepository.ListMovieIDs").
			Str("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return movieIDs, nil
}

// RemoveEntry deletes the (userID, movieID, kind) entry. Entries of other
// users never match, so removing them is reported as not found.
func (c *collectionRepository) RemoveEntry(ctx context.Context, userID string, movieID int64, kind models.CollectionKind) error {
	log := logger.FromContext(ctx)

	query, args, err := buildRemoveEntryQuery(c.builder, userID, movieID, kind)
	if err != nil {
		log.Err(err).Str("func", "collectionRepository.RemoveEntry").Msg("failed to create query")
		return err
	}

	result, err := c.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "collectionRepository.RemoveEntry").
			Str("user_id", userID).
			Int64("movie_id", movieID).
			Msg("failed to delete collection entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if rowsAffected == 0 {
		return ErrCollectionEntryNotFound
	}

	return nil
}
