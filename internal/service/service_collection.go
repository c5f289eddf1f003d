package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/film-vault/internal/logger"
	"github.com/MKhiriev/film-vault/internal/store"
	"github.com/MKhiriev/film-vault/models"
)

type collectionService struct {
	kind       models.CollectionKind
	repository store.CollectionRepository

	now func() time.Time

	logger *logger.Logger
}

// NewCollectionService constructs the CollectionService for one kind of
// collection backed by repository.
func NewCollectionService(kind models.CollectionKind, repository store.CollectionRepository, logger *logger.Logger) CollectionService {
	return &collectionService{
		kind:       kind,
		repository: repository,
		now:        time.Now,
		logger:     logger,
	}
}

func (c *collectionService) Kind() models.CollectionKind {
	return c.kind
}

// Add implements CollectionService. Concurrent adds of the same movie are
// serialized by the store's unique constraint.
func (c *collectionService) Add(ctx context.Context, userID string, movieID int64) (bool, error) {
	created, err := c.repository.AddEntry(ctx, models.CollectionEntry{
		UserID:    userID,
		MovieID:   movieID,
		Kind:      c.kind,
		CreatedAt: c.now().UTC(),
	})
	if err != nil {
		return false, fmt.Errorf("add to %s: %w", c.kind, err)
	}

	logger.FromContext(ctx).Debug().
		Str("kind", c.kind.String()).
		Int64("movie_id", movieID).
		Bool("created", created).
		Msg("collection entry added")
	return created, nil
}

// List implements CollectionService.
func (c *collectionService) List(ctx context.Context, userID string) ([]int64, error) {
	ids, err := c.repository.ListMovieIDs(ctx, userID, c.kind)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", c.kind, err)
	}
	if ids == nil {
		ids = []int64{}
	}
	return ids, nil
}

// Remove implements CollectionService.
func (c *collectionService) Remove(ctx context.Context, userID string, movieID int64) error {
	if err := c.repository.RemoveEntry(ctx, userID, movieID, c.kind); err != nil {
		return fmt.Errorf("remove from %s: %w", c.kind, err)
	}
	return nil
}
