package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/film-vault/internal/validators"
	"github.com/MKhiriev/film-vault/models"
)

// collectionValidationService rejects malformed user and movie ids before
// the wrapped CollectionService is called.
type collectionValidationService struct {
	inner     CollectionService
	validator validators.Validator
}

// NewCollectionValidationService returns a wrapper that validates every
// call before delegating.
func NewCollectionValidationService() CollectionServiceWrapper {
	return &collectionValidationService{
		validator: validators.NewCollectionValidator(),
	}
}

func (v *collectionValidationService) Wrap(inner CollectionService) CollectionService {
	v.inner = inner
	return v
}

func (v *collectionValidationService) Kind() models.CollectionKind {
	return v.inner.Kind()
}

func (v *collectionValidationService) Add(ctx context.Context, userID string, movieID int64) (bool, error) {
	entry := models.CollectionEntry{UserID: userID, MovieID: movieID, Kind: v.inner.Kind()}
	if err := v.validator.Validate(ctx, entry); err != nil {
		return false, fmt.Errorf("collection entry validation before adding: %w", err)
	}
	return v.inner.Add(ctx, userID, movieID)
}

func (v *collectionValidationService) List(ctx context.Context, userID string) ([]int64, error) {
	entry := models.CollectionEntry{UserID: userID, Kind: v.inner.Kind()}
	if err := v.validator.Validate(ctx, entry, validators.FieldUserID, validators.FieldKind); err != nil {
		return nil, fmt.Errorf("collection validation before listing: %w", err)
	}
	return v.inner.List(ctx, userID)
}

func (v *collectionValidationService) Remove(ctx context.Context, userID string, movieID int64) error {
	entry := models.CollectionEntry{UserID: userID, MovieID: movieID, Kind: v.inner.Kind()}
	if err := v.validator.Validate(ctx, entry); err != nil {
		return fmt.Errorf("collection entry validation before removing: %w", err)
	}
	return v.inner.Remove(ctx, userID, movieID)
}
