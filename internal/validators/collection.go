package validators

import (
	"context"

	"github.com/MKhiriev/film-vault/internal/utils"
	"github.com/MKhiriev/film-vault/models"
)

// Field name constants accepted by [CollectionValidator].
const (
	FieldUserID  = "user_id"
	FieldMovieID = "movie_id"
	FieldKind    = "kind"
)

// CollectionValidator validates [models.CollectionEntry] values before any
// collection operation reaches the store. It stops at the first failing
// field and returns the matching sentinel error.
type CollectionValidator struct{}

// NewCollectionValidator constructs a [CollectionValidator].
func NewCollectionValidator() Validator {
	return &CollectionValidator{}
}

// Validate implements [Validator] for [models.CollectionEntry], by value or
// by pointer.
func (v *CollectionValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CollectionEntry:
		return v.validateEntry(value, fields...)
	case *models.CollectionEntry:
		return v.validateEntry(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CollectionValidator) validateEntry(entry models.CollectionEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldMovieID, FieldKind}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if !utils.IsValidUUID(entry.UserID) {
				return ErrInvalidUserID
			}
		case FieldMovieID:
			if entry.MovieID <= 0 {
				return ErrInvalidMovieID
			}
		case FieldKind:
			if !entry.Kind.IsValid() {
				return ErrInvalidCollectionKind
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
