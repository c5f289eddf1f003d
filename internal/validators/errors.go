package validators

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
	ErrValidation      = errors.New("validation failed")

	ErrInvalidUserID         = errors.New("invalid user ID")
	ErrInvalidMovieID        = errors.New("invalid movie ID")
	ErrInvalidCollectionKind = errors.New("invalid collection kind")
)

// ValidationErrors maps a request field name to the reason it was rejected.
// It matches [ErrValidation] with errors.Is.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+v[field])
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (v ValidationErrors) Is(target error) bool {
	return target == ErrValidation
}

// errOrNil returns nil when no field failed.
func (v ValidationErrors) errOrNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}
