package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/film-vault/internal/logger"
	"github.com/MKhiriev/film-vault/internal/service"
	"github.com/MKhiriev/film-vault/internal/store"
	"github.com/MKhiriev/film-vault/internal/utils"
	"github.com/MKhiriev/film-vault/internal/validators"
)

const unauthorizedMessage = "Unauthorized"

// errorMapping is the public face of an internal error.
type errorMapping struct {
	target  error
	status  int
	message string
}

// errorMappings is checked in order; the first match wins.
var errorMappings = []errorMapping{
	{ErrInvalidJSON, http.StatusBadRequest, "invalid JSON was passed"},
	{ErrInvalidMovieIDParam, http.StatusBadRequest, "invalid movie id"},
	{validators.ErrInvalidMovieID, http.StatusBadRequest, "invalid movie id"},
	{validators.ErrInvalidUserID, http.StatusBadRequest, "invalid user id format"},
	{service.ErrEmptySearchQuery, http.StatusBadRequest, "query is required"},

	{service.ErrInvalidCredentials, http.StatusUnauthorized, "invalid email or password"},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, unauthorizedMessage},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized, unauthorizedMessage},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized, unauthorizedMessage},
	{ErrNoIdentity, http.StatusUnauthorized, unauthorizedMessage},
	{store.ErrOwnerNotFound, http.StatusUnauthorized, unauthorizedMessage},

	{store.ErrNoUserWasFound, http.StatusNotFound, "user not found"},
	{store.ErrCollectionEntryNotFound, http.StatusNotFound, "movie not found in your collection"},
	{service.ErrMovieNotFound, http.StatusNotFound, "movie not found"},

	{store.ErrEmailAlreadyExists, http.StatusConflict, "email already exists"},
}

// mapError converts err into a status code, a public message and optional
// field-level detail. Unknown errors become a generic 500.
func mapError(err error) (int, string, map[string]string) {
	var verrs validators.ValidationErrors
	if errors.As(err, &verrs) {
		return http.StatusBadRequest, "validation failed", verrs
	}

	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.status, m.message, nil
		}
	}

	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError), nil
}

// writeError logs err with the request logger and writes its public form.
// Server faults are logged at error level; client errors at debug.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message, fields := mapError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, status, message, fields)
}
