package adapter

import "errors"

var (
	ErrMovieNotFound      = errors.New("movie not found in catalog")
	ErrCatalogUnavailable = errors.New("catalog is unavailable")
	ErrInvalidCatalogURL  = errors.New("invalid catalog url")
	ErrEmptyAPIKey        = errors.New("catalog api key is empty")
)
