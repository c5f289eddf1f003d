// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client for the third-party movie catalog.
//
// The primary abstraction is [CatalogAdapter], which decouples the service
// layer from the catalog provider's wire format. The package ships a TMDB
// implementation ([NewTMDBAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from provider HTTP status
// codes by mapHTTPError so that callers can use [errors.Is] without knowing
// anything about the provider (e.g. [ErrMovieNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/film-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/catalog_adapter_mock.go -package=mock

// CatalogAdapter reads movie metadata from the catalog provider.
// Implementations never retry; a failed call is reported to the caller once.
type CatalogAdapter interface {
	// GetMovie fetches a single movie by its catalog id.
	// Returns [ErrMovieNotFound] when the provider does not know the id.
	GetMovie(ctx context.Context, movieID int64) (models.Movie, error)

	// SearchMovies runs a free-text title search.
	SearchMovies(ctx context.Context, query string) ([]models.Movie, error)

	// PopularMovies returns the provider's current popular list.
	PopularMovies(ctx context.Context) ([]models.Movie, error)
}
