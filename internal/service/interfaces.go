// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of the FilmVault API: account
// registration and login, bearer token issuance, profile management, the
// per-user movie collections and the catalog gateway.
//
// Services never read the acting user id from request input. Handlers take
// it from the validated token identity stored in the request context and
// pass it down explicitly.
package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=CollectionServiceWrapper

import (
	"context"

	"github.com/MKhiriev/film-vault/models"
)

// TokenService issues and validates signed bearer tokens.
type TokenService interface {
	// Issue signs a token for user carrying its id, name and e-mail.
	Issue(ctx context.Context, user models.User) (models.Token, error)

	// Validate checks signature, method, issuer, audience, expiry and
	// subject. Every failure wraps [ErrTokenIsExpiredOrInvalid].
	Validate(ctx context.Context, token string) (models.Identity, error)
}

// AuthService registers accounts and logs users in.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.Token, error)
	Login(ctx context.Context, req models.LoginRequest) (models.Token, error)
}

// UserService manages the profile of the token owner.
type UserService interface {
	GetProfile(ctx context.Context, userID string) (models.User, error)
	UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (models.User, error)
	DeleteAccount(ctx context.Context, userID string) error
}

// CollectionService manages one kind of per-user movie collection.
type CollectionService interface {
	// Kind reports which collection the service manages.
	Kind() models.CollectionKind

	// Add stores movieID in the user's collection. Adding a movie that is
	// already present succeeds with created == false.
	Add(ctx context.Context, userID string, movieID int64) (created bool, err error)

	// List returns the user's movie ids in insertion order, never nil.
	List(ctx context.Context, userID string) ([]int64, error)

	// Remove deletes movieID from the user's collection or returns
	// store.ErrCollectionEntryNotFound.
	Remove(ctx context.Context, userID string, movieID int64) error
}

// CollectionServiceWrapper defines middleware composition for
// CollectionService, e.g. validating input before the store is hit.
type CollectionServiceWrapper interface {
	Wrap(CollectionService) CollectionService
}

// CatalogService fronts the movie catalog provider. Provider failures never
// surface as internal errors.
type CatalogService interface {
	// GetMovie returns the movie or [ErrMovieNotFound] on any failure.
	GetMovie(ctx context.Context, movieID int64) (models.Movie, error)

	// SearchMovies rejects a blank query with [ErrEmptySearchQuery]. A
	// provider failure yields an empty result.
	SearchMovies(ctx context.Context, query string) ([]models.Movie, error)

	// PopularMovies returns the popular list, empty on provider failure.
	PopularMovies(ctx context.Context) []models.Movie

	// GetMovies resolves movieIDs concurrently, keeps their order and
	// skips ids the provider cannot resolve.
	GetMovies(ctx context.Context, movieIDs []int64) []models.Movie
}

// AppInfoService exposes static information about the running API.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
