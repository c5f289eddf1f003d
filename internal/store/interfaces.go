// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements persistence of user accounts and per-user movie
// collections on top of database/sql. PostgreSQL (pgx) and SQLite
// (go-sqlite3) are supported; SQL is built with squirrel using the
// placeholder format of the connected dialect.
package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/film-vault/models"
)

// UserRepository persists user accounts in the "users" table.
type UserRepository interface {
	// CreateUser inserts user as is. The caller assigns UserID and the
	// timestamps. Returns [ErrEmailAlreadyExists] on a duplicate e-mail.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user with the given normalized e-mail or
	// [ErrNoUserWasFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns the user with the given id or [ErrNoUserWasFound].
	FindUserByID(ctx context.Context, userID string) (models.User, error)

	// UpdateUser overwrites username, e-mail, password hash and updated_at
	// of the user identified by user.UserID.
	UpdateUser(ctx context.Context, user models.User) (models.User, error)

	// DeleteUser removes the user; collection entries cascade.
	DeleteUser(ctx context.Context, userID string) error
}

// CollectionRepository persists per-user collection entries in the
// "collection_entries" table. Every method is scoped by user id and kind.
type CollectionRepository interface {
	// AddEntry inserts the entry unless (user_id, movie_id, kind) already
	// exists. created reports whether a new row was written.
	AddEntry(ctx context.Context, entry models.CollectionEntry) (created bool, err error)

	// ListMovieIDs returns the movie ids of the user's collection in
	// insertion order. The result is never nil.
	ListMovieIDs(ctx context.Context, userID string, kind models.CollectionKind) ([]int64, error)

	// RemoveEntry deletes the user's entry or returns
	// [ErrCollectionEntryNotFound].
	RemoveEntry(ctx context.Context, userID string, movieID int64, kind models.CollectionKind) error
}
