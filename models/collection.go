// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// CollectionKind names one of the per-user movie collections.
type CollectionKind string

const (
	// SavedMovies is the user's vault of saved movies.
	SavedMovies CollectionKind = "saved"
	// Watchlist is the list of movies the user intends to watch.
	Watchlist CollectionKind = "watchlist"
)

// CollectionKinds lists every supported collection kind.
var CollectionKinds = []CollectionKind{SavedMovies, Watchlist}

// IsValid reports whether k is a supported collection kind.
func (k CollectionKind) IsValid() bool {
	for _, known := range CollectionKinds {
		if k == known {
			return true
		}
	}
	return false
}

func (k CollectionKind) String() string {
	return string(k)
}

// CollectionEntry is a single movie stored in one of a user's collections.
// Entries are created on add and deleted on remove; they are never updated.
type CollectionEntry struct {
	EntryID   int64          `json:"-"`
	UserID    string         `json:"-"`
	MovieID   int64          `json:"movie_id"`
	Kind      CollectionKind `json:"kind"`
	CreatedAt time.Time      `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the CollectionEntry model.
func (e CollectionEntry) TableName() string {
	return "collection_entries"
}
